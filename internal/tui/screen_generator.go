package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
)

type generatorScreen struct {
	opts  generator.Options
	value string
}

func newGeneratorScreen() generatorScreen {
	return generatorScreen{opts: generator.DefaultOptions()}
}

func (m *model) regenerate() {
	value, err := m.gen.Generate(m.genView.opts)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.genView.value = value
}

func (m model) updateGenerator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := &m.genView.opts

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		return m.copy(m.genView.value, "Пароль")
	case key.Matches(msg, keys.left):
		if opts.Length > generator.MinLength {
			opts.Length--
		}
	case key.Matches(msg, keys.right):
		if opts.Length < generator.MaxLength {
			opts.Length++
		}
	case key.Matches(msg, keys.numbers):
		opts.Numbers = !opts.Numbers
	case key.Matches(msg, keys.symbols):
		opts.Symbols = !opts.Symbols
	case key.Matches(msg, keys.lookalike):
		opts.ExcludeLookalikes = !opts.ExcludeLookalikes
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.reveal):
	default:
		return m, nil
	}

	m.regenerate()
	return m, nil
}

func (m model) viewGenerator() string {
	opts := m.genView.opts
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(valueOrDash(m.genView.value)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Длина: %d (%d..%d)\n", opts.Length, generator.MinLength, generator.MaxLength))
	b.WriteString(check(opts.Numbers) + " 1 цифры (123)\n")
	b.WriteString(check(opts.Symbols) + " 2 символы (!@#)\n")
	b.WriteString(check(opts.ExcludeLookalikes) + " 3 без похожих (l 1 I O 0 o)\n")

	return renderPage("Генератор паролей", b.String(), "←/→ длина  enter новый  c копир.  esc назад")
}
