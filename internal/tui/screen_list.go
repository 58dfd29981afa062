package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type listScreen struct {
	items     []models.VaultRecord
	broken    []vault.RecordError
	idx       int
	filter    textinput.Model
	filtering bool
}

func newListScreen() listScreen {
	filter := textinput.New()
	filter.Placeholder = "поиск по названию"
	filter.Prompt = "/ "
	filter.Width = 40
	return listScreen{filter: filter}
}

func (l *listScreen) reset() {
	l.items = nil
	l.broken = nil
	l.idx = 0
	l.filtering = false
	l.filter.Reset()
	l.filter.Blur()
}

func (l listScreen) current() (models.VaultRecord, bool) {
	if l.idx < 0 || l.idx >= len(l.items) {
		return models.VaultRecord{}, false
	}
	return l.items[l.idx], true
}

func (l *listScreen) selectID(id string) {
	for i, r := range l.items {
		if r.ID == id {
			l.idx = i
			return
		}
	}
}

// reloadList re-reads the decrypted set from the session using the current
// filter.
func (m *model) reloadList() {
	items, err := m.session.List(m.list.filter.Value())
	if err != nil {
		m.errMsg = humanizeError(err)
		m.list.items = nil
		return
	}

	m.list.items = items
	m.list.broken = m.session.RecoverableErrors()
	if m.list.idx >= len(items) {
		m.list.idx = len(items) - 1
	}
	if m.list.idx < 0 {
		m.list.idx = 0
	}
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.filtering {
		return m.updateFilter(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.filter):
		m.list.filtering = true
		return m, m.list.filter.Focus()
	case key.Matches(msg, keys.esc):
		if m.list.filter.Value() != "" {
			m.list.filter.Reset()
			m.reloadList()
		}
	case key.Matches(msg, keys.enter):
		if item, ok := m.list.current(); ok {
			m.detail = detailScreen{record: item}
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.newItem):
		m.status, m.errMsg = "", ""
		m.form = newFormScreen("", "", models.DecryptedPayload{})
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if item, ok := m.list.current(); ok {
			m.status, m.errMsg = "", ""
			m.form = newFormScreen(item.ID, item.Title, payloadOf(item))
			m.screen = screenForm
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.list.current(); ok {
			return m.askDelete(item.ID, item.Title)
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.list.current(); ok {
			return m.copy(payloadOf(item).Password, "Пароль")
		}
	case key.Matches(msg, keys.refresh):
		m.busy = true
		m.status = "Загрузка..."
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.generator):
		m.screen = screenGenerator
		if m.genView.value == "" {
			m.regenerate()
		}
	case key.Matches(msg, keys.broken):
		if len(m.list.broken) > 0 {
			m.openBroken()
		}
	}

	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.list.filter.Reset()
		fallthrough
	case key.Matches(msg, keys.enter):
		m.list.filtering = false
		m.list.filter.Blur()
		m.reloadList()
		return m, nil
	}

	var cmd tea.Cmd
	m.list.filter, cmd = m.list.filter.Update(msg)
	m.list.idx = 0
	m.reloadList()
	return m, cmd
}

func (m model) viewList() string {
	var b strings.Builder

	if m.list.filtering || m.list.filter.Value() != "" {
		b.WriteString(m.list.filter.View())
		b.WriteString("\n\n")
	}

	width := m.width - 12
	if width < 20 {
		width = 40
	}

	if len(m.list.items) == 0 {
		b.WriteString("Нет записей\n")
	}
	for i, item := range m.list.items {
		line := fitText(fmt.Sprintf("%-24s %s", fitText(item.Title, 24), payloadOf(item).Username), width)
		if i == m.list.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if n := len(m.list.broken); n > 0 {
		b.WriteString(fmt.Sprintf("\n%s\n", errorStyle.Render(fmt.Sprintf("не расшифровано: %d (!)", n))))
	}

	title := "go-pass-vault · " + m.session.Identity()
	hotKeys := "enter открыть  / поиск  n новая  e редакт.  d удалить  c копир.  g генератор  r обновить  ctrl+l блок.  q выход"
	return renderPage(title, b.String(), hotKeys)
}

func payloadOf(r models.VaultRecord) models.DecryptedPayload {
	if r.Payload == nil {
		return models.DecryptedPayload{}
	}
	return *r.Payload
}
