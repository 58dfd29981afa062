package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
)

// formScreen creates a record (id == "") or edits an existing one.
type formScreen struct {
	id       string
	inputs   []textinput.Model
	focus    int
	returnTo screen
	err      string
}

func newFormScreen(id, title string, payload models.DecryptedPayload) formScreen {
	newInput := func(placeholder, value string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 48
		in.SetValue(value)
		return in
	}

	inputs := []textinput.Model{
		newInput("Название", title, validators.MaxTitleLength),
		newInput("Логин", payload.Username, 256),
		newInput("Пароль (ctrl+g сгенерировать)", payload.Password, 256),
		newInput("URL", payload.URL, 2048),
		newInput("Заметки", payload.Notes, 4096),
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldTitle].Focus()

	return formScreen{id: id, inputs: inputs, returnTo: screenList}
}

func (f *formScreen) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f formScreen) values() (string, models.DecryptedPayload) {
	return strings.TrimSpace(f.inputs[fieldTitle].Value()), models.DecryptedPayload{
		Username: strings.TrimSpace(f.inputs[fieldUsername].Value()),
		Password: f.inputs[fieldPassword].Value(),
		URL:      strings.TrimSpace(f.inputs[fieldURL].Value()),
		Notes:    f.inputs[fieldNotes].Value(),
	}
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = m.form.returnTo
		m.form = formScreen{}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case key.Matches(msg, keys.generate):
		password, err := m.gen.Generate(m.genView.opts)
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.inputs[fieldPassword].SetValue(password)
		m.form.setFocus(fieldPassword)
		return m, nil
	case key.Matches(msg, keys.save),
		key.Matches(msg, keys.enter) && m.form.focus == len(m.form.inputs)-1:
		return m.submitForm()
	case key.Matches(msg, keys.enter):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	title, payload := m.form.values()
	switch {
	case title == "":
		m.form.err = "нужно название"
		m.form.setFocus(fieldTitle)
		return m, nil
	case utf8.RuneCountInString(title) > validators.MaxTitleLength:
		m.form.err = "слишком длинное название"
		return m, nil
	}

	m.form.err = ""
	m.busy = true
	m.status = "Сохранение..."
	return m, m.cmdSave(m.form.id, title, payload)
}

func (m model) viewForm() string {
	labels := []string{"Название", "Логин", "Пароль", "URL", "Заметки"}

	var b strings.Builder
	for i, in := range m.form.inputs {
		b.WriteString(labels[i])
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	if m.form.err != "" {
		b.WriteString(errorStyle.Render(m.form.err))
		b.WriteString("\n")
	}

	title := "Новая запись"
	if m.form.id != "" {
		title = "Изменение записи"
	}
	return renderPage(title, b.String(), "tab далее  ctrl+g пароль  ctrl+s сохранить  esc отмена")
}
