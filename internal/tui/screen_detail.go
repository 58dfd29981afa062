package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

type detailScreen struct {
	record models.VaultRecord
	reveal bool
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.detail.record
	payload := payloadOf(item)

	switch {
	case key.Matches(msg, keys.esc):
		m.detail = detailScreen{}
		m.screen = screenList
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
	case key.Matches(msg, keys.copy):
		return m.copy(payload.Password, "Пароль")
	case key.Matches(msg, keys.copyUser):
		return m.copy(payload.Username, "Логин")
	case key.Matches(msg, keys.edit):
		m.status, m.errMsg = "", ""
		m.form = newFormScreen(item.ID, item.Title, payload)
		m.form.returnTo = screenDetail
		m.screen = screenForm
		return m, nil
	case key.Matches(msg, keys.delete):
		return m.askDelete(item.ID, item.Title)
	}

	return m, nil
}

func (m model) viewDetail() string {
	item := m.detail.record
	payload := payloadOf(item)

	password := maskSecret(payload.Password)
	if m.detail.reveal {
		password = valueOrDash(payload.Password)
	}

	var b strings.Builder
	b.WriteString("Логин:    " + valueOrDash(payload.Username) + "\n")
	b.WriteString("Пароль:   " + password + "\n")
	b.WriteString("URL:      " + valueOrDash(payload.URL) + "\n")
	b.WriteString("Заметки:  " + valueOrDash(payload.Notes) + "\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Изменено: " + item.UpdatedAt.Local().Format("2006-01-02 15:04")))

	hotKeys := "space показать  c копир. пароль  u копир. логин  e редакт.  d удалить  esc назад"
	return renderPage(item.Title, b.String(), hotKeys)
}
