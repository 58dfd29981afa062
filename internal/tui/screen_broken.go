package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

// brokenScreen lets the user remove records the current key cannot open.
type brokenScreen struct {
	errs []vault.RecordError
	idx  int
}

func (m *model) openBroken() {
	m.broken = brokenScreen{errs: m.list.broken}
	m.screen = screenBroken
}

func (m model) updateBroken(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.broken = brokenScreen{}
		m.screen = screenList
	case key.Matches(msg, keys.up):
		if m.broken.idx > 0 {
			m.broken.idx--
		}
	case key.Matches(msg, keys.down):
		if m.broken.idx < len(m.broken.errs)-1 {
			m.broken.idx++
		}
	case key.Matches(msg, keys.delete):
		if m.broken.idx < len(m.broken.errs) {
			e := m.broken.errs[m.broken.idx]
			return m.askDelete(e.RecordID, e.Title)
		}
	}
	return m, nil
}
