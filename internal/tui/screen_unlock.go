// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// unlockScreen asks for the master password. The typed value lives only in
// the input widget and is cleared as soon as it is submitted.
type unlockScreen struct {
	password textinput.Model
}

func newUnlockScreen() unlockScreen {
	password := textinput.New()
	password.Placeholder = "мастер-пароль"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	return unlockScreen{password: password}
}

func (u unlockScreen) init() tea.Cmd {
	return textinput.Blink
}

func (m model) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		secret := m.unlock.password.Value()
		m.unlock.password.Reset()
		if secret == "" {
			m.errMsg = "введите мастер-пароль"
			return m, nil
		}

		m.busy = true
		m.errMsg = ""
		m.status = "Расшифровка..."
		ctx, session := m.ctx, m.session
		return m, func() tea.Msg {
			return unlockDoneMsg{err: session.Unlock(ctx, secret)}
		}
	}

	var cmd tea.Cmd
	m.unlock.password, cmd = m.unlock.password.Update(msg)
	return m, cmd
}

func (m model) onUnlockDone(msg unlockDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.status = ""
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.errMsg = ""
	m.list.reset()
	m.reloadList()
	m.screen = screenList
	if n := len(m.list.broken); n > 0 {
		m.status = "Часть записей не расшифрована, нажмите !"
	}
	return m, nil
}

func (m model) viewUnlock() string {
	var b strings.Builder
	b.WriteString(lockedStyle.Render("Хранилище заблокировано"))
	b.WriteString("\n\n")
	b.WriteString("Пользователь: ")
	b.WriteString(valueOrDash(m.session.Identity()))
	b.WriteString("\n\n")
	b.WriteString(m.unlock.password.View())

	return renderPage("go-pass-vault", b.String(), "enter: открыть  f1: о программе")
}
