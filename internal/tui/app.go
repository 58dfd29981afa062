package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenForm
	screenConfirmDelete
	screenGenerator
	screenBroken
)

// model is the root Bubble Tea model:
// 1) keeps the active screen
// 2) handles global keys (ctrl+c, ctrl+l, f1)
// 3) runs session calls as commands and applies their results
// 4) drops every piece of plaintext when the vault locks
type model struct {
	ctx       context.Context
	session   Vault
	gen       *generator.Generator
	clip      clipboardIO
	clipTTL   time.Duration
	touch     func()
	buildInfo models.AppBuildInfo

	screen screen
	width  int

	unlock  unlockScreen
	list    listScreen
	detail  detailScreen
	form    formScreen
	confirm confirmDelete
	genView generatorScreen
	broken  brokenScreen

	busy          bool
	status        string
	errMsg        string
	showBuildInfo bool
	quitByUser    bool
}

func newModel(ctx context.Context, session Vault, buildInfo models.AppBuildInfo) model {
	return model{
		ctx:       ctx,
		session:   session,
		gen:       generator.New(),
		clip:      systemClipboard{},
		clipTTL:   defaultClipboardTTL,
		touch:     func() {},
		buildInfo: buildInfo,
		screen:    screenUnlock,
		unlock:    newUnlockScreen(),
		list:      newListScreen(),
		genView:   newGeneratorScreen(),
	}
}

func (m model) Init() tea.Cmd {
	return m.unlock.init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case autoLockedMsg:
		if m.screen == screenUnlock {
			return m, nil
		}
		m.toLocked()
		m.status = "Хранилище заблокировано по неактивности"
		return m, m.unlock.init()
	case clipboardClearMsg:
		clearClipboard(m.clip, msg.value)
		return m, nil
	case unlockDoneMsg:
		return m.onUnlockDone(msg)
	case refreshDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = "Обновлено"
		m.reloadList()
		return m, nil
	case recordSavedMsg:
		return m.onRecordSaved(msg)
	case recordDeletedMsg:
		return m.onRecordDeleted(msg)
	case tea.KeyMsg:
		m.touch()
		return m.handleKey(msg)
	}

	return m.updateActiveInput(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.forceQuit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	case key.Matches(msg, keys.lock) && m.screen != screenUnlock:
		m.session.Lock()
		m.toLocked()
		m.status = "Хранилище заблокировано"
		return m, m.unlock.init()
	}

	if m.busy {
		return m, nil
	}

	switch m.screen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenConfirmDelete:
		return m.updateConfirm(msg)
	case screenGenerator:
		return m.updateGenerator(msg)
	case screenBroken:
		return m.updateBroken(msg)
	}

	return m, nil
}

// updateActiveInput forwards non-key messages (cursor blink) to the focused
// text input.
func (m model) updateActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenUnlock:
		m.unlock.password, cmd = m.unlock.password.Update(msg)
	case screenList:
		if m.list.filtering {
			m.list.filter, cmd = m.list.filter.Update(msg)
		}
	case screenForm:
		if len(m.form.inputs) > 0 {
			m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		}
	}
	return m, cmd
}

func (m model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.session.Identity()))
	}

	var body string
	switch m.screen {
	case screenUnlock:
		body = m.viewUnlock()
	case screenList:
		body = m.viewList()
	case screenDetail:
		body = m.viewDetail()
	case screenForm:
		body = m.viewForm()
	case screenConfirmDelete:
		body = m.confirm.View()
	case screenGenerator:
		body = m.viewGenerator()
	case screenBroken:
		body = brokenRecordsView(m.broken.errs, m.broken.idx)
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Ошибка: "+m.errMsg)
	}
	return appStyle.Render(body)
}

// toLocked moves to the unlock screen and forgets every decrypted value the
// screens were holding.
func (m *model) toLocked() {
	m.screen = screenUnlock
	m.busy = false
	m.errMsg = ""
	m.list.reset()
	m.detail = detailScreen{}
	m.form = formScreen{}
	m.confirm = confirmDelete{}
	m.broken = brokenScreen{}
	m.genView.value = ""
	m.unlock.password.Reset()
	m.unlock.password.Focus()
}

// fail shows err. A session that got locked underneath goes back to the
// unlock screen.
func (m model) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, vault.ErrLocked) {
		m.toLocked()
		m.errMsg = humanizeError(err)
		return m, m.unlock.init()
	}
	m.status = ""
	m.errMsg = humanizeError(err)
	return m, nil
}

func (m model) onRecordSaved(msg recordSavedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		return m.fail(msg.err)
	}

	m.form = formScreen{}
	m.errMsg = ""
	m.status = "Запись сохранена"
	m.reloadList()
	m.list.selectID(msg.record.ID)
	m.screen = screenList
	return m, nil
}

func (m model) onRecordDeleted(msg recordDeletedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	returnTo := m.confirm.returnTo
	m.confirm = confirmDelete{}
	if msg.err != nil {
		m.screen = screenList
		return m.fail(msg.err)
	}

	m.detail = detailScreen{}
	m.errMsg = ""
	m.status = "Запись удалена"
	m.reloadList()
	m.screen = screenList
	if returnTo == screenBroken && len(m.list.broken) > 0 {
		m.openBroken()
	}
	return m, nil
}

func (m model) cmdRefresh() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return refreshDoneMsg{err: session.Refresh(ctx)}
	}
}

func (m model) cmdSave(id, title string, payload models.DecryptedPayload) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		var (
			record models.VaultRecord
			err    error
		)
		if id == "" {
			record, err = session.Create(ctx, title, payload)
		} else {
			record, err = session.Update(ctx, id, title, payload)
		}
		return recordSavedMsg{record: record, err: err}
	}
}

func (m model) cmdDelete(id string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return recordDeletedMsg{err: session.Delete(ctx, id)}
	}
}

func (m model) askDelete(id, title string) (tea.Model, tea.Cmd) {
	m.confirm = confirmDelete{id: id, title: valueOrDash(title), returnTo: m.screen}
	m.screen = screenConfirmDelete
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.busy = true
		m.status = "Удаление..."
		return m, m.cmdDelete(m.confirm.id)
	case key.Matches(msg, keys.no):
		m.screen = m.confirm.returnTo
		m.confirm = confirmDelete{}
	}
	return m, nil
}

func (m model) copy(value, what string) (tea.Model, tea.Cmd) {
	if value == "" {
		m.status = "Нечего копировать"
		return m, nil
	}

	cmd, err := copyToClipboard(m.clip, value, m.clipTTL)
	if err != nil {
		m.errMsg = "копирование: " + err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.status = what + " скопирован"
	if m.clipTTL > 0 {
		m.status += " (очистится через " + m.clipTTL.String() + ")"
	}
	return m, cmd
}
