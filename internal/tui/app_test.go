package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	identity = "a@b.com"
	correct  = "correct"
	wrong    = "wrong"
)

type fakeClipboard struct {
	value string
	err   error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.value = text
	return nil
}

func (f *fakeClipboard) ReadAll() (string, error) { return f.value, f.err }

type harness struct {
	t       *testing.T
	m       model
	session *vault.Session
	store   store.RecordStore
	clip    *fakeClipboard
	touches int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logger.Nop()
	recordStore := store.NewMemoryRecordStore(log)
	session := vault.NewSession(identity, recordStore, nil, log)

	h := &harness{t: t, session: session, store: recordStore, clip: &fakeClipboard{}}
	h.m = newModel(context.Background(), session, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"))
	h.m.clip = h.clip
	h.m.touch = func() { h.touches++ }
	return h
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press отправляет клавишу и возвращает команду, не выполняя её.
func (h *harness) press(s string) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(keyMsg(s))
	h.m = next.(model)
	return cmd
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(model)
	return cmd
}

// run выполняет команду сессии и применяет результат.
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	require.NotNil(h.t, cmd)
	h.send(cmd())
}

func (h *harness) unlock(password string) {
	h.t.Helper()
	h.press(password)
	h.run(h.press("enter"))
}

func (h *harness) create(title, username, password string) {
	h.t.Helper()
	h.press("n")
	require.Equal(h.t, screenForm, h.m.screen)
	h.press(title)
	h.press("tab")
	h.press(username)
	h.press("tab")
	h.press(password)
	h.run(h.press("ctrl+s"))
}

func titles(records []models.VaultRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}

// ─────────────────────────────────────────────
// unlock
// ─────────────────────────────────────────────

func TestModel_StartsLocked(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, screenUnlock, h.m.screen)
	assert.Contains(t, h.m.View(), "Хранилище заблокировано")
	assert.Contains(t, h.m.View(), identity)
	assert.NotNil(t, h.m.Init())
}

func TestModel_UnlockEmptyVault(t *testing.T) {
	h := newHarness(t)

	h.unlock(correct)

	assert.Equal(t, screenList, h.m.screen)
	assert.Equal(t, vault.StateUnlocked, h.session.State())
	assert.Empty(t, h.m.errMsg)
	assert.Empty(t, h.m.unlock.password.Value())
	assert.Contains(t, h.m.View(), "Нет записей")
}

func TestModel_UnlockRequiresPassword(t *testing.T) {
	h := newHarness(t)

	cmd := h.press("enter")

	assert.Nil(t, cmd)
	assert.Equal(t, screenUnlock, h.m.screen)
	assert.NotEmpty(t, h.m.errMsg)
}

func TestModel_UnlockWrongPassword(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")
	h.press("ctrl+l")

	h.unlock(wrong)

	assert.Equal(t, screenUnlock, h.m.screen)
	assert.Equal(t, vault.StateLocked, h.session.State())
	assert.Equal(t, "Неверный мастер-пароль или данные повреждены", h.m.errMsg)
	assert.Empty(t, h.m.unlock.password.Value())
}

func TestModel_KeysIgnoredWhileBusy(t *testing.T) {
	h := newHarness(t)
	h.press(correct)
	unlockCmd := h.press("enter")
	require.True(t, h.m.busy)

	assert.Nil(t, h.press("enter"))

	h.run(unlockCmd)
	assert.False(t, h.m.busy)
	assert.Equal(t, screenList, h.m.screen)
}

// ─────────────────────────────────────────────
// create / edit / delete
// ─────────────────────────────────────────────

func TestModel_CreateRecord(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)

	h.create("Mail", "alice", "s3cret")

	assert.Equal(t, screenList, h.m.screen)
	assert.Equal(t, "Запись сохранена", h.m.status)
	require.Len(t, h.m.list.items, 1)
	assert.Equal(t, "Mail", h.m.list.items[0].Title)
	assert.Equal(t, "s3cret", h.m.list.items[0].Payload.Password)
	assert.Nil(t, h.m.form.inputs)

	view := h.m.View()
	assert.Contains(t, view, "Mail")
	assert.Contains(t, view, "alice")
	assert.NotContains(t, view, "s3cret")
}

func TestModel_FormRequiresTitle(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.press("n")
	h.press("tab")
	h.press("alice")

	cmd := h.press("ctrl+s")

	assert.Nil(t, cmd)
	assert.Equal(t, screenForm, h.m.screen)
	assert.Equal(t, "нужно название", h.m.form.err)
	assert.Equal(t, fieldTitle, h.m.form.focus)
}

func TestModel_FormEnterMovesFocusThenSaves(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.press("n")
	h.press("Notes only")

	for i := 0; i < len(h.m.form.inputs)-1; i++ {
		assert.Nil(t, h.press("enter"))
	}
	require.Equal(t, fieldNotes, h.m.form.focus)

	h.run(h.press("enter"))
	assert.Equal(t, []string{"Notes only"}, titles(h.m.list.items))
}

func TestModel_FormGeneratesPassword(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.press("n")

	h.press("ctrl+g")

	assert.Len(t, h.m.form.inputs[fieldPassword].Value(), 16)
	assert.Equal(t, fieldPassword, h.m.form.focus)
}

func TestModel_FormEscCancels(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.press("n")
	h.press("Draft")

	h.press("esc")

	assert.Equal(t, screenList, h.m.screen)
	assert.Empty(t, h.m.list.items)
}

func TestModel_EditRecord(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")
	id := h.m.list.items[0].ID

	h.press("e")
	require.Equal(t, screenForm, h.m.screen)
	assert.Equal(t, "Mail", h.m.form.inputs[fieldTitle].Value())
	assert.Equal(t, "s3cret", h.m.form.inputs[fieldPassword].Value())
	h.press(" (work)")
	h.run(h.press("ctrl+s"))

	require.Len(t, h.m.list.items, 1)
	assert.Equal(t, id, h.m.list.items[0].ID)
	assert.Equal(t, "Mail (work)", h.m.list.items[0].Title)
}

func TestModel_DeleteRecord(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")

	h.press("d")
	require.Equal(t, screenConfirmDelete, h.m.screen)
	assert.Contains(t, h.m.View(), "Mail")

	h.run(h.press("y"))

	assert.Equal(t, screenList, h.m.screen)
	assert.Equal(t, "Запись удалена", h.m.status)
	assert.Empty(t, h.m.list.items)
}

func TestModel_DeleteCanBeCancelled(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")
	h.press("enter")
	h.press("d")

	assert.Nil(t, h.press("n"))

	assert.Equal(t, screenDetail, h.m.screen)
	assert.Len(t, h.m.list.items, 1)
}

// ─────────────────────────────────────────────
// list, filter, detail
// ─────────────────────────────────────────────

func TestModel_Filter(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Gmail", "alice", "p1")
	h.create("Bank", "alice", "p2")
	require.Len(t, h.m.list.items, 2)

	h.press("/")
	require.True(t, h.m.list.filtering)
	h.press("GMA")

	assert.Equal(t, []string{"Gmail"}, titles(h.m.list.items))

	h.press("enter")
	assert.False(t, h.m.list.filtering)
	assert.Equal(t, []string{"Gmail"}, titles(h.m.list.items))

	h.press("esc")
	assert.Len(t, h.m.list.items, 2)
}

func TestModel_ListNavigation(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("One", "", "1")
	h.create("Two", "", "2")
	h.m.list.idx = 0

	h.press("down")
	h.press("down")
	assert.Equal(t, 1, h.m.list.idx)
	h.press("k")
	assert.Equal(t, 0, h.m.list.idx)
}

func TestModel_DetailMasksAndCopies(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")

	h.press("enter")
	require.Equal(t, screenDetail, h.m.screen)
	assert.NotContains(t, h.m.View(), "s3cret")

	h.press(" ")
	assert.Contains(t, h.m.View(), "s3cret")

	cmd := h.press("c")
	assert.NotNil(t, cmd, "clipboard must be cleared later")
	assert.Equal(t, "s3cret", h.clip.value)

	h.press("u")
	assert.Equal(t, "alice", h.clip.value)

	h.press("esc")
	assert.Equal(t, screenList, h.m.screen)
	assert.Empty(t, h.m.detail.record.ID)
}

func TestModel_CopyFailure(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")
	h.clip.err = errors.New("no clipboard")

	cmd := h.press("c")

	assert.Nil(t, cmd)
	assert.Contains(t, h.m.errMsg, "no clipboard")
}

func TestModel_ClipboardClearedOnlyIfUnchanged(t *testing.T) {
	h := newHarness(t)

	h.clip.value = "s3cret"
	h.send(clipboardClearMsg{value: "s3cret"})
	assert.Empty(t, h.clip.value)

	h.clip.value = "something else"
	h.send(clipboardClearMsg{value: "s3cret"})
	assert.Equal(t, "something else", h.clip.value)
}

func TestModel_Refresh(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)

	// запись, добавленная другим клиентом
	other := vault.NewSession(identity, h.store, nil, logger.Nop())
	require.NoError(t, other.Unlock(context.Background(), correct))
	_, err := other.Create(context.Background(), "From elsewhere", models.DecryptedPayload{Password: "x"})
	require.NoError(t, err)

	assert.Empty(t, h.m.list.items)
	h.run(h.press("r"))

	assert.Equal(t, []string{"From elsewhere"}, titles(h.m.list.items))
}

// ─────────────────────────────────────────────
// lock
// ─────────────────────────────────────────────

func TestModel_LockDropsPlaintext(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")
	h.press("enter")
	h.press(" ")

	h.press("ctrl+l")

	assert.Equal(t, screenUnlock, h.m.screen)
	assert.Equal(t, vault.StateLocked, h.session.State())
	assert.Nil(t, h.m.list.items)
	assert.Empty(t, h.m.detail.record.ID)
	assert.Equal(t, "Хранилище заблокировано", h.m.status)
	assert.NotContains(t, h.m.View(), "s3cret")
	assert.NotContains(t, h.m.View(), "Mail")

	h.unlock(correct)
	assert.Equal(t, []string{"Mail"}, titles(h.m.list.items))
}

func TestModel_AutoLock(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")
	h.press("n")
	h.press("half typed")

	h.session.Lock()
	h.send(autoLockedMsg{})

	assert.Equal(t, screenUnlock, h.m.screen)
	assert.Nil(t, h.m.form.inputs)
	assert.Equal(t, "Хранилище заблокировано по неактивности", h.m.status)
}

func TestModel_LockedUnderneathGoesToUnlock(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")

	h.session.Lock()
	h.run(h.press("r"))

	assert.Equal(t, screenUnlock, h.m.screen)
	assert.Equal(t, "Хранилище заблокировано", h.m.errMsg)
}

func TestModel_KeysTouchActivity(t *testing.T) {
	h := newHarness(t)

	h.press("a")
	h.press("b")
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 2, h.touches)
	assert.Equal(t, 80, h.m.width)
}

// ─────────────────────────────────────────────
// broken records
// ─────────────────────────────────────────────

func TestModel_BrokenRecordCanBeDeleted(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.create("Mail", "alice", "s3cret")
	h.press("ctrl+l")

	foreignKey, err := crypto.DeriveKey(wrong, identity)
	require.NoError(t, err)
	env, err := crypto.EncryptData(foreignKey, models.DecryptedPayload{Password: "x"})
	require.NoError(t, err)
	_, err = h.store.Create(context.Background(), identity, models.NewRecordInput("Broken", env))
	require.NoError(t, err)

	h.unlock(correct)
	require.Equal(t, []string{"Mail"}, titles(h.m.list.items))
	require.Len(t, h.m.list.broken, 1)
	assert.Contains(t, h.m.View(), "не расшифровано: 1")

	h.press("!")
	require.Equal(t, screenBroken, h.m.screen)
	assert.Contains(t, h.m.View(), "Broken")

	h.press("d")
	require.Equal(t, screenConfirmDelete, h.m.screen)
	h.run(h.press("y"))

	assert.Equal(t, screenList, h.m.screen)
	assert.Empty(t, h.m.list.broken)
	assert.Equal(t, []string{"Mail"}, titles(h.m.list.items))
}

// ─────────────────────────────────────────────
// generator, build info, quit
// ─────────────────────────────────────────────

func TestModel_Generator(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)

	h.press("g")
	require.Equal(t, screenGenerator, h.m.screen)
	assert.Len(t, h.m.genView.value, 16)

	h.press("right")
	assert.Len(t, h.m.genView.value, 17)
	h.press("left")
	h.press("left")
	assert.Len(t, h.m.genView.value, 15)

	h.press("1")
	h.press("2")
	assert.False(t, h.m.genView.opts.Numbers)
	assert.False(t, h.m.genView.opts.Symbols)
	assert.False(t, strings.ContainsAny(h.m.genView.value, "0123456789!@#$%^&*"))

	h.press("c")
	assert.Equal(t, h.m.genView.value, h.clip.value)

	h.press("esc")
	assert.Equal(t, screenList, h.m.screen)
}

func TestModel_GeneratorLengthBounds(t *testing.T) {
	h := newHarness(t)
	h.unlock(correct)
	h.press("g")
	h.m.genView.opts.Length = 64

	h.press("right")

	assert.Equal(t, 64, h.m.genView.opts.Length)
}

func TestModel_BuildInfo(t *testing.T) {
	h := newHarness(t)

	h.press("f1")
	view := h.m.View()
	assert.Contains(t, view, "ИНФОРМАЦИЯ О ПРОГРАММЕ")
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, h.m.session.Identity())

	h.press("x")
	assert.True(t, h.m.showBuildInfo)
	assert.Empty(t, h.m.unlock.password.Value())

	h.press("esc")
	assert.False(t, h.m.showBuildInfo)
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name   string
		unlock bool
		key    string
	}{
		{"ctrl+c on unlock screen", false, "ctrl+c"},
		{"q on list", true, "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if tt.unlock {
				h.unlock(correct)
			}

			cmd := h.press(tt.key)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, h.m.quitByUser)
		})
	}
}

func TestModel_QTypedIntoPassword(t *testing.T) {
	h := newHarness(t)

	h.press("q")

	assert.False(t, h.m.quitByUser)
	assert.Equal(t, "q", h.m.unlock.password.Value())
}
