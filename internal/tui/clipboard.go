package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultClipboardTTL is how long a copied secret stays in the clipboard.
const defaultClipboardTTL = 30 * time.Second

type clipboardIO interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }

// copyToClipboard writes value and schedules its removal after ttl.
func copyToClipboard(clip clipboardIO, value string, ttl time.Duration) (tea.Cmd, error) {
	if err := clip.WriteAll(value); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return clipboardClearMsg{value: value}
	}), nil
}

// clearClipboard wipes the clipboard unless the user copied something else
// in the meantime.
func clearClipboard(clip clipboardIO, value string) {
	current, err := clip.ReadAll()
	if err != nil || current != value {
		return
	}
	_ = clip.WriteAll("")
}
