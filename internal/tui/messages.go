package tui

import "github.com/MKhiriev/go-pass-vault/models"

type unlockDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type recordSavedMsg struct {
	record models.VaultRecord
	err    error
}

type recordDeletedMsg struct {
	err error
}

// autoLockedMsg is sent by the auto-locker after the session was locked for
// inactivity.
type autoLockedMsg struct{}

// clipboardClearMsg asks to wipe the clipboard if it still holds value.
type clipboardClearMsg struct {
	value string
}
