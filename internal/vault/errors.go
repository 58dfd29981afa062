package vault

import (
	"errors"
	"fmt"
)

var (
	ErrLocked              = errors.New("vault is locked")
	ErrAlreadyUnlocked     = errors.New("vault is already unlocked")
	ErrUnlockFailed        = errors.New("unable to unlock vault")
	ErrStore               = errors.New("record store failure")
	ErrNotFoundOrForbidden = errors.New("record not found or not owned by this identity")
)

// RecordError describes a stored record that could not be decrypted during
// a load. The record is left out of the visible set.
type RecordError struct {
	RecordID string
	Title    string
	Err      error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %s (%q): %v", e.RecordID, e.Title, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}
