// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type TUI struct {
	session   *vault.Session
	autoLock  time.Duration
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New creates the terminal UI for session. A non-positive autoLock disables
// locking on inactivity.
func New(session *vault.Session, autoLock time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		session:   session,
		autoLock:  autoLock,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits. The session is locked on return.
func (t *TUI) Run(ctx context.Context) error {
	defer t.session.Lock()

	var program *tea.Program
	locker := vault.NewAutoLocker(t.session, func() {
		t.logger.Info().Msg("vault locked after inactivity")
		program.Send(autoLockedMsg{})
	})

	m := newModel(ctx, t.session, t.buildInfo)
	m.touch = locker.Touch

	program = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	locker.Start(ctx, t.autoLock)
	defer locker.Stop()

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if result, ok := final.(model); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
