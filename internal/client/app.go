// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type App struct {
	session  *vault.Session
	ui       *tui.TUI
	storages *store.Storages

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the record store selected by cfg and creates a locked vault
// session for cfg.Session.Identity.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	recordStore, storages, err := openRecordStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	session := vault.NewSession(cfg.Session.Identity, recordStore, nil, logger)

	return &App{
		session:  session,
		ui:       tui.New(session, cfg.Session.AutoLock, buildInfo, logger),
		storages: storages,
		logger:   logger,
	}, nil
}

func openRecordStore(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (store.RecordStore, *store.Storages, error) {
	if cfg.UsesRemoteStore() {
		remote, err := adapter.NewHTTPRecordStore(cfg.Adapter, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("create remote record store: %w", err)
		}
		logger.Info().Str("func", "openRecordStore").Msg("using remote record store")
		return remote, nil, nil
	}

	storages, err := store.NewStorages(ctx, config.Storage{
		DB:    config.DB{DSN: cfg.Storage.DSN},
		Mongo: cfg.Storage.Mongo,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create local record store: %w", err)
	}
	return storages.RecordStore, storages, nil
}

// Run shows the UI until the user quits. Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) close() {
	a.session.Lock()
	if a.storages == nil {
		return
	}
	if err := a.storages.Close(context.Background()); err != nil {
		a.logger.Err(err).Str("func", "*App.close").Msg("error closing storages")
	}
}
