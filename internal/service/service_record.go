// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type recordService struct {
	recordStore store.RecordStore

	logger *logger.Logger
}

func NewRecordService(recordStore store.RecordStore, logger *logger.Logger) RecordService {
	return &recordService{
		recordStore: recordStore,
		logger:      logger,
	}
}

func (s *recordService) List(ctx context.Context, query string) ([]models.VaultRecord, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.recordStore.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records, nil
	}

	filtered := make([]models.VaultRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), query) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *recordService) Create(ctx context.Context, in models.RecordInput) (models.VaultRecord, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return models.VaultRecord{}, err
	}

	return s.recordStore.Create(ctx, owner, in)
}

func (s *recordService) Update(ctx context.Context, id string, in models.RecordInput) (models.VaultRecord, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return models.VaultRecord{}, err
	}

	return s.recordStore.Update(ctx, id, owner, in)
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	return s.recordStore.Delete(ctx, id, owner)
}

func ownerFromContext(ctx context.Context) (string, error) {
	owner, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		logger.FromContext(ctx).Error().Str("func", "ownerFromContext").Msg("no identity in context")
		return "", fmt.Errorf("%w: no identity in context", ErrUnauthenticated)
	}
	return owner, nil
}
