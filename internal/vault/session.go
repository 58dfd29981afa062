// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// State is the lifecycle state of a [Session].
type State int

const (
	StateLocked State = iota
	StateUnlocking
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocking:
		return "unlocking"
	case StateUnlocked:
		return "unlocked"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is the vault of one identity on the client.
//
// op serializes the operations that change the session (Unlock, Lock and the
// record mutations); mu guards the fields read by State, List and Get so
// that the UI can render while a mutation is in flight.
type Session struct {
	identity string
	store    store.RecordStore
	engine   crypto.Engine
	logger   *logger.Logger

	op sync.Mutex

	mu          sync.RWMutex
	state       State
	key         *crypto.DerivedKey
	records     []models.VaultRecord
	recoverable []RecordError
}

// NewSession creates a locked session for identity. identity is both the
// owner id passed to the store and the key derivation salt.
func NewSession(identity string, recordStore store.RecordStore, engine crypto.Engine, log *logger.Logger) *Session {
	if engine == nil {
		engine = crypto.NewEngine()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Session{
		identity: identity,
		store:    recordStore,
		engine:   engine,
		logger:   log,
		state:    StateLocked,
	}
}

// Identity returns the owner identity of the session.
func (s *Session) Identity() string {
	return s.identity
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Unlock derives the key from masterSecret, loads every record of the
// identity and decrypts it.
//
// Records that fail to decrypt are dropped from the visible set and reported
// by RecoverableErrors. When the store holds records and none of them can be
// decrypted the unlock fails with ErrUnlockFailed: a wrong master secret and
// corrupted data look the same. On any failure the session stays locked.
func (s *Session) Unlock(ctx context.Context, masterSecret string) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.Lock()
	if s.state != StateLocked {
		s.mu.Unlock()
		return ErrAlreadyUnlocked
	}
	s.state = StateUnlocking
	s.mu.Unlock()

	key, err := s.engine.DeriveKey(masterSecret, s.identity)
	if err != nil {
		s.logger.Err(err).Str("func", "Session.Unlock").Msg("key derivation failed")
		s.reset(StateLocked)
		return fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}

	records, recErrs, err := s.load(ctx, key)
	if err != nil {
		key.Wipe()
		s.reset(StateLocked)
		return err
	}

	if len(records) == 0 && len(recErrs) > 0 {
		s.logger.Warn().
			Str("func", "Session.Unlock").
			Int("failed", len(recErrs)).
			Msg("no record could be decrypted")
		key.Wipe()
		s.reset(StateLocked)
		return fmt.Errorf("%w: %w", ErrUnlockFailed, crypto.ErrDecryption)
	}

	s.mu.Lock()
	s.key = key
	s.records = records
	s.recoverable = recErrs
	s.state = StateUnlocked
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "Session.Unlock").
		Int("records", len(records)).
		Int("failed", len(recErrs)).
		Msg("vault unlocked")

	return nil
}

// Lock wipes the key and forgets every decrypted record. Locking a locked
// session is a no-op.
func (s *Session) Lock() {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.RLock()
	wasUnlocked := s.state == StateUnlocked
	s.mu.RUnlock()

	s.reset(StateLocked)

	if wasUnlocked {
		s.logger.Info().Str("func", "Session.Lock").Msg("vault locked")
	}
}

// reset wipes the key material and drops the decrypted set.
func (s *Session) reset(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key.Wipe()
	s.key = nil
	for i := range s.records {
		s.records[i].Payload = nil
	}
	s.records = nil
	s.recoverable = nil
	s.state = state
}

// List returns the decrypted records. A non-blank filter keeps the records
// whose title contains it, ignoring case.
func (s *Session) List(filter string) ([]models.VaultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateUnlocked {
		return nil, ErrLocked
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	result := make([]models.VaultRecord, 0, len(s.records))
	for _, r := range s.records {
		if filter != "" && !strings.Contains(strings.ToLower(r.Title), filter) {
			continue
		}
		result = append(result, cloneRecord(r))
	}

	return result, nil
}

// Get returns one decrypted record.
func (s *Session) Get(id string) (models.VaultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateUnlocked {
		return models.VaultRecord{}, ErrLocked
	}

	for _, r := range s.records {
		if r.ID == id {
			return cloneRecord(r), nil
		}
	}

	return models.VaultRecord{}, ErrNotFoundOrForbidden
}

// RecoverableErrors returns the records skipped by the last load.
func (s *Session) RecoverableErrors() []RecordError {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RecordError, len(s.recoverable))
	copy(out, s.recoverable)
	return out
}

// Create encrypts payload, stores it under title and reloads the vault.
func (s *Session) Create(ctx context.Context, title string, payload models.DecryptedPayload) (models.VaultRecord, error) {
	s.op.Lock()
	defer s.op.Unlock()

	key, err := s.unlockedKey()
	if err != nil {
		return models.VaultRecord{}, err
	}

	env, err := s.engine.EncryptData(key, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "Session.Create").Msg("encryption failed")
		return models.VaultRecord{}, fmt.Errorf("encrypt record: %w", err)
	}

	created, err := s.store.Create(ctx, s.identity, models.NewRecordInput(title, env))
	if err != nil {
		s.logger.Err(err).Str("func", "Session.Create").Msg("store rejected new record")
		return models.VaultRecord{}, storeError(err)
	}

	if err = s.refresh(ctx, key); err != nil {
		return models.VaultRecord{}, err
	}

	return s.Get(created.ID)
}

// Update re-encrypts payload with a fresh IV and replaces record id.
// Records this session has not loaded are rejected before reaching the store.
func (s *Session) Update(ctx context.Context, id, title string, payload models.DecryptedPayload) (models.VaultRecord, error) {
	s.op.Lock()
	defer s.op.Unlock()

	key, err := s.unlockedKey()
	if err != nil {
		return models.VaultRecord{}, err
	}
	if !s.owns(id) {
		return models.VaultRecord{}, ErrNotFoundOrForbidden
	}

	env, err := s.engine.EncryptData(key, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "Session.Update").Msg("encryption failed")
		return models.VaultRecord{}, fmt.Errorf("encrypt record: %w", err)
	}

	if _, err = s.store.Update(ctx, id, s.identity, models.NewRecordInput(title, env)); err != nil {
		s.logger.Err(err).Str("func", "Session.Update").Str("record_id", id).Msg("store rejected update")
		return models.VaultRecord{}, storeError(err)
	}

	if err = s.refresh(ctx, key); err != nil {
		return models.VaultRecord{}, err
	}

	return s.Get(id)
}

// Delete removes record id. Records that failed to decrypt may be deleted
// too, which is the only way to get rid of corrupted entries.
func (s *Session) Delete(ctx context.Context, id string) error {
	s.op.Lock()
	defer s.op.Unlock()

	key, err := s.unlockedKey()
	if err != nil {
		return err
	}
	if !s.owns(id) {
		return ErrNotFoundOrForbidden
	}

	if err = s.store.Delete(ctx, id, s.identity); err != nil {
		s.logger.Err(err).Str("func", "Session.Delete").Str("record_id", id).Msg("store rejected delete")
		return storeError(err)
	}

	return s.refresh(ctx, key)
}

// Refresh reloads and decrypts every record of the identity.
func (s *Session) Refresh(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	key, err := s.unlockedKey()
	if err != nil {
		return err
	}

	return s.refresh(ctx, key)
}

func (s *Session) refresh(ctx context.Context, key *crypto.DerivedKey) error {
	records, recErrs, err := s.load(ctx, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.recoverable = recErrs
	s.mu.Unlock()

	return nil
}

// load fetches the identity's records and decrypts them with key.
func (s *Session) load(ctx context.Context, key *crypto.DerivedKey) ([]models.VaultRecord, []RecordError, error) {
	stored, err := s.store.List(ctx, s.identity)
	if err != nil {
		s.logger.Err(err).Str("func", "Session.load").Msg("failed to list records")
		return nil, nil, storeError(err)
	}

	records := make([]models.VaultRecord, 0, len(stored))
	var recErrs []RecordError
	for _, r := range stored {
		payload, decErr := s.engine.DecryptData(key, r.IV, r.EncryptedData)
		if decErr != nil {
			s.logger.Warn().
				Err(decErr).
				Str("func", "Session.load").
				Str("record_id", r.ID).
				Msg("record could not be decrypted")
			recErrs = append(recErrs, RecordError{RecordID: r.ID, Title: r.Title, Err: decErr})
			continue
		}
		r.Payload = &payload
		records = append(records, r)
	}

	return records, recErrs, nil
}

func (s *Session) unlockedKey() (*crypto.DerivedKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateUnlocked {
		return nil, ErrLocked
	}
	return s.key, nil
}

// owns reports whether id was loaded for this identity, decryptable or not.
func (s *Session) owns(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return true
		}
	}
	for _, e := range s.recoverable {
		if e.RecordID == id {
			return true
		}
	}
	return false
}

func storeError(err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFoundOrForbidden, err)
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}

func cloneRecord(r models.VaultRecord) models.VaultRecord {
	if r.Payload != nil {
		payload := *r.Payload
		r.Payload = &payload
	}
	return r
}
