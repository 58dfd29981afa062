package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// memoryRecordStore keeps records in process memory. It backs tests and the
// ":memory:" DSN; contents are lost on exit.
type memoryRecordStore struct {
	mu      sync.RWMutex
	records map[string]models.VaultRecord
	order   []string

	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryRecordStore constructs an empty in-memory [RecordStore].
func NewMemoryRecordStore(log *logger.Logger) RecordStore {
	return &memoryRecordStore{
		records: make(map[string]models.VaultRecord),
		ids:     utils.NewUUIDGenerator(),
		now:     func() time.Time { return time.Now().UTC() },
		logger:  log,
	}
}

func (m *memoryRecordStore) List(ctx context.Context, ownerID string) ([]models.VaultRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.VaultRecord, 0, len(m.order))
	for _, id := range m.order {
		if record := m.records[id]; record.OwnerID == ownerID {
			result = append(result, record)
		}
	}

	return result, nil
}

func (m *memoryRecordStore) Create(ctx context.Context, ownerID string, in models.RecordInput) (models.VaultRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.VaultRecord{}, err
	}
	in, err := normalizeInput(ownerID, in)
	if err != nil {
		return models.VaultRecord{}, err
	}

	now := m.now()
	record := models.VaultRecord{
		ID:            m.ids.Generate(),
		OwnerID:       ownerID,
		Title:         in.Title,
		IV:            in.IV,
		EncryptedData: in.EncryptedData,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.ID] = record
	m.order = append(m.order, record.ID)

	logger.FromContext(ctx).Debug().
		Str("func", "memoryRecordStore.Create").
		Str("record_id", record.ID).
		Msg("record stored")

	return record, nil
}

func (m *memoryRecordStore) Update(ctx context.Context, id, ownerID string, in models.RecordInput) (models.VaultRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.VaultRecord{}, err
	}
	if err := checkScope(id, ownerID); err != nil {
		return models.VaultRecord{}, err
	}
	in, err := normalizeInput(ownerID, in)
	if err != nil {
		return models.VaultRecord{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok || record.OwnerID != ownerID {
		return models.VaultRecord{}, ErrRecordNotFound
	}

	record.Title = in.Title
	record.IV = in.IV
	record.EncryptedData = in.EncryptedData
	record.UpdatedAt = m.now()
	m.records[id] = record

	return record, nil
}

func (m *memoryRecordStore) Delete(ctx context.Context, id, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkScope(id, ownerID); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok || record.OwnerID != ownerID {
		return ErrRecordNotFound
	}

	delete(m.records, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })

	return nil
}
