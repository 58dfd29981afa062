package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const vaultPath = "/api/vault"

// HTTPRecordStore is a [store.RecordStore] backed by the vault HTTP API.
//
// The server derives the owner from the bearer token, so the ownerID
// arguments are only used to check that the token belongs to the same
// identity the session was opened for.
type HTTPRecordStore struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPRecordStore normalises cfg.HTTPAddress and builds a client for it.
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPRecordStore(cfg config.ClientAdapter, logger *logger.Logger) (*HTTPRecordStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &HTTPRecordStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		token:  strings.TrimSpace(cfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *HTTPRecordStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

// List fetches GET /api/vault.
func (h *HTTPRecordStore) List(ctx context.Context, ownerID string) ([]models.VaultRecord, error) {
	var records []models.VaultRecord

	resp, err := h.authedRequest(ctx).
		SetResult(&records).
		Get(vaultPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	for _, r := range records {
		if err = checkOwner(r, ownerID); err != nil {
			return nil, err
		}
	}

	h.logger.Debug().Int("count", len(records)).Msg("records fetched from server")
	return records, nil
}

// Create posts a new record to POST /api/vault.
func (h *HTTPRecordStore) Create(ctx context.Context, ownerID string, in models.RecordInput) (models.VaultRecord, error) {
	var record models.VaultRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&record).
		Post(vaultPath)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return record, checkOwner(record, ownerID)
}

// Update replaces a record through PUT /api/vault/{id}.
func (h *HTTPRecordStore) Update(ctx context.Context, id, ownerID string, in models.RecordInput) (models.VaultRecord, error) {
	if id == "" {
		return models.VaultRecord{}, store.ErrRecordNotFound
	}

	var record models.VaultRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(in).
		SetResult(&record).
		Put(vaultPath + "/{id}")
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return record, checkOwner(record, ownerID)
}

// Delete removes a record through DELETE /api/vault/{id}.
func (h *HTTPRecordStore) Delete(ctx context.Context, id, ownerID string) error {
	if id == "" {
		return store.ErrRecordNotFound
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete(vaultPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func checkOwner(r models.VaultRecord, ownerID string) error {
	if r.OwnerID != ownerID {
		return ErrIdentityMismatch
	}
	return nil
}
