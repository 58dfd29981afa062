// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// listRecords handles GET /api/vault[?q=substring].
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.RecordService.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error listing records")
		writeError(w, err)
		return
	}

	log.Debug().Int("count", len(records)).Msg("records listed")
	utils.WriteJSON(w, records, http.StatusOK)
}

// createRecord handles POST /api/vault.
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.RecordInput
	if err := utils.DecodeJSON(r.Body, &in); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.Create(r.Context(), in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("error creating record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

// updateRecord handles PUT /api/vault/{id}.
func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var in models.RecordInput
	if err := utils.DecodeJSON(r.Body, &in); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.Update(r.Context(), id, in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Str("record_id", id).Msg("error updating record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// deleteRecord handles DELETE /api/vault/{id}.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.RecordService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("record_id", id).Msg("error deleting record")
		writeError(w, err)
		return
	}

	utils.WriteMessage(w, app.MsgItemDeleted, http.StatusOK)
}
