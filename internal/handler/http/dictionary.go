// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-dict-keeper/internal/app"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/utils"
	"github.com/MKhiriev/go-dict-keeper/internal/validators"
	"github.com/MKhiriev/go-dict-keeper/models"
)

const (
	sinceQueryParam = "since"
	typeURLParam    = "type"
)

func (h *Handler) getBatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BatchRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.getBatch").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req, validators.FieldLength); err != nil {
		log.Err(err).Str("func", "*Handler.getBatch").Int("length", req.Length).Msg("batch length mismatch")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	batch, err := h.services.DictionaryService.GetBatch(r.Context(), req.Types)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBatch").Int("types", len(req.Types)).Msg("error getting dictionary batch")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, batch, http.StatusOK)
}

func (h *Handler) getChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	since := models.SyncToken(r.URL.Query().Get(sinceQueryParam))

	changes, err := h.services.DictionaryService.GetChanges(r.Context(), since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getChanges").Str("sync_token", string(since)).Msg("error getting dictionary changes")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, changes, http.StatusOK)
}

func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.services.DictionaryService.ListTypes(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listTypes").Msg("error listing dictionary types")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TypesResponse{Types: types, Length: len(types)}, http.StatusOK)
}

func (h *Handler) upsertEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	dictType := models.DictType(chi.URLParam(r, typeURLParam))

	var req models.UpsertRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.upsertEntries").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	// length is optional for mutations
	if req.Length != 0 {
		if err := h.validator.Validate(r.Context(), req, validators.FieldLength); err != nil {
			log.Err(err).Str("func", "*Handler.upsertEntries").Msg("entries length mismatch")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
	}

	token, err := h.services.DictionaryService.Upsert(r.Context(), dictType, req.Entries)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertEntries").Str("dict_type", string(dictType)).Msg("error upserting dictionary entries")
		h.writeError(w, err)
		return
	}

	log.Info().Str("dict_type", string(dictType)).Int("entries", len(req.Entries)).Str("sync_token", string(token)).Msg("dictionary entries upserted")
	utils.WriteJSON(w, models.MutationResponse{Token: token}, http.StatusOK)
}

func (h *Handler) removeEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	dictType := models.DictType(chi.URLParam(r, typeURLParam))

	var req models.RemoveRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.removeEntries").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if req.Length != 0 {
		if err := h.validator.Validate(r.Context(), req, validators.FieldLength); err != nil {
			log.Err(err).Str("func", "*Handler.removeEntries").Msg("codes length mismatch")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
	}

	token, err := h.services.DictionaryService.Remove(r.Context(), dictType, req.Codes)
	if err != nil {
		log.Err(err).Str("func", "*Handler.removeEntries").Str("dict_type", string(dictType)).Msg("error removing dictionary entries")
		h.writeError(w, err)
		return
	}

	log.Info().Str("dict_type", string(dictType)).Strs("codes", req.Codes).Str("sync_token", string(token)).Msg("dictionary entries removed")
	utils.WriteJSON(w, models.MutationResponse{Token: token}, http.StatusOK)
}
