// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avdeyev/go-journal-keeper/internal/logger"
	"github.com/avdeyev/go-journal-keeper/internal/store"
	"github.com/avdeyev/go-journal-keeper/internal/utils"
	"github.com/avdeyev/go-journal-keeper/models"
)

// createEntry handles POST /journals/. The entry's owner is always the
// authenticated user placed in the context by the auth middleware.
func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdEntry, err := h.services.JournalService.CreateEntry(ctx, owner, models.JournalEntry{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		log.Err(err).Msg("journal entry creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, createdEntry, http.StatusOK)
}

// listEntries handles GET /journals/ and returns the authenticated user's
// entries in insertion order. A user with no entries receives an empty JSON
// array, not null.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.JournalService.ListEntries(ctx, owner)
	if err != nil {
		log.Err(err).Msg("journal entries listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// getEntry handles GET /journals/{entryID}. A non-numeric id, a missing
// entry, and an entry owned by another user all produce the same 404.
func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		log.Err(err).Str("entry_id", chi.URLParam(r, "entryID")).Msg("non-numeric journal entry id requested")
		http.Error(w, store.ErrJournalEntryNotFound.Error(), http.StatusNotFound)
		return
	}

	entry, err := h.services.JournalService.GetEntry(ctx, owner, entryID)
	if err != nil {
		if errors.Is(err, store.ErrJournalEntryNotFound) {
			log.Err(err).Int64("entry_id", entryID).Msg("journal entry not found for requesting user")
			http.Error(w, store.ErrJournalEntryNotFound.Error(), http.StatusNotFound)
			return
		}
		log.Err(err).Int64("entry_id", entryID).Msg("journal entry lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}
