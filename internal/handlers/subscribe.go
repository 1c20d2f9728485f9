// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type subscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

// Subscribe handles POST /api/subscribe. Subscribing an address that is
// already on the list is not an error; resubscribing an unsubscribed
// address reactivates it.
func (a *API) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email, errMsg := validateEmail(req.Email)
	if errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	sub, err := a.subscribers.Subscribe(email, req.Source)
	if err != nil {
		slog.Error("subscribe failed", "error", err)
		respondError(w, http.StatusInternalServerError, "subscribe failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"id":     sub.ID,
		"email":  sub.Email,
		"status": sub.Status,
	})
}

type unsubscribeRequest struct {
	ID uuid.UUID `json:"id"`
}

// Unsubscribe handles POST /api/unsubscribe. Unknown ids succeed silently
// so unsubscribe links never dead-end.
func (a *API) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.subscribers.Unsubscribe(req.ID); err != nil {
		slog.Error("unsubscribe failed", "id", req.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "unsubscribe failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "unsubscribed"})
}
