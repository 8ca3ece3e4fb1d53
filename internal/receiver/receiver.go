// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package receiver implements a stub webhook endpoint used to try the
// service locally: it logs every JSON notification it receives.
package receiver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-webhooks/internal/app"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/utils"
)

// StatusResponse is the acknowledgement returned for every notification.
type StatusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	now    func() time.Time
	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	return &Handler{
		now:    time.Now,
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/", h.receive)

	return router
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var payload json.RawMessage
	if err := utils.DecodeJSON(r, &payload); err != nil {
		h.logger.Warn().Err(err).Msg("invalid webhook payload")
		utils.WriteError(w, app.MsgInvalidJSONPayload, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Time("received_at", h.now()).
		RawJSON("payload", payload).
		Msg("webhook received")

	utils.WriteJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}
