// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/utils"
	"github.com/MKhiriev/go-webhooks/models"
)

func (h *Handler) registerWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.WebhookRequest
	if err := decodeRequest(r, &request); err != nil {
		writeServiceError(w, r, err, "invalid register request")
		return
	}

	response, err := h.services.WebhookService.Register(ctx, request)
	if err != nil {
		writeServiceError(w, r, err, "webhook registration failed")
		return
	}

	log.Info().Str("event", response.Event).Str("url", response.URL).Msg("webhook registered")
	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) unregisterWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.WebhookRequest
	if err := decodeRequest(r, &request); err != nil {
		writeServiceError(w, r, err, "invalid unregister request")
		return
	}

	if err := h.services.WebhookService.Unregister(ctx, request); err != nil {
		writeServiceError(w, r, err, "webhook removal failed")
		return
	}

	log.Info().Str("event", request.Event).Str("url", request.URL).Msg("webhook unregistered")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	response, err := h.services.WebhookService.List(r.Context(), "")
	if err != nil {
		writeServiceError(w, r, err, "listing webhooks failed")
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listEventWebhooks(w http.ResponseWriter, r *http.Request) {
	event, err := eventParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid event")
		return
	}

	response, err := h.services.WebhookService.List(r.Context(), event)
	if err != nil {
		writeServiceError(w, r, err, "listing event webhooks failed")
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var request models.EventRequest
	if err := decodeRequest(r, &request); err != nil {
		writeServiceError(w, r, err, "invalid event request")
		return
	}

	response, err := h.services.WebhookService.CreateEvent(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "event creation failed")
		return
	}

	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	event, err := eventParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid event")
		return
	}

	if err = h.services.WebhookService.DeleteEvent(r.Context(), event); err != nil {
		writeServiceError(w, r, err, "event removal failed")
		return
	}

	logger.FromRequest(r).Info().Str("event", event).Msg("event deleted")
	w.WriteHeader(http.StatusNoContent)
}

// decodeRequest decodes the JSON body into v. Decoding failures other than
// an empty body are reported as ErrInvalidJSON.
func decodeRequest(r *http.Request, v any) error {
	err := utils.DecodeJSON(r, v)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func eventParam(r *http.Request) (string, error) {
	event := strings.TrimSpace(chi.URLParam(r, "event"))
	if event == "" {
		return "", ErrEmptyEventParam
	}

	return event, nil
}
