package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-webhooks/internal/app"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/utils"
	"github.com/MKhiriev/go-webhooks/internal/validators"
	"github.com/MKhiriev/go-webhooks/models"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response, err := h.services.WebhookService.Ping(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "ping failed")
		return
	}

	log.Info().
		Int("successful", response.SuccessfulWebhooksCount).
		Int("failed", response.FailedWebhooksCount).
		Msg("ping completed")
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) simulateEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.TriggerRequest
	if err := decodeRequest(r, &request); err != nil {
		writeServiceError(w, r, err, "invalid simulate request")
		return
	}

	response, err := h.services.WebhookService.Simulate(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "event simulation failed")
		return
	}

	log.Info().
		Str("event", request.Event).
		Int("successful", response.SuccessfulWebhooksCount).
		Int("failed", response.FailedWebhooksCount).
		Msg("event simulated")
	utils.WriteJSON(w, response, http.StatusOK)
}

// trigger accepts the event and returns before any webhook is called.
// Delivery outcomes only appear in the logs.
func (h *Handler) trigger(w http.ResponseWriter, r *http.Request) {
	var request models.TriggerRequest
	if err := decodeRequest(r, &request); err != nil {
		writeServiceError(w, r, err, "invalid trigger request")
		return
	}

	if err := h.services.WebhookService.Trigger(r.Context(), request); err != nil {
		writeServiceError(w, r, err, "event trigger rejected")
		return
	}

	message := fmt.Sprintf(app.MsgEventTriggeredFmt, validators.NormalizeEvent(request.Event))
	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusAccepted)
}
