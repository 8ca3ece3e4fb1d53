package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-webhooks/internal/store"
	"github.com/MKhiriev/go-webhooks/models"
)

func intPtr(v int) *int {
	return &v
}

func TestPing_ReturnsReport(t *testing.T) {
	h := newTestHandler(t)
	h.webhooks.EXPECT().Ping(gomock.Any()).Return(models.PingResponse{
		Message: "Ping completed for all events",
		DeliveryReport: models.NewDeliveryReport([]models.DeliveryResult{
			{Event: "order_placed", URL: "http://a/x", Outcome: models.OutcomeSuccess, Payload: map[string]any{"ok": true}, StatusCode: intPtr(200)},
			{Event: "order_placed", URL: "http://b/y", Outcome: models.OutcomeFailure, Error: "HTTP error: Internal Server Error", StatusCode: intPtr(500)},
		}),
	}, nil)

	rec := h.serve(http.MethodPost, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Ping completed for all events",
		"successful_webhooks_count": 1,
		"successful_webhooks": [{"event":"order_placed","url":"http://a/x","payload":{"ok":true},"status_code":200}],
		"failed_webhooks_count": 1,
		"failed_webhooks": [{"event":"order_placed","url":"http://b/y","error":"HTTP error: Internal Server Error","status_code":500}]
	}`, rec.Body.String())
}

func TestPing_StorageUnavailable(t *testing.T) {
	h := newTestHandler(t)
	h.webhooks.EXPECT().Ping(gomock.Any()).Return(models.PingResponse{}, &store.StorageError{Detail: "registry file is missing"})

	rec := h.serve(http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSimulateEvent(t *testing.T) {
	t.Run("simulated", func(t *testing.T) {
		h := newTestHandler(t)
		h.webhooks.EXPECT().Simulate(gomock.Any(), models.TriggerRequest{Event: "shipped"}).
			Return(models.PingResponse{Message: "Event 'shipped' simulated.", DeliveryReport: models.NewDeliveryReport(nil)}, nil)

		rec := h.serve(http.MethodPost, "/simulate-event", `{"event":"shipped"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Event 'shipped' simulated.","successful_webhooks_count":0,"successful_webhooks":[],"failed_webhooks_count":0,"failed_webhooks":[]}`, rec.Body.String())
	})

	t.Run("event has no urls", func(t *testing.T) {
		h := newTestHandler(t)
		h.webhooks.EXPECT().Simulate(gomock.Any(), gomock.Any()).
			Return(models.PingResponse{}, registryErr(store.ErrEventHasNoURLs, "shipped", ""))

		rec := h.serve(http.MethodPost, "/simulate-event", `{"event":"shipped"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"event 'shipped' has no registered URLs"}`, rec.Body.String())
	})
}

func TestTrigger(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		h := newTestHandler(t)
		h.webhooks.EXPECT().Trigger(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request models.TriggerRequest) error {
				assert.Equal(t, "Order_Placed", request.Event)
				assert.Equal(t, map[string]any{"id": float64(1)}, request.Data)
				return nil
			})

		rec := h.serve(http.MethodPost, "/trigger", `{"event":"Order_Placed","data":{"id":1}}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"message":"Event 'order_placed' triggered."}`, rec.Body.String())
	})

	t.Run("invalid json", func(t *testing.T) {
		h := newTestHandler(t)

		rec := h.serve(http.MethodPost, "/trigger", `{"event":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
