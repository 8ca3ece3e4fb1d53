package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryReport(t *testing.T) {
	ok, notFound := 200, 404
	results := []DeliveryResult{
		{Event: "a", URL: "http://1", Outcome: OutcomeSuccess, Payload: map[string]any{}, StatusCode: &ok},
		{Event: "a", URL: "http://2", Outcome: OutcomeFailure, Error: "HTTP error: Not Found", StatusCode: &notFound},
		{Event: "b", URL: "http://3", Outcome: OutcomeFailure, Error: "connection refused"},
		{Event: "b", URL: "http://4", Outcome: OutcomeSuccess, Payload: map[string]any{"ok": true}, StatusCode: &ok},
	}

	report := NewDeliveryReport(results)

	assert.Equal(t, 2, report.SuccessfulWebhooksCount)
	assert.Len(t, report.SuccessfulWebhooks, report.SuccessfulWebhooksCount)
	assert.Equal(t, 2, report.FailedWebhooksCount)
	assert.Len(t, report.FailedWebhooks, report.FailedWebhooksCount)
	assert.Equal(t, "http://1", report.SuccessfulWebhooks[0].URL)
	assert.Equal(t, "http://4", report.SuccessfulWebhooks[1].URL)
	assert.Equal(t, "http://2", report.FailedWebhooks[0].URL)
}

func TestNewDeliveryReport_Empty(t *testing.T) {
	body, err := json.Marshal(NewDeliveryReport(nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"successful_webhooks_count": 0,
		"successful_webhooks": [],
		"failed_webhooks_count": 0,
		"failed_webhooks": []
	}`, string(body))
}

func TestPingResponse_JSON(t *testing.T) {
	ok := 200
	response := PingResponse{
		Message: "Ping completed for all events",
		DeliveryReport: NewDeliveryReport([]DeliveryResult{
			{Event: "a", URL: "http://1", Outcome: OutcomeSuccess, Payload: map[string]any{}, StatusCode: &ok},
			{Event: "a", URL: "http://2", Outcome: OutcomeFailure, Error: "connection refused"},
		}),
	}

	body, err := json.Marshal(response)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"message": "Ping completed for all events",
		"successful_webhooks_count": 1,
		"successful_webhooks": [{"event": "a", "url": "http://1", "payload": {}, "status_code": 200}],
		"failed_webhooks_count": 1,
		"failed_webhooks": [{"event": "a", "url": "http://2", "error": "connection refused", "status_code": null}]
	}`, string(body))
}
