// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Outcome classifies a single delivery attempt.
type Outcome string

const (
	// OutcomeSuccess means the endpoint answered with a 2xx status.
	OutcomeSuccess Outcome = "success"

	// OutcomeFailure means the endpoint answered with a non-2xx status or
	// could not be reached at all.
	OutcomeFailure Outcome = "failure"
)

// Envelope is the JSON body POSTed to every webhook URL.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// SendResult is what the outbound transport reports for one POST that
// produced an HTTP response.
type SendResult struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Reason is the HTTP reason phrase (e.g. "Not Found").
	Reason string

	// Body is the raw response body.
	Body []byte
}

// IsSuccess reports whether the response status is in the 2xx range.
func (r SendResult) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DeliveryResult is the outcome of one POST to one URL in a delivery cycle.
//
// Successful results carry the parsed response Payload and a StatusCode.
// Failed results carry Error and, for HTTP-level rejections, a StatusCode;
// StatusCode is nil when the request never produced a response.
type DeliveryResult struct {
	Event      string  `json:"event"`
	URL        string  `json:"url"`
	Outcome    Outcome `json:"-"`
	Payload    any     `json:"payload,omitempty"`
	Error      string  `json:"error,omitempty"`
	StatusCode *int    `json:"status_code"`
}

// DeliveryReport aggregates all attempts of one delivery cycle.
//
// The count fields are always equal to the lengths of their lists: they are
// only ever set by [NewDeliveryReport].
type DeliveryReport struct {
	SuccessfulWebhooksCount int              `json:"successful_webhooks_count"`
	SuccessfulWebhooks      []DeliveryResult `json:"successful_webhooks"`
	FailedWebhooksCount     int              `json:"failed_webhooks_count"`
	FailedWebhooks          []DeliveryResult `json:"failed_webhooks"`
}

// NewDeliveryReport splits results by outcome, preserving their order.
func NewDeliveryReport(results []DeliveryResult) DeliveryReport {
	report := DeliveryReport{
		SuccessfulWebhooks: make([]DeliveryResult, 0, len(results)),
		FailedWebhooks:     make([]DeliveryResult, 0),
	}

	for _, result := range results {
		if result.Outcome == OutcomeSuccess {
			report.SuccessfulWebhooks = append(report.SuccessfulWebhooks, result)
			continue
		}
		report.FailedWebhooks = append(report.FailedWebhooks, result)
	}

	report.SuccessfulWebhooksCount = len(report.SuccessfulWebhooks)
	report.FailedWebhooksCount = len(report.FailedWebhooks)

	return report
}

// PingResponse is the body returned by the ping and simulate endpoints.
type PingResponse struct {
	Message string `json:"message"`
	DeliveryReport
}

// TriggerRequest is the body of the simulate and trigger endpoints.
type TriggerRequest struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}
