// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// webhook service, its HTTP handlers, the receiver stub and the subscriber.
//
// All Msg* constants are human-readable strings written into response bodies
// or log entries. Constants ending in Fmt take the event name as their only
// argument.
package app

const (
	// MsgWebhookRegistered confirms a successful POST /webhook.
	MsgWebhookRegistered = "Webhook registered successfully"

	// MsgPingCompleted is the message of every ping report.
	MsgPingCompleted = "Ping completed for all events"

	// MsgEventCreatedFmt confirms POST /events.
	MsgEventCreatedFmt = "Event '%s' created."

	// MsgEventSimulatedFmt is the message of a simulate report.
	MsgEventSimulatedFmt = "Event '%s' simulated."

	// MsgEventTriggeredFmt acknowledges a fire-and-forget trigger.
	MsgEventTriggeredFmt = "Event '%s' triggered."

	// MsgSamplePayload is delivered by simulate when the request has no data.
	MsgSamplePayload = "Sample payload"

	// MsgInvalidJSONPayload is returned by the receiver stub for bodies that
	// are not JSON.
	MsgInvalidJSONPayload = "Invalid JSON payload"

	// MsgInvalidGzipData is returned when a gzip encoded request body cannot
	// be inflated.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgAlreadySubscribed is logged by the subscriber when the callback URL
	// is already registered for an event.
	MsgAlreadySubscribed = "callback already subscribed"
)
