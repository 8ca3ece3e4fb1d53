// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the subscriber: a one-shot client of the webhook
// service that registers a callback URL for a list of events.
package client
