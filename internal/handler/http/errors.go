// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// the expected request schema.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEmptyEventParam is returned when the {event} path segment is blank.
	ErrEmptyEventParam = errors.New("event path parameter is empty")
)
