// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"sort"
)

// Registry is the persisted webhook state: event name mapped to the ordered,
// duplicate-free list of webhook URLs subscribed to it.
//
// The same URL may be registered under several events, but never twice under
// the same event.
type Registry map[string][]string

// Events returns the event names of the registry in ascending order.
// Every backend is a key-ordered mapping through this method, so iteration
// over a Registry is deterministic.
func (r Registry) Events() []string {
	events := make([]string, 0, len(r))
	for event := range r {
		events = append(events, event)
	}
	sort.Strings(events)

	return events
}

// Has reports whether event is a key of the registry.
func (r Registry) Has(event string) bool {
	_, ok := r[event]
	return ok
}

// HasURL reports whether url is registered under event.
func (r Registry) HasURL(event, url string) bool {
	return slices.Contains(r[event], url)
}

// Only returns a registry restricted to the given event.
func (r Registry) Only(event string) Registry {
	return Registry{event: slices.Clone(r[event])}
}

// Clone returns a deep copy of the registry.
func (r Registry) Clone() Registry {
	cloned := make(Registry, len(r))
	for event, urls := range r {
		cloned[event] = slices.Clone(urls)
	}

	return cloned
}

// Len returns the total number of (event, url) pairs.
func (r Registry) Len() int {
	total := 0
	for _, urls := range r {
		total += len(urls)
	}

	return total
}

// Webhooks converts the registry into its API listing form, ordered by event.
func (r Registry) Webhooks() []Webhook {
	webhooks := make([]Webhook, 0, len(r))
	for _, event := range r.Events() {
		urls := r[event]
		if urls == nil {
			urls = []string{}
		}
		webhooks = append(webhooks, Webhook{Event: event, URLs: urls})
	}

	return webhooks
}
