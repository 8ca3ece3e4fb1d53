package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-webhooks/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEvent targets the event name of a request.
	FieldEvent = "event"

	// FieldURL targets the webhook URL of a request.
	FieldURL = "url"
)

// maxEventLength bounds event names so they fit any storage backend key.
const maxEventLength = 128

// eventNamePattern accepts lowercase identifier-like tokens: a letter or
// underscore followed by letters, digits and underscores.
var eventNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// WebhookValidator implements [Validator] for the webhook request models:
// WebhookRequest, EventRequest and TriggerRequest (values or pointers), plus
// a bare event name passed as a string.
//
// Event names are expected to be lowercased already, see [NormalizeEvent].
type WebhookValidator struct{}

// NewWebhookValidator returns a ready-to-use [WebhookValidator].
func NewWebhookValidator() Validator {
	return &WebhookValidator{}
}

// NormalizeEvent converts an event name to the canonical lowercase form that
// is stored in the registry.
func NormalizeEvent(event string) string {
	return strings.ToLower(event)
}

func (v *WebhookValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.WebhookRequest:
		return v.validateWebhookRequest(value, fields...)
	case *models.WebhookRequest:
		return v.validateWebhookRequest(*value, fields...)

	case models.EventRequest:
		return validateEvent(value.Event)
	case *models.EventRequest:
		return validateEvent(value.Event)

	case models.TriggerRequest:
		return validateEvent(value.Event)
	case *models.TriggerRequest:
		return validateEvent(value.Event)

	case string:
		return validateEvent(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *WebhookValidator) validateWebhookRequest(request models.WebhookRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEvent, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldEvent:
			if err := validateEvent(request.Event); err != nil {
				return err
			}
		case FieldURL:
			if err := validateURL(request.URL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEvent(event string) error {
	if event == "" {
		return ErrEmptyEvent
	}
	if len(event) > maxEventLength || !eventNamePattern.MatchString(event) {
		return fmt.Errorf("%w: %q", ErrInvalidEventName, event)
	}

	return nil
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q", ErrURLSchemeRequired, raw)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}

	return nil
}
