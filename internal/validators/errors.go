package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEvent        = errors.New("event name is required")
	ErrInvalidEventName  = errors.New("event name must be a valid identifier (alphanumeric and underscores only)")
	ErrEmptyURL          = errors.New("url is required")
	ErrInvalidURL        = errors.New("url must be a valid HTTP or HTTPS URL")
	ErrURLSchemeRequired = errors.New("url scheme should be 'http' or 'https'")
)
