package models

// WebhookRequest is the body of register and unregister requests.
type WebhookRequest struct {
	// Event is the event name; lowercased and validated as an identifier
	// before it reaches the registry.
	Event string `json:"event"`

	// URL is the HTTP or HTTPS endpoint that receives the notifications.
	URL string `json:"url"`
}

// WebhookResponse confirms a successful registration.
type WebhookResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Event   string `json:"event"`
}

// EventRequest is the body of the event creation request.
type EventRequest struct {
	Event string `json:"event"`
}

// Webhook lists the URLs registered for one event.
type Webhook struct {
	Event string   `json:"event"`
	URLs  []string `json:"urls"`
}

// RegisteredWebhooksResponse is the body of the listing endpoints.
type RegisteredWebhooksResponse struct {
	Webhooks []Webhook `json:"webhooks"`
}

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
