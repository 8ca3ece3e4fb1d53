// Package http implements the HTTP transport of the webhook service.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, request metrics and response compression are handled here
// before requests are delegated to the service layer, and service errors are
// translated to status codes by statusFromError.
package http
