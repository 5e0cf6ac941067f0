package strava

import (
	"fmt"
	"net/http"
)

// AuthError means the bearer token was rejected by the provider,
// the user has to go through the oauth flow again
type AuthError struct {
	Message string
}

func NewAuthError() *AuthError {
	return &AuthError{Message: "invalid or expired token"}
}

func (e *AuthError) Error() string {
	return e.Message
}

// RateLimitError is returned for a 429 on the first activities page.
// Provider rate limits: 15 min / 100 requests, 1000 requests daily.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "rate limited by the provider API - please try again in a few minutes"
}

// APIError is any other non-success provider response
type APIError struct {
	Status     int
	StatusText string
}

func NewAPIError(status int) *APIError {
	return &APIError{
		Status:     status,
		StatusText: http.StatusText(status),
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider api error: %d %s", e.Status, e.StatusText)
}

// ConfigError means required oauth credentials are not set,
// raised before any network call is made
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing oauth credentials: %s", e.Missing)
}
