package llm

import (
	"errors"
	"net"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// FailureKind is the category an upstream error falls into.
type FailureKind string

const (
	FailureConnection     FailureKind = "connection"
	FailureRateLimit      FailureKind = "rate_limit"
	FailureAuthentication FailureKind = "authentication"
	FailureAPI            FailureKind = "api"
	FailureUnexpected     FailureKind = "unexpected"
)

// Describe returns the log message for the category.
func (k FailureKind) Describe() string {
	switch k {
	case FailureConnection:
		return "could not connect to completion API"
	case FailureRateLimit:
		return "completion API rate limit exceeded"
	case FailureAuthentication:
		return "completion API authentication failed"
	case FailureAPI:
		return "completion API error"
	default:
		return "unexpected error calling completion API"
	}
}

// Classify maps an error from the OpenAI client onto a FailureKind.
func Classify(err error) FailureKind {
	if err == nil {
		return ""
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return kindForStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return kindForStatus(reqErr.HTTPStatusCode)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureConnection
	}
	return FailureUnexpected
}

func kindForStatus(status int) FailureKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return FailureAuthentication
	case http.StatusTooManyRequests:
		return FailureRateLimit
	default:
		return FailureAPI
	}
}
