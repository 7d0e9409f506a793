// Package errclass maps free-form system and network failure text to a
// normalized status record. It is pure pattern matching and is independent of
// JSON recovery; callers typically use it to decide whether to retry a
// generation whose output could not be recovered.
package errclass

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// Status is a normalized failure.
type Status struct {
	Code      int
	Title     string
	Retryable bool
}

type rule struct {
	code     int
	patterns []string
}

// statusCodePattern finds an explicit HTTP status code in the message.
var statusCodePattern = regexp.MustCompile(`\b([45]\d\d)\b`)

// rules are checked in order; the first matching pattern wins.
var rules = []rule{
	// Authentication errors (401)
	{http.StatusUnauthorized, []string{
		"unauthorized", "invalid api key", "invalid_api_key", "authentication", "expired token", "invalid token",
	}},
	// Permission errors (403)
	{http.StatusForbidden, []string{
		"forbidden", "permission denied", "access denied",
	}},
	// Timeouts (408)
	{http.StatusRequestTimeout, []string{
		"deadline exceeded", "timed out", "timeout",
	}},
	// Throttling errors (429)
	{http.StatusTooManyRequests, []string{
		"rate limit", "too many requests", "throttl", "quota exceeded", "resource exhausted",
	}},
	// Transport and availability errors (503)
	{http.StatusServiceUnavailable, []string{
		"connection refused", "connection reset", "broken pipe", "unexpected eof", "no such host",
		"service unavailable", "bad gateway", "overloaded", "network is unreachable",
	}},
	// Resource not found (404)
	{http.StatusNotFound, []string{
		"not found", "no such model", "does not exist",
	}},
	// Validation errors (400)
	{http.StatusBadRequest, []string{
		"bad request", "invalid request", "validation",
	}},
}

// Classify returns the status for message. An empty message yields the zero
// Status; an unrecognized one is reported as a non-retryable 500.
func Classify(message string) Status {
	message = strings.ToLower(strings.TrimSpace(message))
	if message == "" {
		return Status{}
	}
	return statusFor(codeFor(message))
}

func codeFor(message string) int {
	if m := statusCodePattern.FindStringSubmatch(message); m != nil {
		if code, err := strconv.Atoi(m[1]); err == nil && http.StatusText(code) != "" {
			return code
		}
	}
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(message, p) {
				return r.code
			}
		}
	}
	return http.StatusInternalServerError
}

func statusFor(code int) Status {
	return Status{
		Code:      code,
		Title:     Title(code),
		Retryable: Retryable(code),
	}
}

// Title returns a human-readable title for an HTTP status code.
func Title(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Unknown Error"
}

// Retryable reports whether a failure with the given code is usually
// transient.
func Retryable(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
