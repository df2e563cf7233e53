package ols

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/reoring/ols/model"
	"github.com/reoring/ols/schema"
)

// ErrUsage matches every *UsageError via errors.Is.
var ErrUsage = errors.New("ols: usage error")

// UsageError reports invalid arguments. It is returned before any request is
// made.
type UsageError struct {
	Op      string
	Message string
	Issues  schema.Issues // set when parameter validation failed
}

func (e *UsageError) Error() string {
	var b strings.Builder
	b.WriteString("ols: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.Issues) > 0 {
		b.WriteString(": ")
		b.WriteString(e.Issues.Error())
	}
	return b.String()
}

// Is reports ErrUsage.
func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// Unwrap exposes the parameter issues, if any.
func (e *UsageError) Unwrap() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e.Issues
}

func usageErr(op, format string, args ...any) *UsageError {
	return &UsageError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       []byte
	// Detail is the parsed error envelope; nil when the body did not match it.
	Detail *model.ErrorResponse
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("ols: GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != nil && e.Detail.Message != "" {
		msg += ": " + e.Detail.Message
	}
	return msg
}

// ValidationError is returned when a response body is not valid JSON or does
// not match the expected schema.
type ValidationError struct {
	Op     string
	URL    string
	Issues schema.Issues
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ols: %s: invalid response from %s: %v", e.Op, e.URL, e.Issues)
}

// Unwrap allows errors.As(err, &schema.Issues{}).
func (e *ValidationError) Unwrap() error { return e.Issues }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
