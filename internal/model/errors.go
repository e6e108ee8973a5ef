package model

import "fmt"

// APIError wraps a failed search-API call so callers can tell hard
// transport/authentication failures (fatal for the run) apart from empty
// result sets (not an error).
type APIError struct {
	StatusCode int
	Message    string // API-level error text, if the response carried one
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("search API %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("search API %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("search API %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
