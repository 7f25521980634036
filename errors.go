package cipin

import "fmt"

// InvalidInputError reports a malformed URL or a missing stoplist. It is
// always raised before any network activity happens.
type InvalidInputError struct {
	Reason string
}

func NewInvalidInputError(reason string) *InvalidInputError {
	return &InvalidInputError{Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// NetworkError reports a failed fetch: a transport error or a non-2xx
// response. StatusCode is zero when the connection itself failed.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
