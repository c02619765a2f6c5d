package db

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is wrapped by a FetchError when the endpoint answered
	// with a non-success status code.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrDecode is wrapped by a FetchError when the response body could not be
	// decoded into products.
	ErrDecode = errors.New("unable to decode catalog")
)

// FetchError is the only failure a catalog retrieval produces. StatusCode is
// zero when the request never got a response.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("unable to fetch catalog from %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("unable to fetch catalog from %s (status %d): %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is, or wraps, a FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
