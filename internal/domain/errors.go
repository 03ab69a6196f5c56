package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrItemNotFound indicates the requested title does not exist
	ErrItemNotFound = errors.New("title not found")

	// ErrMalformedPayload indicates a wire record is missing a required
	// field that has no sensible default (e.g. its id)
	ErrMalformedPayload = errors.New("malformed catalog payload")
)

// RemoteError is a failure from the remote catalog service. The message
// is preserved verbatim from the underlying transport or response body.
type RemoteError struct {
	Status  int // HTTP status, 0 when the request never completed
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("catalog request failed (%d): %s", e.Status, e.Message)
}

// IsRemoteError reports whether err originated at the remote gateway.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
