package entity

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Checkout errors
	ErrEmptyCart      = errors.New("cart is empty")
	ErrCancelDeclined = errors.New("cancellation not confirmed")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionNotFound  = errors.New("session not found")

	// Mirror errors
	ErrEventNotLoaded = errors.New("event not present in events mirror")

	// Remote errors
	ErrUserNotFound  = errors.New("user not found")
	ErrEventNotFound = errors.New("event not found")
)

// RemoteError is the single client-side shape for any remote call
// failure: a transport error or a non-2xx response. The storefront
// does not distinguish "not found" from "insufficient seats" from
// "server error" beyond the message the remote attached.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("remote call failed with status %d", e.Status)
	}
	return "remote call failed"
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}
