// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package relay

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by Send when credentials, domain or
// destination are missing.
var ErrNotConfigured = errors.New("relay: not configured")

// RelayError is a failed provider call. Status is the provider's HTTP
// status, or 0 when no response was received.
type RelayError struct {
	Status  int
	Details string
	Err     error
}

func (e *RelayError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("relay: send failed: %s", e.Details)
	}
	return fmt.Sprintf("relay: provider returned %d: %s", e.Status, e.Details)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// ProviderRejected reports whether the provider answered with an error
// status, as opposed to the request never completing.
func (e *RelayError) ProviderRejected() bool {
	return e.Status >= 400
}
