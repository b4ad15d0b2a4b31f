// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package relay

// Config holds the transactional email settings. All three of APIKey,
// Domain and To must be set for the relay to be active.
type Config struct {
	APIKey     string // RESEND_API_KEY
	Domain     string // RESEND_DOMAIN, used for the noreply sender address
	To         string // CONTACT_EMAIL_TO
	SenderName string // RESEND_FROM_NAME
}

// Configured reports whether every required setting is present.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.Domain != "" && c.To != ""
}
