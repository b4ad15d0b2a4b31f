// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package relay sends contact notifications to the site owner through the
Resend transactional email API.

# Configuration

A Client is built from a Config. The relay is active only when the API key,
the sending domain and the destination address are all set:

	client := relay.New(relay.Config{
		APIKey:     os.Getenv("RESEND_API_KEY"),
		Domain:     os.Getenv("RESEND_DOMAIN"),
		To:         os.Getenv("CONTACT_EMAIL_TO"),
		SenderName: "Portfólio",
	})

	if client.Configured() {
		id, err := client.Send(ctx, msg)
	}

# Messages

Send renders an HTML and a plain text body from a Message. Submitted
fields are HTML-escaped; the free-text body goes through a bluemonday UGC
policy and keeps its line breaks. The submitter's address is used as
reply-to so the owner can answer directly.

# Errors

Provider failures are returned as *RelayError. Status carries the HTTP
status of the provider response, or 0 if the request never got one:

	var relayErr *relay.RelayError
	if errors.As(err, &relayErr) && relayErr.ProviderRejected() {
		// provider answered 4xx/5xx
	}

A successful call may still return an empty delivery id. Callers decide
what that means. Nothing is retried.
*/
package relay
