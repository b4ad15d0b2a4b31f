// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package relay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resend/resend-go/v3"
)

// Client sends contact notifications through Resend.
type Client struct {
	resend *resend.Client
	config Config
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// WithHTTPClient sets the HTTP client used for provider calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u *url.URL) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// New creates a relay client. It is safe to build one without credentials;
// Configured then reports false and Send is never attempted by callers.
func New(cfg Config, opts ...Option) *Client {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := &http.Client{}
	if o.httpClient != nil {
		copied := *o.httpClient
		httpClient = &copied
	}
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient.Transport = &recordingTransport{base: base}

	rc := resend.NewCustomClient(httpClient, cfg.APIKey)
	if o.baseURL != nil {
		rc.BaseURL = o.baseURL
	}

	return &Client{resend: rc, config: cfg}
}

// Configured reports whether the relay has credentials, a sending domain
// and a destination.
func (c *Client) Configured() bool {
	return c != nil && c.config.Configured()
}

// From returns the sender address used for notifications.
func (c *Client) From() string {
	if c.config.SenderName == "" {
		return "noreply@" + c.config.Domain
	}
	return fmt.Sprintf("%s <noreply@%s>", c.config.SenderName, c.config.Domain)
}

// Send relays msg to the configured destination with the submitter as
// reply-to. It returns the provider's delivery id, which may be empty if
// the provider accepted the call without assigning one.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	html, text, err := msg.Render()
	if err != nil {
		return "", err
	}

	req := &resend.SendEmailRequest{
		From:    c.From(),
		To:      []string{c.config.To},
		Subject: msg.EmailSubject(),
		Html:    html,
		Text:    text,
		ReplyTo: msg.Email,
	}

	ctx, rec := withStatusRecorder(ctx)
	resp, err := c.resend.Emails.SendWithContext(ctx, req)
	if err != nil && rec.code >= 200 && rec.code < 300 {
		// Accepted, but the reply carried no readable id
		return "", nil
	}
	if err != nil {
		return "", &RelayError{
			Status:  rec.code,
			Details: err.Error(),
			Err:     err,
		}
	}
	if resp == nil {
		return "", nil
	}

	return resp.Id, nil
}
