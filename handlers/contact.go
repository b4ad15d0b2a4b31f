// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/portfolio-contact/metrics"
	"github.com/danielhkuo/portfolio-contact/middleware"
	"github.com/danielhkuo/portfolio-contact/models"
	"github.com/danielhkuo/portfolio-contact/relay"
)

// Client-facing messages. The site is in Portuguese.
const (
	msgSaved         = "Mensagem salva com sucesso"
	msgSent          = "Mensagem enviada com sucesso! Em breve entraremos em contato."
	msgRelayInactive = "Mensagem recebida com sucesso! (envio de e-mail não configurado)"
	msgRelayFailed   = "Mensagem recebida com sucesso! (erro no envio do e-mail, a mensagem foi salva)"
	msgSendFailed    = "Erro ao enviar e-mail. Tente novamente mais tarde."
	msgInternal      = "Erro interno do servidor"
	msgInvalidJSON   = "JSON inválido"
)

const (
	endpointSave      = "save"
	endpointSendEmail = "send-email"
)

// SubmissionStore persists contact submissions.
type SubmissionStore interface {
	Insert(ctx context.Context, sub *models.Submission) (int64, error)
	ListAll(ctx context.Context) ([]models.Submission, error)
}

// Relay delivers a submission to the site owner by email.
type Relay interface {
	Configured() bool
	Send(ctx context.Context, msg relay.Message) (string, error)
}

type ContactHandler struct {
	store SubmissionStore
	relay Relay
}

// NewContactHandler wires the handler to its store and relay. A nil relay,
// including a nil *relay.Client, behaves like an unconfigured one.
func NewContactHandler(store SubmissionStore, r Relay) *ContactHandler {
	return &ContactHandler{store: store, relay: r}
}

// Save handles POST /api/users
// Stores the submission and returns its id. A store failure fails the request.
func (h *ContactHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := decodeContact(w, r, endpointSave)
	if !ok {
		return
	}

	sub := req.Submission()
	id, err := h.store.Insert(ctx, sub)
	if err != nil {
		slog.ErrorContext(ctx, "failed to save submission", "error", err, submissionAttrs(sub))
		metrics.ObserveStoreError("insert")
		metrics.ObserveSubmission(endpointSave, metrics.OutcomeFailed)
		respond(w, http.StatusInternalServerError, false, msgInternal)
		return
	}

	slog.InfoContext(ctx, "submission saved", "id", id, submissionAttrs(sub))
	metrics.ObserveSubmission(endpointSave, metrics.OutcomeSaved)

	middleware.JSONResponse(w, http.StatusOK, models.ContactResponse{
		Success: true,
		Message: msgSaved,
		ID:      &id,
	})
}

// List handles GET /api/users
// Returns every submission, newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subs, err := h.store.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list submissions", "error", err)
		metrics.ObserveStoreError("list")
		respond(w, http.StatusInternalServerError, false, msgInternal)
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListSubmissionsResponse{
		Success: true,
		Users:   subs,
	})
}

// SendEmail handles POST /api/send-email
// Stores the submission, then relays it by email when the relay is
// configured. A store failure is logged but does not fail the request.
func (h *ContactHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := decodeContact(w, r, endpointSendEmail)
	if !ok {
		return
	}

	sub := req.Submission()
	if _, err := h.store.Insert(ctx, sub); err != nil {
		slog.ErrorContext(ctx, "failed to save submission, continuing with relay", "error", err, submissionAttrs(sub))
		metrics.ObserveStoreError("insert")
		metrics.ObserveSubmission(endpointSendEmail, metrics.OutcomeFailed)
	} else {
		slog.InfoContext(ctx, "submission saved", "id", sub.ID, submissionAttrs(sub))
		metrics.ObserveSubmission(endpointSendEmail, metrics.OutcomeSaved)
	}

	if h.relay == nil || !h.relay.Configured() {
		slog.InfoContext(ctx, "relay not configured, submission kept in store only")
		metrics.ObserveRelay(metrics.RelaySkipped)
		respond(w, http.StatusOK, true, msgRelayInactive)
		return
	}

	deliveryID, err := h.relay.Send(ctx, relay.Message{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Subject: sub.Subject,
		Body:    sub.Message,
	})

	var relayErr *relay.RelayError
	switch {
	case err != nil && errors.As(err, &relayErr) && relayErr.ProviderRejected():
		slog.ErrorContext(ctx, "relay provider rejected message",
			"status", relayErr.Status,
			"details", relayErr.Details,
			submissionAttrs(sub),
		)
		metrics.ObserveRelay(metrics.RelayRejected)
		respond(w, http.StatusOK, true, msgRelayFailed)

	case err != nil:
		slog.ErrorContext(ctx, "relay failed", "error", err, submissionAttrs(sub))
		metrics.ObserveRelay(metrics.RelayError)
		respond(w, http.StatusInternalServerError, false, msgInternal)

	case deliveryID == "":
		slog.ErrorContext(ctx, "relay returned no delivery id", submissionAttrs(sub))
		metrics.ObserveRelay(metrics.RelayNoID)
		respond(w, http.StatusInternalServerError, false, msgSendFailed)

	default:
		slog.InfoContext(ctx, "submission relayed", "delivery_id", deliveryID)
		metrics.ObserveRelay(metrics.RelaySent)
		respond(w, http.StatusOK, true, msgSent)
	}
}

// decodeContact parses and validates the request body. On failure it
// writes the 400 response and returns false.
func decodeContact(w http.ResponseWriter, r *http.Request, endpoint string) (models.ContactRequest, bool) {
	ctx := r.Context()

	var req models.ContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		slog.WarnContext(ctx, "invalid contact payload", "endpoint", endpoint, "error", err)
		metrics.ObserveSubmission(endpoint, metrics.OutcomeInvalid)
		respond(w, http.StatusBadRequest, false, msgInvalidJSON)
		return req, false
	}

	if err := ValidateSubmission(req); err != nil {
		slog.WarnContext(ctx, "contact submission rejected", "endpoint", endpoint, "error", err)
		metrics.ObserveSubmission(endpoint, metrics.OutcomeInvalid)
		respond(w, http.StatusBadRequest, false, err.Error())
		return req, false
	}

	return req, true
}

func respond(w http.ResponseWriter, status int, success bool, message string) {
	middleware.JSONResponse(w, status, models.ContactResponse{
		Success: success,
		Message: message,
	})
}

// submissionAttrs summarizes a submission for logs without the message body.
func submissionAttrs(sub *models.Submission) slog.Attr {
	return slog.Group("submission",
		"name", sub.Name,
		"email", sub.Email,
		"subject", sub.Subject,
	)
}
