package models

import (
	"strings"
	"time"
)

// Request types

// ContactRequest is the JSON body posted by the portfolio contact form.
// Field names follow the form inputs on the site.
type ContactRequest struct {
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Subject string `json:"assunto"`
	Message string `json:"mensagem"`
}

// Submission converts the request into an unsaved Submission.
func (r ContactRequest) Submission() *Submission {
	return &Submission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// MissingFields returns the JSON names of required fields that are empty,
// in form order.
func (r ContactRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "nome")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Message) == "" {
		missing = append(missing, "mensagem")
	}
	return missing
}

// Response types

// ContactResponse is returned by the submission endpoints.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

type ListSubmissionsResponse struct {
	Success bool         `json:"success"`
	Users   []Submission `json:"users"`
}

// Domain types

// Submission is one stored contact-form entry. ID and CreatedAt are
// assigned by the store.
type Submission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Subject   string    `json:"assunto"`
	Message   string    `json:"mensagem"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
