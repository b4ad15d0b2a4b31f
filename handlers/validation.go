// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"

	"github.com/danielhkuo/portfolio-contact/models"
)

// ValidationError lists the required fields missing from a submission,
// by their JSON names.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Campos obrigatórios ausentes: " + strings.Join(e.Missing, ", ")
}

// ValidateSubmission checks that nome, email and mensagem are present.
// It does not check the email format.
func ValidateSubmission(req models.ContactRequest) error {
	if missing := req.MissingFields(); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
