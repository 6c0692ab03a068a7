package usecase

import (
	"net/mail"
	"strings"
	"time"
)

// Helpers compartidos por los validadores. Cada validador acumula todas
// las violaciones en un ValidationErrors en lugar de parar en la primera.

func requireText(errs *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		*errs = append(*errs, ValidationError{field, "is required"})
	}
}

func requireItems(errs *ValidationErrors, field string, items []string) {
	if len(items) == 0 {
		*errs = append(*errs, ValidationError{field, "at least one entry is required"})
	}
}

func requireEmail(errs *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		*errs = append(*errs, ValidationError{field, "is required"})
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		*errs = append(*errs, ValidationError{field, "is invalid"})
	}
}

// isValidClockTime acepta horas "HH:MM" de 24h ("17:00", "09:30").
func isValidClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
