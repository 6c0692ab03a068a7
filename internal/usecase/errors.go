package usecase

import (
	"errors"
	"strings"
)

// ErrEmptyUpdate: un PUT cuyo cuerpo no aporta ningún campo. Se devuelve
// 400 para que un no-op no se confunda con un update real.
var ErrEmptyUpdate = errors.New("no hay campos que actualizar")

// ValidationError es una violación concreta de un campo.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors acumula TODAS las violaciones, no solo la primera.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
