// Package apperr holds the error taxonomy shared by the services and the
// translation of store errors into it.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("constraint violation")
	ErrNotFound   = errors.New("not found")
)

// FieldError describes one rejected input value. Loc is the path to the
// value, e.g. ["body", "precio"] or ["query", "limit"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Missing(loc ...string) FieldError {
	return FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
}

func Invalid(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FromStore maps a store error onto the taxonomy. Unique violations are
// recognised only as gorm.ErrDuplicatedKey, so the store must be opened with
// TranslateError (db.Open does). Errors that are neither a missing row nor a
// constraint violation are store failures and come back wrapped but
// otherwise untouched.
func FromStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return fmt.Errorf("store: %w", err)
}

