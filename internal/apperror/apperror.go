// Package apperror defines the closed set of error kinds the service
// produces. Handlers and the ingestion coordinator branch on Kind instead of
// duck-typing driver errors.
package apperror

import (
	"errors"
	"fmt"
)

// Kind tags an AppError with its failure class.
type Kind string

const (
	// KindValidation is a malformed request payload, rejected before processing
	KindValidation Kind = "validation"
	// KindMissingClaim is an identity token missing a required claim
	KindMissingClaim Kind = "missing_claim"
	// KindUnresolvedDate is an event date that no known layout parses
	KindUnresolvedDate Kind = "unresolved_date"
	// KindUnresolvedFighterName is a fighter name with no usable tokens
	KindUnresolvedFighterName Kind = "unresolved_fighter_name"
	// KindConflict is a unique-constraint violation from a concurrent writer
	KindConflict Kind = "conflict"
	// KindNotFound is a missing entity
	KindNotFound Kind = "not_found"
	// KindPersistence is any other gateway failure
	KindPersistence Kind = "persistence"
)

// AppError carries a Kind plus enough context to render a useful message.
type AppError struct {
	Kind    Kind
	Message string
	Field   string // optional: claim or payload field at fault
	Err     error  // wrapped cause, if any
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is match on Kind so callers can compare against a template.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of err, or KindPersistence for untagged errors.
func KindOf(err error) Kind {
	var e *AppError
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *AppError
	return errors.As(err, &e) && e.Kind == kind
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func MissingClaim(field string) *AppError {
	return &AppError{
		Kind:    KindMissingClaim,
		Field:   field,
		Message: fmt.Sprintf("identity token missing required %s claim", field),
	}
}

func UnresolvedDate(eventName, raw string) *AppError {
	return &AppError{
		Kind:    KindUnresolvedDate,
		Message: fmt.Sprintf("invalid date %q for event: %s", raw, eventName),
	}
}

func UnresolvedFighterName(raw string) *AppError {
	return &AppError{
		Kind:    KindUnresolvedFighterName,
		Message: fmt.Sprintf("unresolvable fighter name %q", raw),
	}
}

func Conflict(resource string, err error) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: fmt.Sprintf("%s already exists", resource),
		Err:     err,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func Persistence(op string, err error) *AppError {
	return &AppError{
		Kind:    KindPersistence,
		Message: fmt.Sprintf("%s: %v", op, err),
		Err:     err,
	}
}
