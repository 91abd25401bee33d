package lib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Error kinds, matched with errors.Is
var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Auth errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingToken = errors.New("missing token")
)

// DomainError carries a kind sentinel, a message safe to show to clients and an optional cause.
type DomainError struct {
	Kind    error
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func BadRequest(format string, args ...any) error {
	return &DomainError{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &DomainError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &DomainError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func IsBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// PublicMessage returns the client facing message of a domain error, or fallback.
func PublicMessage(err error, fallback string) string {
	var de *DomainError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}

// MapPgError translates integrity violations from either postgres driver into domain errors.
// Errors it does not recognise are returned unchanged.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}

	var de *DomainError
	if errors.As(err, &de) {
		return err
	}

	if code := sqlState(err); code != "" {
		switch code {
		case "23505": // unique_violation
			return &DomainError{Kind: ErrConflict, Message: "resource already exists", Err: err}
		case "23503": // foreign_key_violation
			return &DomainError{Kind: ErrConflict, Message: "resource is still referenced", Err: err}
		case "23514": // check_violation
			return &DomainError{Kind: ErrConflict, Message: "resource violates a constraint", Err: err}
		case "P0002": // no_data_found
			return &DomainError{Kind: ErrNotFound, Message: "resource not found", Err: err}
		}
		return err
	}

	// sqlite reports constraint failures only through the message
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"):
		return &DomainError{Kind: ErrConflict, Message: "resource already exists", Err: err}
	case strings.Contains(msg, "foreign key constraint failed"):
		return &DomainError{Kind: ErrConflict, Message: "resource is still referenced", Err: err}
	}

	return err
}

func sqlState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}

	var bunErr pgdriver.Error
	if errors.As(err, &bunErr) {
		return bunErr.Field('C')
	}

	return ""
}
