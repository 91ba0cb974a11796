package domain

import (
	"errors"
	"net/http"
)

// ErrorKind is the closed set of expected domain failures.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "Not Found"
	KindConflict     ErrorKind = "Conflict"
	KindBadRequest   ErrorKind = "Bad Request"
	KindUnauthorized ErrorKind = "Unauthorized"
)

// DomainError tags an expected failure with its kind. Unexpected failures
// (collaborator errors) are returned as plain errors and left untagged.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func NewNotFoundError(message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Kind: KindConflict, Message: message}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{Kind: KindBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{Kind: KindUnauthorized, Message: message}
}

// IsKind classifies an error without callers depending on concrete values.
func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// Kind returns the tagged kind, or "" for untagged errors.
func Kind(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// HTTPStatus maps a domain error to its response status. Untagged errors
// are treated as internal.
func HTTPStatus(err error) int {
	var de *DomainError
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
