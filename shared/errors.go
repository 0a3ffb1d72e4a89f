package shared

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure classes the core surfaces.
// Callers match on the kind, never on message text.
type ErrorKind string

const (
	// KindNotEntitled - tenant lacks an active framework entitlement edge.
	KindNotEntitled ErrorKind = "not_entitled"
	// KindNotFound - a referenced entity is missing.
	KindNotFound ErrorKind = "not_found"
	// KindIntegrityViolation - duplicate (tenant, control) or crosswalk edge.
	KindIntegrityViolation ErrorKind = "integrity_violation"
	// KindCrossTenantAccess - the requested tenant does not match the authenticated one.
	KindCrossTenantAccess ErrorKind = "cross_tenant_access"
	// KindExternalUnavailable - an external collaborator returned a non-success status.
	KindExternalUnavailable ErrorKind = "external_unavailable"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
