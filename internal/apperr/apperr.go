// Package apperr defines the domain error kinds surfaced by the engines.
package apperr

import "errors"

// Kind is a machine-readable error kind.
type Kind string

const (
	KindNotFound              Kind = "NOT_FOUND"
	KindSelfReferential       Kind = "SELF_REFERENTIAL"
	KindAlreadyFriends        Kind = "ALREADY_FRIENDS"
	KindRequestAlreadyPending Kind = "REQUEST_ALREADY_PENDING"
	KindAlreadyCompleted      Kind = "ALREADY_COMPLETED"
	KindNotCompleted          Kind = "NOT_COMPLETED"
	KindInvalidInput          Kind = "INVALID_INPUT"
	KindConflict              Kind = "CONFLICT"
	KindUnauthorized          Kind = "UNAUTHORIZED"
)

// Error is a domain error carrying a Kind.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound              = New(KindNotFound, "not found")
	ErrSelfReferential       = New(KindSelfReferential, "target is the acting user")
	ErrAlreadyFriends        = New(KindAlreadyFriends, "users are already friends")
	ErrRequestAlreadyPending = New(KindRequestAlreadyPending, "friend request already pending")
	ErrAlreadyCompleted      = New(KindAlreadyCompleted, "task already completed")
	ErrNotCompleted          = New(KindNotCompleted, "task not completed")
	ErrInvalidInput          = New(KindInvalidInput, "invalid input")
	ErrConflict              = New(KindConflict, "conflict")
	ErrUnauthorized          = New(KindUnauthorized, "unauthorized")
)

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
