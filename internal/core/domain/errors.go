package domain

import "errors"

// Kind classifies a failure independently of its message. The transport layer
// maps kinds to status codes; callers branch on kinds, never on messages.
type Kind string

const (
	KindUnauthenticated       Kind = "unauthenticated"
	KindForbidden             Kind = "forbidden"
	KindValidation            Kind = "validation"
	KindNotFound              Kind = "not_found"
	KindInvalidSelfOperation  Kind = "invalid_self_operation"
	KindAlreadyInDesiredState Kind = "already_in_desired_state"
	KindConflict              Kind = "conflict"
	KindInternal              Kind = "internal"
)

// Error is a domain failure with a stable kind and a message safe to show to
// the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewValidationError builds a validation failure with a field-specific message.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

var (
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Message: "authentication required"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthenticated, Message: "invalid credentials"}
	ErrTokenRevoked       = &Error{Kind: KindUnauthenticated, Message: "token has been revoked"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "admin access required"}

	ErrUserNotFound = &Error{Kind: KindNotFound, Message: "user not found"}
	ErrPostNotFound = &Error{Kind: KindNotFound, Message: "post not found"}

	ErrCannotDeleteSelf = &Error{Kind: KindInvalidSelfOperation, Message: "cannot delete your own account"}
	ErrCannotDemoteSelf = &Error{Kind: KindInvalidSelfOperation, Message: "cannot demote yourself"}

	ErrAlreadyAdmin = &Error{Kind: KindAlreadyInDesiredState, Message: "user is already an admin"}
	ErrNotAdmin     = &Error{Kind: KindAlreadyInDesiredState, Message: "user is not an admin"}

	ErrEmailTaken = &Error{Kind: KindConflict, Message: "email is already registered"}
)

// KindOf reports the kind of err, looking through wrapped errors. Anything
// that is not a domain error is internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
