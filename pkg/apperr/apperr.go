package apperr

import "errors"

// Kind classifies an application error so the HTTP boundary can map it
// to a status code without inspecting messages.
type Kind int

const (
	// KindValidation marks caller-supplied input as missing or malformed.
	KindValidation Kind = iota + 1
	// KindConflict marks a uniqueness violation (email already registered).
	KindConflict
	// KindAuth marks a credential mismatch or unknown identity.
	KindAuth
	// KindInternal marks storage or infrastructure failures. Its message is
	// generic; details belong in logs, never in responses.
	KindInternal
)

// Error is a tagged application error. A single type replaces parallel
// domain/application exception hierarchies.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// Internal wraps an infrastructure error behind a generic client-facing message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
