package services

import "errors"

// Kind classifies a failed operation for the transport layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindNotFound
	KindForbidden
)

// Error is a tagged operation failure: a kind plus a caller-facing
// message. No partial mutation has happened when one is returned.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func invalidInput(msg string) error { return &Error{Kind: KindInvalidInput, Message: msg} }
func notFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
func forbidden(msg string) error    { return &Error{Kind: KindForbidden, Message: msg} }

// KindOf extracts the failure kind, KindUnknown for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
