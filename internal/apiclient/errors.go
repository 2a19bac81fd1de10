package apiclient

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure so callers branch on it instead of on
// message text. The message is presentation only.
type Kind int

const (
	// KindTransport covers network-level failures: no response was received.
	KindTransport Kind = iota
	// KindHTTP is any non-2xx status not covered by a more specific kind.
	KindHTTP
	// KindAuth is a credential rejection (401).
	KindAuth
	// KindNotFound is an unknown resource (404).
	KindNotFound
	// KindConflict is a duplicate-state rejection (409), e.g. applying twice.
	KindConflict
	// KindValidation is a client-side precondition violated before any
	// network call was attempted.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is the single failure type raised by the client. Status is zero for
// transport and validation errors. Message holds the server-supplied error
// text when the response body carried one.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error // underlying cause, transport errors only
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed (%s)", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// kindFor maps an HTTP status to its error kind.
func kindFor(status int) Kind {
	switch status {
	case 401:
		return KindAuth
	case 404:
		return KindNotFound
	case 409:
		return KindConflict
	}
	return KindHTTP
}

func errKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}

// IsAuth reports whether err is a credential rejection.
func IsAuth(err error) bool { return errKind(err, KindAuth) }

// IsNotFound reports whether err is an unknown-resource failure.
func IsNotFound(err error) bool { return errKind(err, KindNotFound) }

// IsConflict reports whether err is a duplicate-state rejection.
func IsConflict(err error) bool { return errKind(err, KindConflict) }

// IsValidation reports whether err was raised before any network call.
func IsValidation(err error) bool { return errKind(err, KindValidation) }

// IsTransport reports whether err means no response was received.
func IsTransport(err error) bool { return errKind(err, KindTransport) }
