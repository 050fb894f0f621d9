package ladle

import (
	"errors"
	"fmt"
)

// Error type tags shared with every extraction backend. The vocabulary is
// open ended: backends behind a process or sandbox boundary may report types
// not listed here and callers must tolerate them.
const (
	ETFETCH           = "FetchError"
	ETAUTHREQUIRED    = "AuthenticationRequired"
	ETAUTHFAILED      = "AuthenticationFailed"
	ETNORECIPE        = "NoRecipeFoundError"
	ETNOSCHEMA        = "NoSchemaFoundInWildMode"
	ETUNSUPPORTED     = "UnsupportedPlatform"
	ETUNSUPPORTEDAUTH = "UnsupportedAuthSite"
	ETPARSE           = "ParseError"
	ETINTERNAL        = "InternalError"
)

// Error represents a scraping error carrying the wire-level type tag.
// Host is set for authentication-related errors so callers can offer a
// login affordance for the site in question.
type Error struct {
	// Type is the machine-readable error tag from the open vocabulary above.
	Type string

	// Message is a human-readable description of the error.
	Message string

	// Host identifies the site, when relevant (auth errors).
	Host string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("ladle: %s: %s", e.Type, e.Message)
}

// WithHost returns a copy of the error annotated with the given host.
func (e *Error) WithHost(host string) *Error {
	dup := *e
	dup.Host = host
	return &dup
}

// Errorf constructs a new Error with the given type tag and formatted message.
func Errorf(typ string, format string, args ...any) *Error {
	return &Error{Type: typ, Message: fmt.Sprintf(format, args...)}
}

// ErrorType returns the type tag of any error. Non-domain errors report
// ETINTERNAL so that no error leaves the subsystem without a tag.
func ErrorType(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Type
	}
	return ETINTERNAL
}

// ErrorMessage returns the human-readable message of any error.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ErrorHost returns the host annotation of an error, if any.
func ErrorHost(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Host
	}
	return ""
}
