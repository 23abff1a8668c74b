package unlocked

import (
	"errors"
	"fmt"
)

// Application error codes. These are portable across storage and transport
// implementations; every error that crosses a package boundary carries one.
const (
	EINVALID     = "invalid"     // malformed input (bad URL, empty HTML)
	ENOTFOUND    = "not_found"   // entity does not exist or has expired
	ETIMEOUT     = "timeout"     // deadline exceeded during a fetch
	ETOOSHORT    = "too_short"   // response body below the minimum viable size
	EUNAVAILABLE = "unavailable" // upstream returned an error or every strategy failed
	EINTERNAL    = "internal"    // something unexpected
)

// Error represents an application error with a machine-readable code and a
// human-readable message. The message for EINTERNAL errors is not shown to
// end users.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("unlocked error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the given error, if it is an application
// error. Returns EINTERNAL for any non-application error and an empty
// string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the given error, if it is an
// application error. Returns a generic message for any non-application
// error and an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
