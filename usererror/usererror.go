package usererror

import (
	"errors"
	"log/slog"
	"strings"
)

type internalTypeUserError string

//For errors that have a userfacing component. Invalid token parameters are
//the typical case: the user gets told which field is wrong while the wrapped
//internal error keeps the full detail for logging. The internal detail can
//reference the inputs that were given, the user facing message must not leak
//anything sensitive (like an AWS secret key).
type UserError interface {
	//Still adhere to the error interface and have those be regular error (not user facing)
	error
	//Add a userError method which allows to differentiate this interface from others
	userError() internalTypeUserError
	//Get internal error
	Unwrap() error
}

type userError struct {
	//The user facing error message
	userMsg string

	//The internal error
	wrapped error
}

//Create a new error that has a user facing message while still tracking the full details for internal usage
func New(wrapped error, userfacingMsg string) UserError {
	if wrapped == nil && userfacingMsg != "" {
		//Likely programming error but setting userfacing to nil is even more risky
		slog.Warn("Internal error should be more descriptive than userfacing error (likely coding bug)", "internal", wrapped, "userfacing", userfacingMsg)
	}
	return &userError{
		wrapped: wrapped,
		userMsg: userfacingMsg,
	}
}

func (e *userError) userError() internalTypeUserError {
	return internalTypeUserError(e.userMsg)
}

func (e *userError) Error() string {
	return e.userMsg
}

func (e *userError) Unwrap() error {
	return e.wrapped
}

//Helper to get the user error out of an error chain, nil if there is none
func Get(e error) UserError {
	var ue UserError
	if !errors.As(e, &ue) {
		return nil
	}
	return ue
}

//Helper to check whether the error itself is user facing
func IsUserFacing(e error) bool {
	_, ok := e.(UserError)
	return ok
}

//Flatten an error chain to a single string that includes the internal
//details. Only for logging, never for showing to a user.
func AsFlatSensitiveString(e error) string {
	var parts []string
	for e != nil {
		parts = append(parts, e.Error())
		if ue, ok := e.(UserError); ok {
			e = ue.Unwrap()
			continue
		}
		e = errors.Unwrap(e)
	}
	return strings.Join(parts, ": ")
}
