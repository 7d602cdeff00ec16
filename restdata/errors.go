// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/diffeo/go-spacelab/space"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrInvalidBody describes a JSON body that could not be decoded.
// Its message is fixed per Problem; the underlying decoder error, if
// any, is kept in Err but not shown.
type ErrInvalidBody struct {
	Problem string
	Err     error
}

func (e ErrInvalidBody) Error() string {
	return "invalid JSON body: " + e.Problem
}

// ErrNotFoundRoute is the error for a URL that matches no resource.
var ErrNotFoundRoute = ErrNotFound{Err: errors.New("Not found")}

// Status picks the HTTP status code for an error.  Errors that know
// their own status use it; space validation errors are 400 and
// missing records are 404; anything else is 500.
func Status(err error) int {
	if errS, hasStatus := err.(ErrorStatus); hasStatus {
		return errS.HTTPStatus()
	}
	switch err.(type) {
	case space.ValidationError:
		return http.StatusBadRequest
	case space.ErrNoSuchScientist, space.ErrNoSuchPlanet, space.ErrNoSuchMission:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// FromError populates an ErrorResponse to fill in its fields based
// on an error value.  Validation problems become the Errors list;
// missing records get a fixed per-type message that does not mention
// the ID.
func (e *ErrorResponse) FromError(err error) {
	switch et := err.(type) {
	case space.ValidationError:
		e.Error = ""
		e.Errors = append([]string{}, et.Problems...)
	case space.ErrNoSuchScientist:
		e.Error = "Scientist not found"
	case space.ErrNoSuchPlanet:
		e.Error = "Planet not found"
	case space.ErrNoSuchMission:
		e.Error = "Mission not found"
	case ErrNotFound:
		// Discard this wrapper and return the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		if _, isValidation := et.Err.(space.ValidationError); isValidation {
			e.FromError(et.Err)
		} else {
			e.Errors = []string{et.Err.Error()}
		}
	default:
		e.Error = err.Error()
	}
}

// ToError converts e back to an error.  Validation problems become a
// space.ValidationError and the fixed not-found messages become the
// matching space error with a zero ID; callers that know which ID
// they asked for should fill it in.  Anything else becomes a plain
// error with the message text.
func (e *ErrorResponse) ToError() error {
	if len(e.Errors) > 0 {
		return space.ValidationError{Problems: e.Errors}
	}
	switch e.Error {
	case "Scientist not found":
		return space.ErrNoSuchScientist{}
	case "Planet not found":
		return space.ErrNoSuchPlanet{}
	case "Mission not found":
		return space.ErrNoSuchMission{}
	case "":
		return errors.New("unknown error")
	default:
		return errors.New(e.Error)
	}
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//     defer func() {
//         if obj := recover(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//    }
//
// The stack trace is not included; the server should log it.
func (e *ErrorResponse) FromPanic(obj interface{}) {
	if recoveredError, isError := obj.(error); isError {
		e.Error = "panic: " + recoveredError.Error()
	} else {
		e.Error = fmt.Sprintf("panic: %+v", obj)
	}
}
