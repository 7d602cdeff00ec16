// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a REST skeleton framework.
//
// The bulk of this is dealing with HTTP content type negotiation, and
// providing a standard way to deal with input and output values.
// Every JSON variant we accept produces the same underlying
// structure, so negotiation only decides what Content-Type: header
// goes back.

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/diffeo/go-spacelab/restdata"
	"github.com/sirupsen/logrus"
)

var typeMap = map[string]string{
	"text/json":              restdata.V1JSONMediaType,
	"application/json":       restdata.V1JSONMediaType,
	restdata.JSONMediaType:   restdata.V1JSONMediaType,
	restdata.V1JSONMediaType: restdata.V1JSONMediaType,
}

// errBadAccept is returned from negotiateResponse() if the Accept:
// header is malformed (and no more specific error applies).
var errBadAccept = errors.New("Invalid Accept: header")

// errNotAcceptable is returned from negotiateResponse() if the Accept:
// header does not mention any media types we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
type responseCreated struct {
	// Location holds the canonical URL to the newly created resource.
	Location string

	// Body contains the object sent in the body of the response.
	Body interface{}
}

type resourceHandler struct {
	// Representation is an object representing the input to this
	// resource.  A decoded copy of the request body, of the same
	// type, will be passed to Post.
	Representation interface{}

	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, returns a representation of the object.
	Get func(*context) (interface{}, error)

	// Post, if non-nil, takes some arbitrary action.  The
	// interface parameter is guaranteed to be the same type as
	// Representation.  The return can be any useful return
	// value, including responseCreated.
	Post func(*context, interface{}) (interface{}, error)

	// Delete, if non-nil, deletes the object.  The return can be
	// any useful return value.
	Delete func(*context) (interface{}, error)

	// Logger receives panics and response encoding failures.  If
	// nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

func (h *resourceHandler) logger() logrus.FieldLogger {
	if h.Logger == nil {
		return logrus.StandardLogger()
	}
	return h.Logger
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx          *context
		in, out      interface{}
		err          error
		status       int
		responseType string
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			h.logger().WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"panic":  recovered,
				"stack":  string(debug.Stack()),
			}).Error("Panic serving request")
			response := restdata.ErrorResponse{}
			response.FromPanic(recovered)
			resp.Header().Set("Content-Type", restdata.V1JSONMediaType)
			resp.WriteHeader(http.StatusInternalServerError)
			_ = restdata.Encode(resp, response)
		}
	}()

	// Start by trying to come up with a response type, even before
	// trying to parse the input.  This determines what format an
	// error message could be sent back as.
	status = http.StatusBadRequest
	responseType, err = negotiateResponse(req)
	if err != nil {
		// Gotta pick something
		responseType = restdata.V1JSONMediaType
	}

	// Get bits from URL parameters
	if err == nil {
		ctx, err = h.Context(req)
	}

	// Read the body, if it's there
	if err == nil && req.Method == http.MethodPost && h.Post != nil {
		// Make a new object of the same type as h.Representation
		ptr := reflect.New(reflect.TypeOf(h.Representation))
		contentType := req.Header.Get("Content-Type")
		err = restdata.Decode(contentType, req.Body, ptr.Interface())
		if err == nil {
			in = ptr.Elem().Interface()
		}
	}

	// Actually call the handler method
	if err == nil {
		// We will return this if the method is unexpected or
		// we don't have a handler for it
		err = errMethodNotAllowed{Method: req.Method}
		// If anything else goes wrong here, it's an error in
		// the store
		status = http.StatusInternalServerError
		switch req.Method {
		case http.MethodGet, http.MethodHead:
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case http.MethodPost:
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		case http.MethodDelete:
			if h.Delete != nil {
				out, err = h.Delete(ctx)
			}
		}
	}

	// Fix up the final result based on what we know.
	if err != nil {
		// Pick a better status code if we know of one
		if errStatus := restdata.Status(err); errStatus != http.StatusInternalServerError {
			status = errStatus
		}
		if status == http.StatusInternalServerError {
			h.logger().WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"err":    err,
			}).Error("Request failed")
		}
		errResp := restdata.ErrorResponse{}
		errResp.FromError(err)
		out = errResp
	} else if out == nil {
		status = http.StatusNoContent
	} else if created, isCreated := out.(responseCreated); isCreated {
		status = http.StatusCreated
		if created.Location != "" {
			resp.Header().Set("Location", created.Location)
		}
		out = created.Body
	} else {
		status = http.StatusOK
		if req.Method == http.MethodHead {
			out = nil
		}
	}

	if _, understood := typeMap[responseType]; !understood {
		// We shouldn't get here, because it implies response
		// type negotiation failed...but here we are
		out = restdata.ErrorResponse{Error: "Invalid response type " + responseType}
		responseType = restdata.V1JSONMediaType
		status = http.StatusInternalServerError
	}

	// Actually send the response.  By the time an encoding
	// failure happens we have already written a status line, so
	// all that is left to do is log it.
	if out != nil {
		resp.Header().Set("Content-Type", responseType)
	}
	resp.WriteHeader(status)
	if out != nil {
		if err := restdata.Encode(resp, out); err != nil {
			h.logger().WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"err":    err,
			}).Warn("Could not write response")
		}
	}
}

// negotiateResponse returns a supported MIME type for the response
// body, following the path laid out in RFC 7231 section 5.3.
func negotiateResponse(req *http.Request) (string, error) {
	accept := req.Header.Get("Accept")
	if accept == "" {
		accept = "*/*"
	}
	bestType := ""
	bestQ := 0.0
	mediaRanges := strings.Split(accept, ",")
	for _, mediaRange := range mediaRanges {
		mediaRange = strings.TrimSpace(mediaRange)
		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			return "", err
		}

		// What is the "q" ("quality") parameter for this type?
		// If it is less than the best known so far, skip it
		q := 1.0
		if qStr, haveQ := params["q"]; haveQ {
			q, err = strconv.ParseFloat(qStr, 64)
			if err != nil {
				return "", err
			}
			if q < 0.0 || q > 1.0 {
				return "", errBadAccept
			}
		}
		if q < bestQ {
			continue
		}

		// This is acceptable if it's listed in the type
		// map; or it's one of a couple of specific wildcards.
		// Also need to handle wildcard precedence.  So:
		if mediaType == "*/*" {
			// Doesn't override anything.
			if q > bestQ {
				bestType = mediaType
				bestQ = q
			}
		} else if mediaType == "text/*" || mediaType == "application/*" {
			// Only overrides "*/*".
			if q > bestQ || bestType == "*/*" {
				bestType = mediaType
				bestQ = q
			}
		} else if _, knownType := typeMap[mediaType]; knownType {
			// Overrides any wildcard.  We want the first one
			// at a given q to win.
			if q > bestQ || bestType == "*/*" || bestType == "text/*" || bestType == "application/*" {
				bestType = mediaType
				bestQ = q
			}
		}
		// Otherwise we don't recognize this type at all, so
		// just drop it.
	}
	// If this failed to win, return an error
	if bestQ == 0.0 {
		return "", errNotAcceptable{}
	}
	switch bestType {
	case "*/*", "application/*":
		return "application/json", nil
	case "text/*":
		return "text/json", nil
	default:
		return bestType, nil
	}
}
