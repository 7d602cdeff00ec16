// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"io"
	"io/ioutil"
	"mime"
	"unicode/utf8"

	"github.com/ugorji/go/codec"
)

// IsJSONMediaType determines whether a bare media type, with no
// parameters, names one of the JSON representations of this content.
func IsJSONMediaType(mediaType string) bool {
	switch mediaType {
	case "text/json", "application/json", JSONMediaType, V1JSONMediaType:
		return true
	}
	return false
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.  Returns
// ErrUnsupportedMediaType if contentType is not a JSON type, or
// ErrBadRequest wrapping ErrInvalidBody if the body is not exactly
// one JSON value of the right shape in valid UTF-8.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	if !IsJSONMediaType(mediaType) {
		return ErrUnsupportedMediaType{Type: mediaType}
	}

	body, err := ioutil.ReadAll(r)
	if err != nil {
		return ErrBadRequest{Err: ErrInvalidBody{Problem: "could not be read", Err: err}}
	}
	if !utf8.Valid(body) {
		return ErrBadRequest{Err: ErrInvalidBody{Problem: "not valid UTF-8"}}
	}

	json := &codec.JsonHandle{}
	decoder := codec.NewDecoder(bytes.NewReader(body), json)
	if err = decoder.Decode(out); err != nil {
		if err == io.EOF {
			return ErrBadRequest{Err: ErrInvalidBody{Problem: "empty", Err: err}}
		}
		return ErrBadRequest{Err: ErrInvalidBody{Problem: "malformed JSON or wrong field types", Err: err}}
	}
	// Only whitespace may follow the value
	var extra interface{}
	if err = decoder.Decode(&extra); err != io.EOF {
		return ErrBadRequest{Err: ErrInvalidBody{Problem: "unexpected data after the JSON value", Err: err}}
	}
	return nil
}

// Encode writes the JSON representation of a restdata object.
func Encode(w io.Writer, in interface{}) error {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	return encoder.Encode(in)
}
