// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/diffeo/go-spacelab/restdata"
	"github.com/jtacoma/uritemplates"
)

// endpoint is the HTTP side of the client: the root URL that every
// link is resolved against, and the HTTP client that fetches them.
type endpoint struct {
	root   *url.URL
	client *http.Client
}

// link expands one of the root document's URI templates and resolves
// it against the root URL.
func (e *endpoint) link(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}
	path, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}
	return e.root.Parse(path)
}

// do sends method to the URL named by a template.  See call.
func (e *endpoint) do(method, template string, vars map[string]interface{}, in, out interface{}) error {
	u, err := e.link(template, vars)
	if err != nil {
		return err
	}
	return e.call(method, u, in, out)
}

// call sends one request.  A non-nil in is sent as the JSON request
// body, and a non-nil out receives the JSON response body.  Any
// non-2xx response is an error.
func (e *endpoint) call(method string, u *url.URL, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := restdata.Encode(buf, in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", restdata.V1JSONMediaType)
	if in != nil {
		req.Header.Set("Content-Type", restdata.V1JSONMediaType)
	}

	client := e.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return restdata.Decode(resp.Header.Get("Content-Type"), resp.Body, out)
}

// ErrorHTTP is returned for an unsuccessful response that does not
// carry a spacelab error document, typically because the URL is not a
// spacelab server at all.
type ErrorHTTP struct {
	StatusCode int
	Status     string
	Body       string
}

func (e ErrorHTTP) Error() string {
	return "HTTP " + e.Status
}

// responseError turns a failed response into the space error its body
// describes, or an ErrorHTTP.
func responseError(resp *http.Response) error {
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var doc restdata.ErrorResponse
	err = restdata.Decode(resp.Header.Get("Content-Type"), bytes.NewReader(body), &doc)
	if err == nil && (doc.Error != "" || len(doc.Errors) > 0) {
		return doc.ToError()
	}
	return ErrorHTTP{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
}
