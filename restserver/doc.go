// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a space Store as a REST service.  The
// restclient package is a matching client.
//
// The complete REST API is defined in the restdata package.  In
// particular, note that the URLs described here are not actually part
// of the API; clients should start from the root document.
//
// HTTP Considerations
//
// All responses are JSON.  Clients may use the standard HTTP Accept:
// header to pick among the JSON media types below; an Accept: header
// that names none of them gets 406 Not Acceptable.  Request bodies
// must be labeled with one of these types in Content-Type:, or the
// request gets 415 Unsupported Media Type.
//
// This interface does not support HTTP caching, authentication, or
// pagination.
//
// MIME Types
//
// This interface understands MIME types as follows:
//
//     application/vnd.diffeo.spacelab.v1+json
//
// JSON representation of version 1 of this interface.
//
//     application/vnd.diffeo.spacelab+json
//     application/json
//     text/json
//
// JSON representation of latest version of this interface.
//
// URL Scheme
//
// Records are addressed by their integer IDs.  An ID that is not a
// positive integer names no record and gets the same 404 Not Found
// response as an ID that does not exist.
//
// The following URLs are defined:
//
//     /
//     /scientists
//     /scientists/{scientist}
//     /planets
//     /planets/{planet}
//     /missions
//     /missions/{mission}
//
// Any other URL produces 404 Not Found with an error body.
//
// Middleware
//
// RequestLogger is a github.com/urfave/negroni middleware that logs
// each request and tags it with an X-Request-Id: header.  It is not
// installed by NewRouter; the server binary adds it on request.
package restserver
