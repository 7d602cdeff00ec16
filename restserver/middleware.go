// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// RequestIDHeader carries the identifier of a single request.  If the
// client supplies one it is kept; otherwise a random UUID is issued.
// Either way it is echoed in the response.
const RequestIDHeader = "X-Request-Id"

// RequestLogger is a negroni middleware that logs one line per HTTP
// request, with its method, path, status, and latency.
type RequestLogger struct {
	// Logger receives the request log lines.
	Logger logrus.FieldLogger

	// Clock measures request latency.
	Clock clock.Clock
}

// NewRequestLogger creates a request logger writing to logger and
// timing requests with the system clock.
func NewRequestLogger(logger logrus.FieldLogger) *RequestLogger {
	return &RequestLogger{Logger: logger, Clock: clock.New()}
}

func (l *RequestLogger) ServeHTTP(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := l.Clock.Now()
	id := req.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewV4().String()
	}
	rw.Header().Set(RequestIDHeader, id)

	next(rw, req)

	fields := logrus.Fields{
		"request_id": id,
		"method":     req.Method,
		"path":       req.URL.Path,
		"latency":    l.Clock.Now().Sub(start),
	}
	if nrw, ok := rw.(negroni.ResponseWriter); ok {
		fields["status"] = nrw.Status()
	}
	l.Logger.WithFields(fields).Info("request")
}
