package utils

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"companion-backend/pkg/logger"

	"github.com/sirupsen/logrus"
)

var sensitiveHeaders = []string{
	"Authorization",
	"X-Api-Key",
	"X-Auth-Token",
	"Cookie",
	"OpenAI-Organization",
}

// DebugTransport logs outgoing requests with credentials redacted.
type DebugTransport struct {
	base http.RoundTripper
}

func NewDebugTransport(base http.RoundTripper) *DebugTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &DebugTransport{base: base}
}

func (t *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	entry := logger.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	if req.Method == http.MethodPost {
		t.logRequest(entry, req)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		entry.WithError(err).Error("upstream request failed")
		return nil, err
	}

	entry.WithField("status", resp.StatusCode).Debug("upstream response")
	return resp, nil
}

func (t *DebugTransport) logRequest(entry *logrus.Entry, req *http.Request) {
	entry = entry.WithField("headers", RedactHeaders(req.Header))

	if req.Body == nil {
		entry.Debug("upstream request")
		return
	}

	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		entry.WithError(err).Error("read upstream request body")
		req.Body = io.NopCloser(bytes.NewReader(nil))
		return
	}
	// restore the body for the real round trip
	req.Body = io.NopCloser(bytes.NewReader(body))

	entry.WithFields(logrus.Fields{
		"body":       string(body),
		"body_bytes": len(body),
	}).Debug("upstream request")
}

// RedactHeaders flattens headers for logging, masking credential-bearing ones.
func RedactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if isSensitiveHeader(name) {
			out[name] = "[REDACTED]"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func isSensitiveHeader(name string) bool {
	for _, sensitive := range sensitiveHeaders {
		if strings.EqualFold(name, sensitive) {
			return true
		}
	}
	return false
}
