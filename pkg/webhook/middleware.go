// Copyright (C) 2025 DomainGrid Project
//
// This file is part of domaingrid-go.
//
// domaingrid-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// domaingrid-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with domaingrid-go.  If not, see <https://www.gnu.org/licenses/>.

package webhook

import (
	"bytes"
	"errors"
	"io"
	"net/http"
)

// SignatureHeader carries the hex HMAC-SHA256 digest of the delivery body.
const SignatureHeader = "X-Webhook-Signature"

// ErrorHandler handles rejected deliveries.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware verifies inbound webhook deliveries against a shared secret.
type Middleware struct {
	secret       string
	errorHandler ErrorHandler
	optional     bool
}

// NewMiddleware creates verification middleware for the given webhook
// secret. Rejected deliveries get a 401 unless a custom error handler is
// set.
func NewMiddleware(secret string) *Middleware {
	return &Middleware{
		secret:       secret,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom handler for rejected deliveries.
func (m *Middleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, requests without a signature header are allowed to pass through.
func (m *Middleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with delivery verification. The request body
// is read for verification and restored before the handler runs, so the
// handler sees the exact raw payload.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(SignatureHeader)
		if signature == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, errors.New("missing signature header"))
			return
		}

		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if !VerifySignature(bodyBytes, signature, m.secret) {
			m.errorHandler(w, r, errors.New("signature verification failed"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, err.Error(), http.StatusUnauthorized)
}
