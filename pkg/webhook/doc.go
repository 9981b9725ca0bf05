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

// Package webhook verifies signed DomainGrid webhook deliveries.
//
// DomainGrid signs every delivery with the subscription secret: the
// signature is the lowercase hex HMAC-SHA256 digest of the raw request
// body, sent in the X-Webhook-Signature header.
//
// # Verifying Manually
//
//	body, _ := io.ReadAll(r.Body)
//	if !webhook.VerifySignature(body, r.Header.Get(webhook.SignatureHeader), secret) {
//	    http.Error(w, "bad signature", http.StatusUnauthorized)
//	    return
//	}
//
// Always verify against the raw body bytes as received. Decoding and
// re-encoding the JSON can reorder keys and change whitespace, which
// changes the digest.
//
// # Middleware
//
// Middleware wraps a handler so that only verified deliveries reach it:
//
//	mw := webhook.NewMiddleware(secret)
//	http.Handle("/webhooks", mw.Wrap(handler))
//
// Verification is pure and synchronous: no I/O, no network access, and a
// constant-time comparison of the digests.
package webhook
