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

package client

import (
	"errors"
	"fmt"
)

// APIError is the single error type produced by failed API calls.
//
// Two origins share it. A transport failure (network, timeout, DNS) leaves
// StatusCode at 0 and Response nil, with Message taken from the underlying
// failure. A non-2xx response sets StatusCode; Response holds the decoded
// JSON body when one was available, and Message is taken from the body's
// "error" field when present.
type APIError struct {
	Message    string
	StatusCode int
	Response   map[string]any
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("domaingrid: %s (status %d)", e.Message, e.StatusCode)
	}
	return "domaingrid: " + e.Message
}

// AsAPIError extracts an *APIError from err, unwrapping as needed. It lets
// callers branch on API failures without type-asserting directly.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
