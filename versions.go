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

// Package domaingrid provides version information for domaingrid-go.
package domaingrid

const (
	// Version is the current version of domaingrid-go
	Version = "0.3.0"

	// APIVersion is the DomainGrid API version this library targets
	APIVersion = "2025-08"
)

// UserAgent is the User-Agent header value the client sends on every request.
const UserAgent = "domaingrid-go/" + Version
