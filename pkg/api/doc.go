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

// Package api defines the wire types exchanged with the DomainGrid API.
//
// Entities (Domain, Tenant, Webhook, Certificate) are snapshots of
// server-side records. The client decodes them verbatim and never validates
// or mutates their shape; the remote service is the source of truth.
//
// Request structs (AddDomainRequest, CreateTenantRequest, ...) mirror the
// JSON bodies the API accepts. Optional fields carry omitempty so that
// unset values never appear on the wire; UpdateTenantRequest uses pointer
// fields so a partial update sends only the fields the caller set.
package api
