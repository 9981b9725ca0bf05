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

package api

// AddDomainRequest is the body for registering a custom domain.
type AddDomainRequest struct {
	Domain      string `json:"domain"`
	UpstreamURL string `json:"upstream_url"`
	TenantID    string `json:"tenant_id,omitempty"`
}

// ListDomainsOptions filters a domain listing. Zero-value fields are
// omitted from the query string entirely.
type ListDomainsOptions struct {
	TenantID string
	Status   DomainStatus
}

// CreateTenantRequest is the body for creating a tenant.
type CreateTenantRequest struct {
	Name        string `json:"name"`
	UpstreamURL string `json:"upstream_url"`
}

// UpdateTenantRequest is the body for a partial tenant update. Only
// non-nil fields are sent.
type UpdateTenantRequest struct {
	Name        *string `json:"name,omitempty"`
	UpstreamURL *string `json:"upstream_url,omitempty"`
}

// CreateWebhookRequest is the body for creating a webhook subscription.
type CreateWebhookRequest struct {
	URL      string   `json:"url"`
	Events   []string `json:"events"`
	TenantID string   `json:"tenant_id,omitempty"`
}
