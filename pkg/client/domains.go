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
	"context"
	"net/http"
	"net/url"

	"github.com/domaingrid/domaingrid-go/pkg/api"
)

// DomainService manages custom domains.
type DomainService struct {
	client *Client
}

// Add registers a new custom domain.
func (s *DomainService) Add(ctx context.Context, req *api.AddDomainRequest) (*api.Domain, error) {
	var d api.Domain
	if err := s.client.do(ctx, http.MethodPost, "/api/domain/add", req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Get fetches a single domain by ID.
func (s *DomainService) Get(ctx context.Context, id string) (*api.Domain, error) {
	var d api.Domain
	if err := s.client.do(ctx, http.MethodGet, "/api/domain/"+url.PathEscape(id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// List fetches domains, optionally filtered by tenant and status. Filters
// appear in the query string only when set.
func (s *DomainService) List(ctx context.Context, opts *api.ListDomainsOptions) ([]api.Domain, error) {
	path := "/api/domain"
	if opts != nil {
		q := url.Values{}
		if opts.TenantID != "" {
			q.Set("tenant_id", opts.TenantID)
		}
		if opts.Status != "" {
			q.Set("status", string(opts.Status))
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	var domains []api.Domain
	if err := s.client.do(ctx, http.MethodGet, path, nil, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// Verify asks the service to re-check DNS for the domain and returns the
// refreshed snapshot.
func (s *DomainService) Verify(ctx context.Context, id string) (*api.Domain, error) {
	var d api.Domain
	if err := s.client.do(ctx, http.MethodPost, "/api/domain/"+url.PathEscape(id)+"/verify", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Delete removes a domain.
func (s *DomainService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/domain/"+url.PathEscape(id), nil, nil)
}

// DNSInstructions fetches the DNS records the domain owner must create
// before the domain can verify.
func (s *DomainService) DNSInstructions(ctx context.Context, id string) (*api.DNSInstructions, error) {
	var instructions api.DNSInstructions
	if err := s.client.do(ctx, http.MethodGet, "/api/domain/"+url.PathEscape(id)+"/dns-instructions", nil, &instructions); err != nil {
		return nil, err
	}
	return &instructions, nil
}
