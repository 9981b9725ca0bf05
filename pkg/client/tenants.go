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

// TenantService manages tenants, the isolated namespaces domains route
// traffic for.
type TenantService struct {
	client *Client
}

// Create creates a tenant.
func (s *TenantService) Create(ctx context.Context, req *api.CreateTenantRequest) (*api.Tenant, error) {
	var t api.Tenant
	if err := s.client.do(ctx, http.MethodPost, "/api/tenant/create", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Get fetches a single tenant by ID.
func (s *TenantService) Get(ctx context.Context, id string) (*api.Tenant, error) {
	var t api.Tenant
	if err := s.client.do(ctx, http.MethodGet, "/api/tenant/"+url.PathEscape(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List fetches all tenants.
func (s *TenantService) List(ctx context.Context) ([]api.Tenant, error) {
	var tenants []api.Tenant
	if err := s.client.do(ctx, http.MethodGet, "/api/tenant", nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// Update applies a partial update. Only the fields set on req are sent.
func (s *TenantService) Update(ctx context.Context, id string, req *api.UpdateTenantRequest) (*api.Tenant, error) {
	var t api.Tenant
	if err := s.client.do(ctx, http.MethodPatch, "/api/tenant/"+url.PathEscape(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a tenant.
func (s *TenantService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/tenant/"+url.PathEscape(id), nil, nil)
}
