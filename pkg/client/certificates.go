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

// CertificateService reads and renews the TLS certificates covering
// verified domains. Certificates are keyed by the domain they cover.
type CertificateService struct {
	client *Client
}

// Get fetches the certificate for a domain.
func (s *CertificateService) Get(ctx context.Context, domainID string) (*api.Certificate, error) {
	var cert api.Certificate
	if err := s.client.do(ctx, http.MethodGet, "/api/certificates/"+url.PathEscape(domainID), nil, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

// Renew requests an early renewal of the certificate for a domain.
func (s *CertificateService) Renew(ctx context.Context, domainID string) (*api.Certificate, error) {
	var cert api.Certificate
	if err := s.client.do(ctx, http.MethodPost, "/api/certificates/"+url.PathEscape(domainID)+"/renew", nil, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}
