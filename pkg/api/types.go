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

import "time"

// DomainStatus is the verification state of a custom domain.
type DomainStatus string

const (
	DomainStatusPending  DomainStatus = "pending"
	DomainStatusVerified DomainStatus = "verified"
	DomainStatusFailed   DomainStatus = "failed"
)

// Domain is a custom domain registered with the service.
type Domain struct {
	ID          string       `json:"id"`
	Domain      string       `json:"domain"`
	Status      DomainStatus `json:"status"`
	TenantID    string       `json:"tenant_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	VerifiedAt  *time.Time   `json:"verified_at,omitempty"`
	DNSProvider string       `json:"dns_provider,omitempty"`
}

// Tenant is an isolated customer namespace that domains route traffic for.
type Tenant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UpstreamURL string    `json:"upstream_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Webhook is a subscription that delivers signed event payloads to a URL.
// Events preserve the order they were subscribed in. Secret is the shared
// key used to sign deliveries; see the webhook package for verification.
type Webhook struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Secret    string    `json:"secret"`
	CreatedAt time.Time `json:"created_at"`
}

// CertificateStatus is the lifecycle state of a TLS certificate.
type CertificateStatus string

const (
	CertificateStatusActive  CertificateStatus = "active"
	CertificateStatusExpired CertificateStatus = "expired"
	CertificateStatusPending CertificateStatus = "pending"
)

// Certificate describes the TLS certificate covering a domain.
type Certificate struct {
	DomainID  string            `json:"domain_id"`
	IssuedAt  time.Time         `json:"issued_at"`
	ExpiresAt time.Time         `json:"expires_at"`
	Status    CertificateStatus `json:"status"`
}

// DNSRecord is a single record the domain owner must create.
type DNSRecord struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DNSInstructions lists the DNS records required to verify a domain.
type DNSInstructions struct {
	Domain  string      `json:"domain"`
	Records []DNSRecord `json:"records"`
}
