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
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the production DomainGrid API endpoint.
	DefaultBaseURL = "https://api.domaingrid.io"

	// DefaultTimeout bounds each request when no custom HTTP client is supplied.
	DefaultTimeout = 30 * time.Second
)

// Client is a DomainGrid API client. Configuration is immutable after
// construction, so a Client is safe for concurrent use by multiple
// goroutines; every call is stateless apart from that fixed configuration.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	// Resource namespaces. Each holds only a reference back to the shared
	// gateway and contributes no state of its own.
	Domains      *DomainService
	Tenants      *TenantService
	Webhooks     *WebhookService
	Certificates *CertificateService
}

// New creates a DomainGrid client. The API key is required; construction
// fails synchronously, before any network activity, when it is missing.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a client from an explicit configuration.
func NewWithConfig(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
	c.Domains = &DomainService{client: c}
	c.Tenants = &TenantService{client: c}
	c.Webhooks = &WebhookService{client: c}
	c.Certificates = &CertificateService{client: c}

	return c, nil
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}
