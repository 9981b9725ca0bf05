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

// Package client provides the DomainGrid API client.
//
// The client groups the API into resource namespaces — Domains, Tenants,
// Webhooks and Certificates — that share one request gateway. Every call
// sends the configured API key in the x-api-key header, issues exactly one
// HTTP request, and returns either the decoded response or an *APIError.
//
// # Basic Usage
//
//	c, err := client.New("dg_live_...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	domain, err := c.Domains.Add(ctx, &api.AddDomainRequest{
//	    Domain:      "app.customer.com",
//	    UpstreamURL: "https://customer.internal",
//	})
//
// # Configuration
//
// Construction takes functional options:
//
//	c, err := client.New("dg_live_...",
//	    client.WithBaseURL("https://api.staging.domaingrid.io"),
//	    client.WithTimeout(10*time.Second),
//	    client.WithLogger(logger),
//	)
//
// The API key is required; New fails before any network activity when it is
// missing. NewFromEnv reads DOMAINGRID_API_KEY, DOMAINGRID_BASE_URL and
// DOMAINGRID_TIMEOUT_MS instead.
//
// # Error Handling
//
// Every failed call returns an *APIError. A transport failure carries no
// status code; a non-2xx response carries the status code and the decoded
// error body:
//
//	_, err := c.Domains.Get(ctx, "dom_missing")
//	if apiErr, ok := client.AsAPIError(err); ok {
//	    if apiErr.StatusCode == http.StatusNotFound {
//	        // domain does not exist
//	    }
//	}
//
// No call is retried; retry policy belongs to the caller.
//
// # Thread Safety
//
// A Client is immutable after construction and safe for concurrent use by
// multiple goroutines. Calls are independent: there is no shared state,
// cache, or cross-call ordering.
//
// # Cancellation
//
// Every operation takes a context.Context. Requests are additionally
// bounded by the configured timeout (default 30s) unless a custom HTTP
// client is injected with WithHTTPClient.
package client
