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

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/domaingrid/domaingrid-go/pkg/api"
	"github.com/domaingrid/domaingrid-go/pkg/client"
)

func main() {
	fmt.Println("DomainGrid Go - Manage Domains Example")
	fmt.Println("======================================")

	// Load .env if present; deployed environments set the variables directly.
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	c, err := client.NewFromEnv(client.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fmt.Println("\n1. Creating tenant...")
	tenant, err := c.Tenants.Create(ctx, &api.CreateTenantRequest{
		Name:        "Acme",
		UpstreamURL: "https://acme.internal",
	})
	if err != nil {
		log.Fatalf("Failed to create tenant: %v", err)
	}
	fmt.Printf("   Tenant: %s (%s)\n", tenant.Name, tenant.ID)

	fmt.Println("\n2. Adding domain...")
	domain, err := c.Domains.Add(ctx, &api.AddDomainRequest{
		Domain:      "app.acme.com",
		UpstreamURL: tenant.UpstreamURL,
		TenantID:    tenant.ID,
	})
	if err != nil {
		log.Fatalf("Failed to add domain: %v", err)
	}
	fmt.Printf("   Domain: %s (%s), status %s\n", domain.Domain, domain.ID, domain.Status)

	fmt.Println("\n3. Fetching DNS instructions...")
	instructions, err := c.Domains.DNSInstructions(ctx, domain.ID)
	if err != nil {
		log.Fatalf("Failed to fetch DNS instructions: %v", err)
	}
	for _, rec := range instructions.Records {
		fmt.Printf("   %s %s -> %s\n", rec.Type, rec.Name, rec.Value)
	}

	fmt.Println("\n4. Requesting verification...")
	domain, err = c.Domains.Verify(ctx, domain.ID)
	if err != nil {
		if apiErr, ok := client.AsAPIError(err); ok {
			// Expected until the DNS records above exist.
			fmt.Printf("   Not verified yet: %s (status %d)\n", apiErr.Message, apiErr.StatusCode)
		} else {
			log.Fatalf("Failed to verify domain: %v", err)
		}
	} else {
		fmt.Printf("   Domain status: %s\n", domain.Status)
	}

	fmt.Println("\n5. Listing verified domains for the tenant...")
	domains, err := c.Domains.List(ctx, &api.ListDomainsOptions{
		TenantID: tenant.ID,
		Status:   api.DomainStatusVerified,
	})
	if err != nil {
		log.Fatalf("Failed to list domains: %v", err)
	}
	for _, d := range domains {
		fmt.Printf("   %s (verified at %v)\n", d.Domain, d.VerifiedAt)
	}

	fmt.Println("\nDone.")
}
