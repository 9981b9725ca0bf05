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

// WebhookService manages webhook subscriptions. Deliveries are signed with
// the subscription secret; the webhook package verifies them.
type WebhookService struct {
	client *Client
}

// Create creates a webhook subscription. The returned Webhook carries the
// signing secret; the service does not return it again on later calls.
func (s *WebhookService) Create(ctx context.Context, req *api.CreateWebhookRequest) (*api.Webhook, error) {
	var w api.Webhook
	if err := s.client.do(ctx, http.MethodPost, "/api/webhook", req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// List fetches all webhook subscriptions.
func (s *WebhookService) List(ctx context.Context) ([]api.Webhook, error) {
	var webhooks []api.Webhook
	if err := s.client.do(ctx, http.MethodGet, "/api/webhook", nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

// Delete removes a webhook subscription.
func (s *WebhookService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/webhook/"+url.PathEscape(id), nil, nil)
}
