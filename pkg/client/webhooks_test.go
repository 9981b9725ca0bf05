package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domaingrid/domaingrid-go/pkg/api"
)

const webhookJSON = `{"id":"wh_1","url":"https://hooks.example.com/domaingrid","events":["domain.verified","certificate.renewed"],"tenant_id":"tn_1","secret":"whsec_abc","created_at":"2025-08-10T08:00:00Z"}`

// Test Create sends the right route and body
func TestWebhookService_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/webhook", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"url":"https://hooks.example.com/domaingrid","events":["domain.verified","certificate.renewed"],"tenant_id":"tn_1"}`, string(body))

		_, _ = w.Write([]byte(webhookJSON))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	wh, err := c.Webhooks.Create(context.Background(), &api.CreateWebhookRequest{
		URL:      "https://hooks.example.com/domaingrid",
		Events:   []string{"domain.verified", "certificate.renewed"},
		TenantID: "tn_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "wh_1", wh.ID)
	assert.Equal(t, "whsec_abc", wh.Secret)
	// Subscription order is preserved.
	assert.Equal(t, []string{"domain.verified", "certificate.renewed"}, wh.Events)
}

// Test List decodes all webhooks
func TestWebhookService_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/webhook", r.URL.Path)

		_, _ = w.Write([]byte(`[` + webhookJSON + `]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	webhooks, err := c.Webhooks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, webhooks, 1)
	assert.Equal(t, "wh_1", webhooks[0].ID)
}

// Test Delete issues a DELETE
func TestWebhookService_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/webhook/wh_1", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	err := c.Webhooks.Delete(context.Background(), "wh_1")
	assert.NoError(t, err)
}
