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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Test New fails synchronously without an API key
func TestNew_MissingAPIKey(t *testing.T) {
	c, err := New("")

	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

// Test New applies defaults
func TestNew_Defaults(t *testing.T) {
	c, err := New("test-key")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.NotNil(t, c.Domains)
	assert.NotNil(t, c.Tenants)
	assert.NotNil(t, c.Webhooks)
	assert.NotNil(t, c.Certificates)
}

// Test options override defaults
func TestNew_Options(t *testing.T) {
	logger := zap.NewNop()

	c, err := New("test-key",
		WithBaseURL("https://api.staging.domaingrid.io/"),
		WithTimeout(5*time.Second),
		WithLogger(logger),
	)
	require.NoError(t, err)

	// Trailing slash is trimmed so path joining stays predictable.
	assert.Equal(t, "https://api.staging.domaingrid.io", c.BaseURL())
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	assert.Same(t, logger, c.logger)
}

// Test custom HTTP client is used as-is
func TestNew_WithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}

	c, err := New("test-key", WithHTTPClient(custom))
	require.NoError(t, err)

	assert.Same(t, custom, c.httpClient)
}

// Test invalid base URL is rejected at construction
func TestNewWithConfig_InvalidBaseURL(t *testing.T) {
	_, err := NewWithConfig(Config{
		APIKey:  "test-key",
		BaseURL: "not a url",
	})

	assert.Error(t, err)
}

// Test NewFromEnv reads DOMAINGRID_* variables
func TestNewFromEnv(t *testing.T) {
	t.Setenv("DOMAINGRID_API_KEY", "env-key")
	t.Setenv("DOMAINGRID_BASE_URL", "https://api.env.domaingrid.io")
	t.Setenv("DOMAINGRID_TIMEOUT_MS", "1500")

	c, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "env-key", c.apiKey)
	assert.Equal(t, "https://api.env.domaingrid.io", c.BaseURL())
	assert.Equal(t, 1500*time.Millisecond, c.httpClient.Timeout)
}

// Test NewFromEnv defaults when only the key is set
func TestNewFromEnv_Defaults(t *testing.T) {
	t.Setenv("DOMAINGRID_API_KEY", "env-key")

	c, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

// Test NewFromEnv fails without an API key
func TestNewFromEnv_MissingAPIKey(t *testing.T) {
	t.Setenv("DOMAINGRID_API_KEY", "")

	_, err := NewFromEnv()
	assert.Error(t, err)
}

// Test options take precedence over the environment
func TestNewFromEnv_OptionsOverride(t *testing.T) {
	t.Setenv("DOMAINGRID_API_KEY", "env-key")
	t.Setenv("DOMAINGRID_BASE_URL", "https://api.env.domaingrid.io")

	c, err := NewFromEnv(WithBaseURL("https://api.override.domaingrid.io"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.override.domaingrid.io", c.BaseURL())
}
