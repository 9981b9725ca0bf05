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
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.uber.org/zap"
)

// Config is the full client configuration. Most callers use New with
// options instead of building a Config directly.
type Config struct {
	// APIKey authenticates every request via the x-api-key header. Required.
	APIKey string

	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request. Ignored when HTTPClient is set.
	Timeout time.Duration

	// HTTPClient overrides the transport. When set, the caller owns
	// transport-level settings including timeouts.
	HTTPClient *http.Client

	// Logger receives debug-level request/response logs. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// Validate checks the configuration. It runs during construction, before
// any network activity.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required.Error("API key is required")),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
	)
}

type envConfig struct {
	APIKey    string `env:"DOMAINGRID_API_KEY"`
	BaseURL   string `env:"DOMAINGRID_BASE_URL"`
	TimeoutMS int    `env:"DOMAINGRID_TIMEOUT_MS" envDefault:"30000"`
}

// NewFromEnv creates a client configured from DOMAINGRID_API_KEY,
// DOMAINGRID_BASE_URL and DOMAINGRID_TIMEOUT_MS. Options are applied on
// top of the environment and take precedence.
func NewFromEnv(opts ...Option) (*Client, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg := Config{
		APIKey:  ec.APIKey,
		BaseURL: ec.BaseURL,
		Timeout: time.Duration(ec.TimeoutMS) * time.Millisecond,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}
