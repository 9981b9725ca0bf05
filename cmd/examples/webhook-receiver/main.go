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
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/domaingrid/domaingrid-go/pkg/webhook"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	secret := os.Getenv("DOMAINGRID_WEBHOOK_SECRET")
	if secret == "" {
		logger.Fatal("DOMAINGRID_WEBHOOK_SECRET is required")
	}

	verify := webhook.NewMiddleware(secret)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Method(http.MethodPost, "/webhooks", verify.Wrap(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var event struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		if err := json.NewDecoder(req.Body).Decode(&event); err != nil {
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}

		logger.Info("delivery verified", zap.String("event", event.Event))
		w.WriteHeader(http.StatusNoContent)
	})))

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8484"
	}

	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
