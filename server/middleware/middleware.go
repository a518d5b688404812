// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package middleware provides the request middleware chain: request context
// setup, request logging, and handler error translation.
package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivgw/pixivgw/server/request_context"
)

// Middleware is one link of the router's middleware chain.
type Middleware func(w http.ResponseWriter, r *http.Request, next http.Handler)

// WithRequestContext attaches a fresh RequestContext and a request-scoped
// logger to the request. It must run first in the chain.
func WithRequestContext(w http.ResponseWriter, r *http.Request, next http.Handler) {
	ctx := request_context.WithRequestContext(r.Context(), r)

	logger := log.Logger.With().
		Str("request_id", request_context.FromContext(ctx).RequestID).
		Logger()
	ctx = logger.WithContext(ctx)

	next.ServeHTTP(w, r.WithContext(ctx))
}

// LogRequest logs one line per handled request.
func LogRequest(w http.ResponseWriter, r *http.Request, next http.Handler) {
	start := time.Now()

	next.ServeHTTP(w, r)

	rc := request_context.FromRequest(r)

	event := log.Ctx(r.Context()).Info()
	if rc.RequestError != nil {
		event = log.Ctx(r.Context()).Warn().Err(rc.RequestError)
	}

	event.
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rc.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Handled request")
}
