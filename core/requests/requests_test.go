// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsBodyVerbatim(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "value", r.Header.Get("X-Custom"))
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	headers := make(http.Header)
	headers.Set("X-Custom", "value")

	body, err := Get(context.Background(), srv.URL, headers)
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, string(body))
}

func TestGetTranslatesErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"message": "Work not found"}}`))
	}))
	t.Cleanup(srv.Close)

	_, err := Get(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Work not found", apiErr.Message)
}

func TestGetTranslatesTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := Get(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		statusCode int
		want       string
	}{
		{"message field", `{"error": {"message": "Rate limit"}}`, 403, "Rate limit"},
		{"user message fallback", `{"error": {"user_message": "Page not found"}}`, 404, "Page not found"},
		{"status text fallback", `<html>gateway</html>`, 502, "Bad Gateway"},
		{"unknown status", `not json`, 599, "An unknown API error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := errorMessage([]byte(tt.body), tt.statusCode); got != tt.want {
				t.Errorf("errorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
