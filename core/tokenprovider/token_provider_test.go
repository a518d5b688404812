// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package tokenprovider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProvider points a Provider at a local OAuth stub.
func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := New("refresh-1")
	p.authURL = srv.URL
	p.client = srv.Client()

	return p
}

func TestAccessTokenWithoutSession(t *testing.T) {
	t.Parallel()

	p := New("")

	token, ok := p.AccessToken(context.Background())
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestAccessTokenRefreshes(t *testing.T) {
	t.Parallel()

	var form map[string][]string

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		form = r.PostForm

		fmt.Fprint(w, `{"access_token": "access-1", "expires_in": 3600, "refresh_token": "refresh-2"}`)
	})

	token, ok := p.AccessToken(context.Background())
	require.True(t, ok)
	assert.Equal(t, "access-1", token)

	assert.Equal(t, map[string][]string{
		"client_id":      {clientID},
		"client_secret":  {clientSecret},
		"grant_type":     {"refresh_token"},
		"include_policy": {"true"},
		"refresh_token":  {"refresh-1"},
	}, form)

	// The rotated refresh token replaces the configured one.
	assert.Equal(t, "refresh-2", p.refreshToken)
}

func TestAccessTokenCachesUntilNearExpiry(t *testing.T) {
	t.Parallel()

	refreshes := 0

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		refreshes++

		fmt.Fprintf(w, `{"access_token": "access-%d", "expires_in": 3600}`, refreshes)
	})

	current := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return current }

	token, ok := p.AccessToken(context.Background())
	require.True(t, ok)
	assert.Equal(t, "access-1", token)

	// Well within the token lifetime: served from cache.
	current = current.Add(30 * time.Minute)

	token, ok = p.AccessToken(context.Background())
	require.True(t, ok)
	assert.Equal(t, "access-1", token)
	assert.Equal(t, 1, refreshes)

	// Inside the refresh margin: renewed.
	current = current.Add(30 * time.Minute)

	token, ok = p.AccessToken(context.Background())
	require.True(t, ok)
	assert.Equal(t, "access-2", token)
	assert.Equal(t, 2, refreshes)
}

func TestAccessTokenRefreshFailure(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": "invalid_grant"}`)
	})

	token, ok := p.AccessToken(context.Background())
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestAccessTokenRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"expires_in": 3600}`)
	})

	_, ok := p.AccessToken(context.Background())
	assert.False(t, ok)
}
