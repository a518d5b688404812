// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package tokenprovider holds the upstream OAuth session and serves the bearer
token the gateway attaches to app-API requests.

A Provider is configured with a long-lived refresh token and exchanges it for
short-lived access tokens with the mobile client credentials, refreshing ahead
of expiry. A Provider without a refresh token represents "no session".
*/
package tokenprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivgw/pixivgw/core/requests"
)

const (
	authTokenURL = "https://oauth.secure.pixiv.net/auth/token" //#nosec:G101 - false positive

	// Mobile client credentials; public knowledge, baked into the app.
	clientID     = "MOBrBDS8blbauoSck0ZfDbtuzpyT"
	clientSecret = "lsACyCD94FhDUtGTXi3QzcFE2uU1hqtDaKeqrdwj" //#nosec:G101 - false positive

	authUserAgent = "PixivAndroidApp/5.0.234 (Android 11; Pixel 5)"

	// refreshMargin renews the access token this long before it expires.
	refreshMargin = time.Minute
)

var errRefreshFailed = errors.New("token refresh failed")

type credentials struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// Provider exchanges a refresh token for access tokens and caches the result
// until shortly before expiry. Safe for concurrent use.
type Provider struct {
	mu           sync.Mutex
	refreshToken string
	accessToken  string
	expiresAt    time.Time

	authURL string
	client  *http.Client
	now     func() time.Time
}

// New creates a Provider for the given refresh token. An empty token yields a
// sessionless provider whose AccessToken always reports ok=false.
func New(refreshToken string) *Provider {
	return &Provider{
		refreshToken: refreshToken,
		authURL:      authTokenURL,
		client:       requests.HTTPClient,
		now:          time.Now,
	}
}

// AccessToken returns the current access token, refreshing it when missing or
// near expiry. ok is false when no session is held or the refresh failed.
func (p *Provider) AccessToken(ctx context.Context) (string, bool) {
	if p == nil || p.refreshToken == "" {
		return "", false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.accessToken != "" && p.now().Before(p.expiresAt.Add(-refreshMargin)) {
		return p.accessToken, true
	}

	if err := p.refresh(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Failed to refresh access token")

		return "", false
	}

	return p.accessToken, true
}

// refresh performs the OAuth refresh-token exchange. Callers hold p.mu.
func (p *Provider) refresh(ctx context.Context) error {
	form := url.Values{}
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("include_policy", "true")
	form.Set("refresh_token", p.refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %w", errRefreshFailed, err)
	}

	req.Header.Set("User-Agent", authUserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errRefreshFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", errRefreshFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", errRefreshFailed, resp.StatusCode)
	}

	var creds credentials
	if err := json.Unmarshal(body, &creds); err != nil {
		return fmt.Errorf("%w: %w", errRefreshFailed, err)
	}

	if creds.AccessToken == "" {
		return fmt.Errorf("%w: response carried no access token", errRefreshFailed)
	}

	p.accessToken = creds.AccessToken
	p.expiresAt = p.now().Add(time.Duration(creds.ExpiresIn) * time.Second)

	// The upstream may rotate the refresh token on use.
	if creds.RefreshToken != "" {
		p.refreshToken = creds.RefreshToken
	}

	log.Ctx(ctx).Info().
		Time("expires_at", p.expiresAt).
		Msg("Refreshed upstream access token")

	return nil
}
