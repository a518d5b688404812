// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"crypto/md5" // #nosec:G501 - upstream mandates MD5 for the client hash
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"codeberg.org/pixivgw/pixivgw/core/requests"
	"codeberg.org/pixivgw/pixivgw/server/request_context"
)

const (
	appHost = "https://app-api.pixiv.net"

	// Mobile client identity sent with every app-API request.
	appUserAgent = "PixivIOSApp/7.13.3 (iOS 14.6; iPhone13,2)"
	appOS        = "ios"
	appOSVersion = "14.6"
	appVersion   = "7.13.3"

	// clientHashSecret salts the X-Client-Hash header; the upstream client
	// computes MD5(client time + secret).
	clientHashSecret = "28c1fdd170a5204386cb1313c7077b34f83e4aaf4aa829ce78c231e05b0bae2c"

	defaultPageSize = 30
)

// TokenProvider supplies the bearer token for the current upstream session.
type TokenProvider interface {
	// AccessToken returns the current access token, or ok=false when no
	// session is held.
	AccessToken(ctx context.Context) (token string, ok bool)
}

// Memoizer wraps an operation fetch with a TTL policy.
//
// Implementations must execute fetch at most once concurrently per key and
// serve waiting callers the in-flight result.
type Memoizer interface {
	Do(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) ([]byte, error)) ([]byte, error)
}

// Gateway is a typed collection of pixiv app-API operations.
//
// The zero value is not usable; construct with NewGateway. Gateway holds no
// mutable state and is safe for concurrent use.
type Gateway struct {
	host       string
	sketchHost string
	tokens     TokenProvider
	memo       Memoizer
	now        func() time.Time
}

// NewGateway builds a Gateway. Both collaborators may be nil: a nil
// TokenProvider means no session (no Authorization header), a nil Memoizer
// disables response memoization.
func NewGateway(tokens TokenProvider, memo Memoizer) *Gateway {
	return &Gateway{
		host:       appHost,
		sketchHost: sketchHost,
		tokens:     tokens,
		memo:       memo,
		now:        time.Now,
	}
}

// request issues a GET against the primary app-API host and returns the raw
// JSON body verbatim.
func (g *Gateway) request(ctx context.Context, endpoint string, p *params) (json.RawMessage, error) {
	body, err := requests.Get(ctx, buildURL(g.host, endpoint, p), g.headers(ctx))
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// requestText is request in raw-text mode: the body is returned as a string
// without any JSON handling.
func (g *Gateway) requestText(ctx context.Context, endpoint string, p *params) (string, error) {
	body, err := requests.Get(ctx, buildURL(g.host, endpoint, p), g.headers(ctx))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// headers composes the outbound header set: the mobile client identity, a
// bearer token when a session exists, and the normalized inbound
// Accept-Language when present.
func (g *Gateway) headers(ctx context.Context) http.Header {
	h := make(http.Header)

	h.Set("App-OS", appOS)
	h.Set("App-OS-Version", appOSVersion)
	h.Set("App-Version", appVersion)
	h.Set("User-Agent", appUserAgent)

	clientTime := g.now().In(jst()).Format("2006-01-02T15:04:05-07:00")
	h.Set("X-Client-Time", clientTime)
	h.Set("X-Client-Hash", clientHash(clientTime))

	if g.tokens != nil {
		if token, ok := g.tokens.AccessToken(ctx); ok {
			h.Set("Authorization", "Bearer "+token)
		}
	}

	if language := request_context.FromContext(ctx).AcceptLanguage; language != "" {
		h.Set("Accept-Language", parseAcceptLanguage(language))
	}

	return h
}

// cached routes a fetch through the Memoizer under the operation's TTL
// policy. Operations without a policy (ttl == 0) are always fetched live.
func (g *Gateway) cached(
	ctx context.Context,
	operation string,
	p *params,
	ttl time.Duration,
	fetch func(context.Context) ([]byte, error),
) (json.RawMessage, error) {
	if g.memo == nil || ttl <= 0 {
		body, err := fetch(ctx)

		return json.RawMessage(body), err
	}

	body, err := g.memo.Do(ctx, operation+"?"+p.encode(), ttl, fetch)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

func clientHash(clientTime string) string {
	sum := md5.Sum([]byte(clientTime + clientHashSecret)) // #nosec:G401

	return hex.EncodeToString(sum[:])
}

func jst() *time.Location {
	return time.FixedZone("JST", 9*60*60)
}
