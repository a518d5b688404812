// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"codeberg.org/pixivgw/pixivgw/core/requests"
)

// Live resources are served from the sketch subdomain with browser
// authentication rules, so LiveDetail bypasses the app-API host and header
// set entirely.
const (
	sketchHost      = "https://sketch.pixiv.net"
	sketchReferer   = "https://sketch.pixiv.net/"
	sketchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"
)

// LiveDetail fetches the detail document for a live broadcast. Always live,
// never cached, and not parameterized by the shared primitive's auth/locale
// logic.
func (g *Gateway) LiveDetail(ctx context.Context, id int) (json.RawMessage, error) {
	headers := make(http.Header)
	headers.Set("Referer", sketchReferer)
	headers.Set("User-Agent", sketchUserAgent)

	body, err := requests.Get(ctx, fmt.Sprintf("%s/api/lives/%d.json", g.sketchHost, id), headers)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
