// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const webviewViewerVersion = "20221031_ai"

// novelDataRegexp locates the novel JSON literal embedded in the webview
// HTML: `novel: {...}, isOwnWork`. The layout is not contractually stable.
var novelDataRegexp = regexp.MustCompile(`(?s)novel:\s*(\{.+\}),\s*isOwnWork`)

// WebviewNovel fetches the webview document for a novel and extracts the
// embedded novel JSON object.
//
// Extraction failures are soft: the upstream HTML layout can change without
// notice, so a document that doesn't match yields a normal response payload
// with an "error" field instead of an error return.
func (g *Gateway) WebviewNovel(ctx context.Context, id int) (json.RawMessage, error) {
	p := webviewParams(id)

	return g.cached(ctx, "webview_novel", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		text, err := g.requestText(ctx, "webview/v2/novel", p)
		if err != nil {
			return nil, err
		}

		return extractNovelData(ctx, text), nil
	})
}

// WebviewNovelRaw fetches the webview document for a novel and returns the
// HTML text unmodified.
func (g *Gateway) WebviewNovelRaw(ctx context.Context, id int) (string, error) {
	p := webviewParams(id)

	if g.memo == nil {
		return g.requestText(ctx, "webview/v2/novel", p)
	}

	body, err := g.memo.Do(ctx, "webview_novel_raw?"+p.encode(), time.Hour, func(ctx context.Context) ([]byte, error) {
		text, err := g.requestText(ctx, "webview/v2/novel", p)
		if err != nil {
			return nil, err
		}

		return []byte(text), nil
	})
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// NovelText reshapes the webview novel document to its text field:
// {"novel_text": <text, or "" when absent>}.
func (g *Gateway) NovelText(ctx context.Context, id int) (json.RawMessage, error) {
	novel, err := g.WebviewNovel(ctx, id)
	if err != nil {
		return nil, err
	}

	reshaped, err := json.Marshal(struct {
		NovelText string `json:"novel_text"`
	}{
		NovelText: gjson.GetBytes(novel, "text").String(),
	})
	if err != nil {
		return nil, err
	}

	return reshaped, nil
}

func webviewParams(id int) *params {
	return newParams().
		setInt("id", id).
		set("viewer_version", webviewViewerVersion)
}

// extractNovelData pulls the embedded JSON literal out of the webview HTML,
// falling back to a structured error payload when the document doesn't match
// or the literal isn't valid JSON.
func extractNovelData(ctx context.Context, text string) []byte {
	match := novelDataRegexp.FindStringSubmatch(text)
	if match == nil {
		return parseNovelError("no novel data found in webview document")
	}

	data := match[1]
	if !gjson.Valid(data) {
		log.Ctx(ctx).Warn().Msg("Webview novel data matched but is not valid JSON")

		return parseNovelError("extracted novel data is not valid JSON")
	}

	return []byte(data)
}

func parseNovelError(reason string) []byte {
	payload, err := json.Marshal(struct {
		Error string `json:"error"`
	}{
		Error: "Parse novel error: " + reason,
	})
	if err != nil {
		// Marshalling a flat string struct cannot fail.
		return []byte(`{"error": "Parse novel error"}`)
	}

	return payload
}
