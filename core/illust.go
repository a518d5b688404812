// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// ErrNoRankingResults is returned by Rank when the upstream page is empty and
// unpaginated, which signals exhaustion or an invalid date rather than a
// legitimately empty board.
var ErrNoRankingResults = errors.New("no ranking results")

var errInvalidParamsOverride = errors.New("params override is not a JSON object")

// RecommendedOptions are the parameters of the recommended-feed operations.
//
// Either the discrete fields or ParamsOverride are sent, never both: a
// non-empty ParamsOverride fully replaces the discrete flags.
type RecommendedOptions struct {
	// Filter selects the client platform variant. Empty means "for_ios".
	Filter string

	// IncludeRankingLabel is the upstream "include_ranking_label" flag as a
	// wire string. Empty means "true".
	IncludeRankingLabel string

	// ParamsOverride, when non-empty, is a raw JSON object whose fields
	// become the complete query parameter set.
	ParamsOverride string
}

// Illust fetches the detail document for one illustration.
func (g *Gateway) Illust(ctx context.Context, id int) (json.RawMessage, error) {
	p := newParams().setInt("illust_id", id)

	return g.cached(ctx, "illust", p, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/illust/detail", p)
	})
}

// IllustRecommended fetches the recommended illustration feed.
func (g *Gateway) IllustRecommended(ctx context.Context, o RecommendedOptions) (json.RawMessage, error) {
	p, err := recommendedParams(o)
	if err != nil {
		return nil, err
	}

	return g.cached(ctx, "illust_recommended", p, 4*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/illust/recommended", p)
	})
}

// MangaRecommended fetches the recommended manga feed.
func (g *Gateway) MangaRecommended(ctx context.Context, filter string) (json.RawMessage, error) {
	p := newParams().
		set("filter", orDefault(filter, "for_ios")).
		set("include_ranking_illusts", "true").
		set("include_privacy_policy", "true")

	return g.cached(ctx, "manga_recommended", p, 3*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/manga/recommended", p)
	})
}

// IllustNew fetches the newest works feed.
func (g *Gateway) IllustNew(ctx context.Context, contentType IllustType, filter string) (json.RawMessage, error) {
	if contentType == "" {
		contentType = IllustTypeIllust
	}

	p := newParams().
		set("content_type", string(contentType)).
		set("filter", orDefault(filter, "for_ios"))

	return g.cached(ctx, "illust_new", p, 30*time.Minute, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/illust/new", p)
	})
}

// Spotlights fetches pixivision spotlight articles.
func (g *Gateway) Spotlights(ctx context.Context, category, filter string, page, size int) (json.RawMessage, error) {
	page, size = normalizePage(page, size, 10)

	p := newParams().
		set("filter", orDefault(filter, "for_ios")).
		set("category", orDefault(category, "all")).
		setOffset(page, size)

	return g.cached(ctx, "spotlights", p, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/spotlight/articles", p)
	})
}

// RankOptions are the parameters of the illustration ranking operation.
type RankOptions struct {
	Mode RankingMode // empty means day
	Date RankingDate // zero means yesterday
	Page int
	Size int
}

// Rank fetches one page of an illustration ranking board.
//
// An empty page with no continuation is reported as ErrNoRankingResults
// instead of being returned.
func (g *Gateway) Rank(ctx context.Context, o RankOptions) (json.RawMessage, error) {
	if o.Mode == "" {
		o.Mode = RankingModeDay
	}

	if o.Date.IsZero() {
		o.Date = yesterdayFrom(g.now())
	}

	page, size := normalizePage(o.Page, o.Size, defaultPageSize)

	p := newParams().
		set("mode", string(o.Mode)).
		set("date", o.Date.String()).
		setOffset(page, size)

	return g.cached(ctx, "rank", p, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		body, err := g.request(ctx, "v1/illust/ranking", p)
		if err != nil {
			return nil, err
		}

		result := gjson.ParseBytes(body)
		if result.Get("next_url").String() == "" && len(result.Get("illusts").Array()) == 0 {
			return nil, fmt.Errorf("%w for mode %s on %s", ErrNoRankingResults, o.Mode, o.Date)
		}

		return body, nil
	})
}

// Related fetches illustrations related to the given one.
func (g *Gateway) Related(ctx context.Context, id, page, size int) (json.RawMessage, error) {
	page, size = normalizePage(page, size, defaultPageSize)

	p := newParams().setInt("illust_id", id).setOffset(page, size)

	return g.cached(ctx, "related", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v2/illust/related", p)
	})
}

// UgoiraMetadata fetches the frame metadata of an animated work.
func (g *Gateway) UgoiraMetadata(ctx context.Context, id int) (json.RawMessage, error) {
	p := newParams().setInt("illust_id", id)

	return g.cached(ctx, "ugoira_metadata", p, 3*24*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/ugoira/metadata", p)
	})
}

// WalkthroughIllusts fetches the onboarding walkthrough feed. Always live.
func (g *Gateway) WalkthroughIllusts(ctx context.Context) (json.RawMessage, error) {
	return g.request(ctx, "v1/walkthrough/illusts", nil)
}

// Tags fetches the trending illustration tags.
func (g *Gateway) Tags(ctx context.Context) (json.RawMessage, error) {
	return g.cached(ctx, "tags", nil, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/trending-tags/illust", nil)
	})
}

// IllustComments fetches the comments on an illustration. A zero offset is
// treated as absent.
func (g *Gateway) IllustComments(ctx context.Context, illustID, offset int, includeTotalComments string) (json.RawMessage, error) {
	p := newParams().
		setInt("illust_id", illustID).
		setOptionalInt("offset", offset).
		setOptional("include_total_comments", includeTotalComments)

	return g.cached(ctx, "illust_comments", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v3/illust/comments", p)
	})
}

// IllustCommentReplies fetches the replies to an illustration comment.
func (g *Gateway) IllustCommentReplies(ctx context.Context, commentID int) (json.RawMessage, error) {
	p := newParams().setInt("comment_id", commentID)

	return g.cached(ctx, "illust_comment_replies", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v2/illust/comment/replies", p)
	})
}

// recommendedParams resolves the structured-flags-or-raw-override sum: a
// non-empty override replaces the discrete flags entirely.
func recommendedParams(o RecommendedOptions) (*params, error) {
	if o.ParamsOverride == "" {
		return newParams().
			set("filter", orDefault(o.Filter, "for_ios")).
			set("include_ranking_label", orDefault(o.IncludeRankingLabel, "true")), nil
	}

	override := gjson.Parse(o.ParamsOverride)
	if !override.IsObject() {
		return nil, fmt.Errorf("%w: %q", errInvalidParamsOverride, o.ParamsOverride)
	}

	p := newParams()

	override.ForEach(func(key, value gjson.Result) bool {
		p.set(key.String(), value.String())

		return true
	})

	return p, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
