// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"time"
)

// NovelDetail fetches the detail document for one novel.
func (g *Gateway) NovelDetail(ctx context.Context, id int) (json.RawMessage, error) {
	p := newParams().setInt("novel_id", id)

	return g.cached(ctx, "novel_detail", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v2/novel/detail", p)
	})
}

// NovelSeries fetches a novel series document.
func (g *Gateway) NovelSeries(ctx context.Context, id int) (json.RawMessage, error) {
	p := newParams().setInt("series_id", id)

	return g.cached(ctx, "novel_series", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v2/novel/series", p)
	})
}

// NovelNew fetches the newest novels feed. A zero cursor means the first page.
func (g *Gateway) NovelNew(ctx context.Context, maxNovelID int) (json.RawMessage, error) {
	p := newParams().setOptionalInt("max_novel_id", maxNovelID)

	return g.cached(ctx, "novel_new", p, 10*time.Minute, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/novel/new", p)
	})
}

// NovelRecommended fetches the recommended novels feed.
func (g *Gateway) NovelRecommended(ctx context.Context, filter string) (json.RawMessage, error) {
	p := newParams().
		set("filter", orDefault(filter, "for_ios")).
		set("include_privacy_policy", "true").
		set("include_ranking_novels", "true")

	return g.cached(ctx, "novel_recommended", p, 3*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/novel/recommended", p)
	})
}

// RankNovelOptions are the parameters of the novel ranking operation.
//
// Unlike illustration rankings, the upstream novel board accepts mode values
// outside the illustration set, so Mode is a free string.
type RankNovelOptions struct {
	Mode string      // empty means day
	Date RankingDate // zero means yesterday
	Page int
	Size int
}

// RankNovel fetches one page of a novel ranking board.
func (g *Gateway) RankNovel(ctx context.Context, o RankNovelOptions) (json.RawMessage, error) {
	if o.Mode == "" {
		o.Mode = string(RankingModeDay)
	}

	if o.Date.IsZero() {
		o.Date = yesterdayFrom(g.now())
	}

	page, size := normalizePage(o.Page, o.Size, defaultPageSize)

	p := newParams().
		set("mode", o.Mode).
		set("date", o.Date.String()).
		setOffset(page, size)

	return g.cached(ctx, "rank_novel", p, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/novel/ranking", p)
	})
}

// TagsNovel fetches the trending novel tags.
func (g *Gateway) TagsNovel(ctx context.Context) (json.RawMessage, error) {
	return g.cached(ctx, "tags_novel", nil, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/trending-tags/novel", nil)
	})
}

// NovelComments fetches the comments on a novel. A zero offset is treated as
// absent.
func (g *Gateway) NovelComments(ctx context.Context, novelID, offset int, includeTotalComments string) (json.RawMessage, error) {
	p := newParams().
		setInt("novel_id", novelID).
		setOptionalInt("offset", offset).
		setOptional("include_total_comments", includeTotalComments)

	return g.cached(ctx, "novel_comments", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v3/novel/comments", p)
	})
}

// NovelCommentReplies fetches the replies to a novel comment.
func (g *Gateway) NovelCommentReplies(ctx context.Context, commentID int) (json.RawMessage, error) {
	p := newParams().setInt("comment_id", commentID)

	return g.cached(ctx, "novel_comment_replies", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v2/novel/comment/replies", p)
	})
}
