// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"time"
)

// SearchOptions are the parameters of the illustration search operation.
type SearchOptions struct {
	Word     string
	Target   SearchTarget   // empty means partial_match_for_tags
	Sort     SearchSort     // empty means date_desc
	Duration SearchDuration // optional

	// StartDate and EndDate bound the result window as YYYY-MM-DD. Optional.
	StartDate string
	EndDate   string

	// Wire-string flags; empty means "true".
	IncludeTranslatedTagResults string
	MergePlainKeywordResults    string

	Page int
	Size int
}

// NovelSearchOptions are the parameters of the novel search operation.
type NovelSearchOptions struct {
	Word     string
	Target   NovelSearchTarget // empty means partial_match_for_tags
	Sort     SearchSort        // empty means date_desc
	Duration SearchDuration    // optional

	StartDate string
	EndDate   string

	IncludeTranslatedTagResults string
	MergePlainKeywordResults    string

	Page int
	Size int
}

// Search performs an illustration search.
func (g *Gateway) Search(ctx context.Context, o SearchOptions) (json.RawMessage, error) {
	if o.Target == "" {
		o.Target = SearchTargetPartialMatchForTags
	}

	if o.Sort == "" {
		o.Sort = SearchSortDateDesc
	}

	page, size := normalizePage(o.Page, o.Size, defaultPageSize)

	p := newParams().
		set("word", o.Word).
		set("search_target", string(o.Target)).
		set("sort", string(o.Sort)).
		set("include_translated_tag_results", orDefault(o.IncludeTranslatedTagResults, "true")).
		set("merge_plain_keyword_results", orDefault(o.MergePlainKeywordResults, "true")).
		setOptional("start_date", o.StartDate).
		setOptional("end_date", o.EndDate).
		setOptional("duration", string(o.Duration)).
		setOffset(page, size)

	return g.cached(ctx, "search", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/search/illust", p)
	})
}

// SearchNovel performs a novel search.
func (g *Gateway) SearchNovel(ctx context.Context, o NovelSearchOptions) (json.RawMessage, error) {
	if o.Target == "" {
		o.Target = NovelSearchTargetPartialMatchForTags
	}

	if o.Sort == "" {
		o.Sort = SearchSortDateDesc
	}

	page, size := normalizePage(o.Page, o.Size, defaultPageSize)

	p := newParams().
		set("word", o.Word).
		set("search_target", string(o.Target)).
		set("sort", string(o.Sort)).
		set("merge_plain_keyword_results", orDefault(o.MergePlainKeywordResults, "true")).
		set("include_translated_tag_results", orDefault(o.IncludeTranslatedTagResults, "true")).
		setOptional("start_date", o.StartDate).
		setOptional("end_date", o.EndDate).
		setOptional("duration", string(o.Duration)).
		setOffset(page, size)

	return g.cached(ctx, "search_novel", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/search/novel", p)
	})
}

// SearchUser searches users by name.
func (g *Gateway) SearchUser(ctx context.Context, word string, page, size int) (json.RawMessage, error) {
	page, size = normalizePage(page, size, defaultPageSize)

	p := newParams().set("word", word).setOffset(page, size)

	return g.cached(ctx, "search_user", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/search/user", p)
	})
}

// SearchAutocomplete fetches tag completions for a partial search word.
func (g *Gateway) SearchAutocomplete(ctx context.Context, word, mergePlainKeywordResults string) (json.RawMessage, error) {
	p := newParams().
		set("word", word).
		set("merge_plain_keyword_results", orDefault(mergePlainKeywordResults, "true"))

	return g.cached(ctx, "search_autocomplete", p, 12*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v2/search/autocomplete", p)
	})
}

// PopularPreview fetches the popular-works preview for an illustration search.
func (g *Gateway) PopularPreview(ctx context.Context, word, startDate, endDate string) (json.RawMessage, error) {
	p := popularPreviewParams(word, startDate, endDate)

	return g.cached(ctx, "popular_preview", p, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/search/popular-preview/illust", p)
	})
}

// PopularPreviewNovel fetches the popular-works preview for a novel search.
func (g *Gateway) PopularPreviewNovel(ctx context.Context, word, startDate, endDate string) (json.RawMessage, error) {
	p := popularPreviewParams(word, startDate, endDate)

	return g.cached(ctx, "popular_preview_novel", p, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/search/popular-preview/novel", p)
	})
}

// popularPreviewParams is the fixed parameter shape shared by both
// popular-preview operations.
func popularPreviewParams(word, startDate, endDate string) *params {
	return newParams().
		set("word", word).
		setOptional("start_date", startDate).
		setOptional("end_date", endDate).
		set("filter", "for_ios").
		set("include_translated_tag_results", "true").
		set("merge_plain_keyword_results", "true").
		set("search_target", string(SearchTargetPartialMatchForTags))
}
