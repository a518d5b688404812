// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"context"
	"encoding/json"
	"time"
)

// FavoriteOptions are the parameters of the bookmark listing operations.
type FavoriteOptions struct {
	UserID int

	// Tag filters bookmarks by a bookmark tag. Optional.
	Tag string

	// MaxBookmarkID is the pagination cursor. Zero means absent: the first
	// page carries no cursor, so a zero value is never forwarded.
	MaxBookmarkID int
}

// Member fetches the detail document for one user.
func (g *Gateway) Member(ctx context.Context, id int) (json.RawMessage, error) {
	p := newParams().setInt("user_id", id)

	return g.cached(ctx, "member", p, 6*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/user/detail", p)
	})
}

// MemberIllust fetches a user's works of the given type.
func (g *Gateway) MemberIllust(ctx context.Context, id int, illustType IllustType, page, size int) (json.RawMessage, error) {
	if illustType == "" {
		illustType = IllustTypeIllust
	}

	page, size = normalizePage(page, size, defaultPageSize)

	p := newParams().
		setInt("user_id", id).
		set("type", string(illustType)).
		setOffset(page, size)

	return g.cached(ctx, "member_illust", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/user/illusts", p)
	})
}

// MemberNovel fetches a user's novels.
func (g *Gateway) MemberNovel(ctx context.Context, id, page, size int) (json.RawMessage, error) {
	page, size = normalizePage(page, size, defaultPageSize)

	p := newParams().setInt("user_id", id).setOffset(page, size)

	return g.cached(ctx, "member_novel", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/user/novels", p)
	})
}

// Favorite fetches a user's public illustration bookmarks.
func (g *Gateway) Favorite(ctx context.Context, o FavoriteOptions) (json.RawMessage, error) {
	p := newParams().
		setInt("user_id", o.UserID).
		setOptional("tag", o.Tag).
		set("restrict", "public").
		setOptionalInt("max_bookmark_id", o.MaxBookmarkID)

	return g.cached(ctx, "favorite", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/user/bookmarks/illust", p)
	})
}

// FavoriteNovel fetches a user's public novel bookmarks.
func (g *Gateway) FavoriteNovel(ctx context.Context, o FavoriteOptions) (json.RawMessage, error) {
	p := newParams().
		setInt("user_id", o.UserID).
		setOptional("tag", o.Tag).
		set("restrict", "public").
		setOptionalInt("max_bookmark_id", o.MaxBookmarkID)

	return g.cached(ctx, "favorite_novel", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/user/bookmarks/novel", p)
	})
}

// Following fetches the users a given user follows.
func (g *Gateway) Following(ctx context.Context, id, page, size int) (json.RawMessage, error) {
	page, size = normalizePage(page, size, defaultPageSize)

	p := newParams().setInt("user_id", id).setOffset(page, size)

	return g.cached(ctx, "following", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/user/following", p)
	})
}

// Follower fetches the users following a given user.
func (g *Gateway) Follower(ctx context.Context, id, page, size int) (json.RawMessage, error) {
	page, size = normalizePage(page, size, defaultPageSize)

	p := newParams().setInt("user_id", id).setOffset(page, size)

	return g.cached(ctx, "follower", p, time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/user/follower", p)
	})
}

// UserRecommended fetches the recommended users feed.
func (g *Gateway) UserRecommended(ctx context.Context, filter string) (json.RawMessage, error) {
	p := newParams().set("filter", orDefault(filter, "for_ios"))

	return g.cached(ctx, "user_recommended", p, 4*time.Hour, func(ctx context.Context) ([]byte, error) {
		return g.request(ctx, "v1/user/recommended", p)
	})
}
