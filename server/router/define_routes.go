// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/pixivgw/pixivgw/server/middleware"
	"codeberg.org/pixivgw/pixivgw/server/routes"
)

// DefineRoutes registers every public API route on the router.
func (router *Router) DefineRoutes() {
	// Illustration routes
	router.HandleFunc("GET /api/pixiv/illust", middleware.CatchError(routes.Illust))
	router.HandleFunc("GET /api/pixiv/illust_recommended", middleware.CatchError(routes.IllustRecommended))
	router.HandleFunc("GET /api/pixiv/manga_recommended", middleware.CatchError(routes.MangaRecommended))
	router.HandleFunc("GET /api/pixiv/illust_new", middleware.CatchError(routes.IllustNew))
	router.HandleFunc("GET /api/pixiv/spotlights", middleware.CatchError(routes.Spotlights))
	router.HandleFunc("GET /api/pixiv/rank", middleware.CatchError(routes.Rank))
	router.HandleFunc("GET /api/pixiv/related", middleware.CatchError(routes.Related))
	router.HandleFunc("GET /api/pixiv/ugoira_metadata", middleware.CatchError(routes.UgoiraMetadata))
	router.HandleFunc("GET /api/pixiv/walkthrough_illusts", middleware.CatchError(routes.WalkthroughIllusts))
	router.HandleFunc("GET /api/pixiv/tags", middleware.CatchError(routes.Tags))
	router.HandleFunc("GET /api/pixiv/illust_comments", middleware.CatchError(routes.IllustComments))
	router.HandleFunc("GET /api/pixiv/illust_comment_replies", middleware.CatchError(routes.IllustCommentReplies))

	// User routes
	router.HandleFunc("GET /api/pixiv/member", middleware.CatchError(routes.Member))
	router.HandleFunc("GET /api/pixiv/member_illust", middleware.CatchError(routes.MemberIllust))
	router.HandleFunc("GET /api/pixiv/member_novel", middleware.CatchError(routes.MemberNovel))
	router.HandleFunc("GET /api/pixiv/favorite", middleware.CatchError(routes.Favorite))
	router.HandleFunc("GET /api/pixiv/favorite_novel", middleware.CatchError(routes.FavoriteNovel))
	router.HandleFunc("GET /api/pixiv/following", middleware.CatchError(routes.Following))
	router.HandleFunc("GET /api/pixiv/follower", middleware.CatchError(routes.Follower))
	router.HandleFunc("GET /api/pixiv/user_recommended", middleware.CatchError(routes.UserRecommended))

	// Search routes
	router.HandleFunc("GET /api/pixiv/search", middleware.CatchError(routes.Search))
	router.HandleFunc("GET /api/pixiv/search_novel", middleware.CatchError(routes.SearchNovel))
	router.HandleFunc("GET /api/pixiv/search_user", middleware.CatchError(routes.SearchUser))
	router.HandleFunc("GET /api/pixiv/search_autocomplete", middleware.CatchError(routes.SearchAutocomplete))
	router.HandleFunc("GET /api/pixiv/popular_preview", middleware.CatchError(routes.PopularPreview))
	router.HandleFunc("GET /api/pixiv/popular_preview_novel", middleware.CatchError(routes.PopularPreviewNovel))

	// Novel routes
	router.HandleFunc("GET /api/pixiv/novel_detail", middleware.CatchError(routes.NovelDetail))
	router.HandleFunc("GET /api/pixiv/novel_series", middleware.CatchError(routes.NovelSeries))
	router.HandleFunc("GET /api/pixiv/novel_new", middleware.CatchError(routes.NovelNew))
	router.HandleFunc("GET /api/pixiv/novel_recommended", middleware.CatchError(routes.NovelRecommended))
	router.HandleFunc("GET /api/pixiv/rank_novel", middleware.CatchError(routes.RankNovel))
	router.HandleFunc("GET /api/pixiv/tags_novel", middleware.CatchError(routes.TagsNovel))
	router.HandleFunc("GET /api/pixiv/novel_comments", middleware.CatchError(routes.NovelComments))
	router.HandleFunc("GET /api/pixiv/novel_comment_replies", middleware.CatchError(routes.NovelCommentReplies))
	router.HandleFunc("GET /api/pixiv/webview_novel", middleware.CatchError(routes.WebviewNovel))
	router.HandleFunc("GET /api/pixiv/novel_text", middleware.CatchError(routes.NovelText))

	// Live routes
	router.HandleFunc("GET /api/pixiv/live_detail", middleware.CatchError(routes.LiveDetail))
}
