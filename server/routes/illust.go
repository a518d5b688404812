// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/pixivgw/pixivgw/core"
)

func Illust(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Illust(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func Member(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Member(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func MemberIllust(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.MemberIllust(
		r.Context(),
		queryInt(r, "id"),
		core.IllustType(query(r, "illust_type")),
		queryInt(r, "page"),
		queryInt(r, "size"),
	)
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func Favorite(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Favorite(r.Context(), core.FavoriteOptions{
		UserID:        queryInt(r, "id"),
		Tag:           query(r, "tag"),
		MaxBookmarkID: queryInt(r, "max_bookmark_id"),
	})
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func Following(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Following(r.Context(), queryInt(r, "id"), queryInt(r, "page"), queryInt(r, "size"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func Follower(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Follower(r.Context(), queryInt(r, "id"), queryInt(r, "page"), queryInt(r, "size"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func Rank(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Rank(r.Context(), core.RankOptions{
		Mode: core.RankingMode(query(r, "mode")),
		Date: queryDate(r, "date"),
		Page: queryInt(r, "page"),
		Size: queryInt(r, "size"),
	})
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func IllustRecommended(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.IllustRecommended(r.Context(), core.RecommendedOptions{
		Filter:              query(r, "filter"),
		IncludeRankingLabel: query(r, "include_ranking_label"),
		ParamsOverride:      query(r, "params"),
	})
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func MangaRecommended(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.MangaRecommended(r.Context(), query(r, "filter"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func UserRecommended(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.UserRecommended(r.Context(), query(r, "filter"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func IllustNew(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.IllustNew(r.Context(), core.IllustType(query(r, "content_type")), query(r, "filter"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func Spotlights(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Spotlights(
		r.Context(),
		query(r, "category"),
		query(r, "filter"),
		queryInt(r, "page"),
		queryInt(r, "size"),
	)
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func Related(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Related(r.Context(), queryInt(r, "id"), queryInt(r, "page"), queryInt(r, "size"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func UgoiraMetadata(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.UgoiraMetadata(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func WalkthroughIllusts(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.WalkthroughIllusts(r.Context())
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func Tags(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Tags(r.Context())
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func IllustComments(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.IllustComments(
		r.Context(),
		queryInt(r, "id"),
		queryInt(r, "offset"),
		query(r, "include_total_comments"),
	)
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func IllustCommentReplies(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.IllustCommentReplies(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func LiveDetail(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.LiveDetail(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}
