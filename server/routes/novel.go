// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/pixivgw/pixivgw/core"
)

func NovelDetail(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.NovelDetail(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func NovelSeries(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.NovelSeries(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func NovelNew(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.NovelNew(r.Context(), queryInt(r, "max_novel_id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func NovelRecommended(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.NovelRecommended(r.Context(), query(r, "filter"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func RankNovel(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.RankNovel(r.Context(), core.RankNovelOptions{
		Mode: query(r, "mode"),
		Date: queryDate(r, "date"),
		Page: queryInt(r, "page"),
		Size: queryInt(r, "size"),
	})
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func MemberNovel(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.MemberNovel(r.Context(), queryInt(r, "id"), queryInt(r, "page"), queryInt(r, "size"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func FavoriteNovel(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.FavoriteNovel(r.Context(), core.FavoriteOptions{
		UserID:        queryInt(r, "id"),
		Tag:           query(r, "tag"),
		MaxBookmarkID: queryInt(r, "max_bookmark_id"),
	})
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func TagsNovel(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.TagsNovel(r.Context())
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func NovelComments(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.NovelComments(
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

func NovelCommentReplies(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.NovelCommentReplies(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

// WebviewNovel serves the extracted webview novel document, or the raw HTML
// when raw=true.
func WebviewNovel(w http.ResponseWriter, r *http.Request) error {
	if query(r, "raw") == "true" {
		text, err := gateway.WebviewNovelRaw(r.Context(), queryInt(r, "id"))
		if err != nil {
			return err
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, err = w.Write([]byte(text))

		return err
	}

	body, err := gateway.WebviewNovel(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func NovelText(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.NovelText(r.Context(), queryInt(r, "id"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}
