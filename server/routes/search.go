// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/pixivgw/pixivgw/core"
)

func Search(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.Search(r.Context(), core.SearchOptions{
		Word:                        query(r, "word"),
		Target:                      core.SearchTarget(query(r, "search_target")),
		Sort:                        core.SearchSort(query(r, "sort")),
		Duration:                    core.SearchDuration(query(r, "duration")),
		StartDate:                   query(r, "start_date"),
		EndDate:                     query(r, "end_date"),
		IncludeTranslatedTagResults: query(r, "include_translated_tag_results"),
		MergePlainKeywordResults:    query(r, "merge_plain_keyword_results"),
		Page:                        queryInt(r, "page"),
		Size:                        queryInt(r, "size"),
	})
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func SearchNovel(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.SearchNovel(r.Context(), core.NovelSearchOptions{
		Word:                        query(r, "word"),
		Target:                      core.NovelSearchTarget(query(r, "search_target")),
		Sort:                        core.SearchSort(query(r, "sort")),
		Duration:                    core.SearchDuration(query(r, "duration")),
		StartDate:                   query(r, "start_date"),
		EndDate:                     query(r, "end_date"),
		IncludeTranslatedTagResults: query(r, "include_translated_tag_results"),
		MergePlainKeywordResults:    query(r, "merge_plain_keyword_results"),
		Page:                        queryInt(r, "page"),
		Size:                        queryInt(r, "size"),
	})
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func SearchUser(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.SearchUser(r.Context(), query(r, "word"), queryInt(r, "page"), queryInt(r, "size"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func SearchAutocomplete(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.SearchAutocomplete(r.Context(), query(r, "word"), query(r, "merge_plain_keyword_results"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func PopularPreview(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.PopularPreview(r.Context(), query(r, "word"), query(r, "start_date"), query(r, "end_date"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}

func PopularPreviewNovel(w http.ResponseWriter, r *http.Request) error {
	body, err := gateway.PopularPreviewNovel(r.Context(), query(r, "word"), query(r, "start_date"), query(r, "end_date"))
	if err != nil {
		return err
	}

	return writeJSON(w, body)
}
