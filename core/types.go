// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

// IllustType selects the kind of works returned by user work listings.
type IllustType string

const (
	IllustTypeIllust IllustType = "illust"
	IllustTypeManga  IllustType = "manga"
)

// RankingMode selects an illustration ranking board.
type RankingMode string

const (
	RankingModeDay          RankingMode = "day"
	RankingModeWeek         RankingMode = "week"
	RankingModeMonth        RankingMode = "month"
	RankingModeDayMale      RankingMode = "day_male"
	RankingModeDayFemale    RankingMode = "day_female"
	RankingModeWeekOriginal RankingMode = "week_original"
	RankingModeWeekRookie   RankingMode = "week_rookie"
	RankingModeDayAI        RankingMode = "day_ai"
	RankingModeDayR18       RankingMode = "day_r18"
	RankingModeDayMaleR18   RankingMode = "day_male_r18"
	RankingModeDayFemaleR18 RankingMode = "day_female_r18"
	RankingModeWeekR18      RankingMode = "week_r18"
	RankingModeWeekR18G     RankingMode = "week_r18g"
	RankingModeDayR18AI     RankingMode = "day_r18_ai"
	RankingModeDayManga     RankingMode = "day_manga"
)

// SearchTarget is the match mode for illustration searches.
type SearchTarget string

const (
	SearchTargetPartialMatchForTags SearchTarget = "partial_match_for_tags"
	SearchTargetExactMatchForTags   SearchTarget = "exact_match_for_tags"
	SearchTargetTitleAndCaption     SearchTarget = "title_and_caption"
)

// NovelSearchTarget is the match mode for novel searches.
type NovelSearchTarget string

const (
	NovelSearchTargetPartialMatchForTags NovelSearchTarget = "partial_match_for_tags"
	NovelSearchTargetExactMatchForTags   NovelSearchTarget = "exact_match_for_tags"
	NovelSearchTargetText                NovelSearchTarget = "text"
	NovelSearchTargetKeywords            NovelSearchTarget = "keywords"
)

// SearchSort orders search results.
//
// SearchSortPopularDesc requires a premium upstream account.
type SearchSort string

const (
	SearchSortDateDesc    SearchSort = "date_desc"
	SearchSortDateAsc     SearchSort = "date_asc"
	SearchSortPopularDesc SearchSort = "popular_desc"
)

// SearchDuration restricts search results to a recent window.
type SearchDuration string

const (
	SearchDurationWithinLastDay   SearchDuration = "within_last_day"
	SearchDurationWithinLastWeek  SearchDuration = "within_last_week"
	SearchDurationWithinLastMonth SearchDuration = "within_last_month"
)
