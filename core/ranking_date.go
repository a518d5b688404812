// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import "time"

// RankingDate is a day-precision calendar date for ranking queries.
//
// The wire format is always YYYY-MM-DD; any sub-day component of the source
// time is discarded at construction.
type RankingDate struct {
	year  int
	month time.Month
	day   int
}

// NewRankingDate builds a RankingDate from t, discarding everything below
// day precision.
func NewRankingDate(t time.Time) RankingDate {
	year, month, day := t.Date()

	return RankingDate{year: year, month: month, day: day}
}

// Yesterday returns the ranking date one day before the current date.
//
// Ranking boards for the current day are not published upstream, so this is
// the default date for ranking operations.
func Yesterday() RankingDate {
	return yesterdayFrom(time.Now())
}

func yesterdayFrom(now time.Time) RankingDate {
	return NewRankingDate(now.AddDate(0, 0, -1))
}

// IsZero reports whether d is the zero value (no date supplied).
func (d RankingDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// String formats the date as YYYY-MM-DD.
func (d RankingDate) String() string {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
