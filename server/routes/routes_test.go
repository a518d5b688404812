// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/pixivgw/pixivgw/core"
)

func TestQueryInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"present", "/api/pixiv/illust?id=84639913", 84639913},
		{"absent", "/api/pixiv/illust", 0},
		{"malformed", "/api/pixiv/illust?id=abc", 0},
		{"negative", "/api/pixiv/illust?id=-5", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if got := queryInt(r, "id"); got != tt.want {
				t.Errorf("queryInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQueryDate(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/pixiv/rank?date=2024-03-01", nil)
	if got := queryDate(r, "date").String(); got != "2024-03-01" {
		t.Errorf("queryDate() = %q, want %q", got, "2024-03-01")
	}

	r = httptest.NewRequest(http.MethodGet, "/api/pixiv/rank", nil)
	if !queryDate(r, "date").IsZero() {
		t.Error("absent date should be zero")
	}

	r = httptest.NewRequest(http.MethodGet, "/api/pixiv/rank?date=03/01/2024", nil)
	if !queryDate(r, "date").IsZero() {
		t.Error("malformed date should be zero")
	}
}

func TestQueryDateZeroMeansDefault(t *testing.T) {
	t.Parallel()

	// The zero RankingDate tells ranking operations to use yesterday.
	if !(core.RankingDate{}).IsZero() {
		t.Fatal("zero RankingDate must report IsZero")
	}
}
