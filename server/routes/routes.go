// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package routes maps public query parameters onto gateway operations.
//
// Every route is a thin adapter: parse query parameters, invoke the matching
// operation, and write the returned JSON document verbatim.
package routes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"codeberg.org/pixivgw/pixivgw/core"
)

var gateway *core.Gateway

// Setup injects the Gateway used by all routes.
func Setup(gw *core.Gateway) {
	gateway = gw
}

// writeJSON writes an upstream JSON document as the response body.
func writeJSON(w http.ResponseWriter, body json.RawMessage) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	_, err := w.Write(body)

	return err
}

// queryInt parses an integer query parameter, returning zero when absent or
// malformed. Operations treat zero as "use the default".
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}

	return value
}

// queryDate parses a YYYY-MM-DD query parameter; the zero RankingDate means
// absent.
func queryDate(r *http.Request, name string) core.RankingDate {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return core.RankingDate{}
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return core.RankingDate{}
	}

	return core.NewRankingDate(t)
}

func query(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}
