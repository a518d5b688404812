// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"codeberg.org/pixivgw/pixivgw/core"
	"codeberg.org/pixivgw/pixivgw/core/requests"
	"codeberg.org/pixivgw/pixivgw/server/request_context"
)

// CatchError adapts an error-returning handler to http.HandlerFunc,
// translating returned errors into JSON error responses.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := request_context.FromRequest(r)

		err := handler(w, r)
		if err == nil {
			return
		}

		rc.RequestError = err
		rc.StatusCode = statusFor(err)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(rc.StatusCode)

		payload, marshalErr := json.Marshal(struct {
			Error string `json:"error"`
		}{Error: err.Error()})
		if marshalErr != nil {
			return
		}

		_, _ = w.Write(payload)
	}
}

// statusFor maps gateway errors to response status codes.
func statusFor(err error) int {
	if errors.Is(err, core.ErrNoRankingResults) {
		return http.StatusNotFound
	}

	var apiErr *requests.APIError
	if errors.As(err, &apiErr) {
		// Pass real upstream statuses through; everything else (connection
		// failures, timeouts) is a bad gateway.
		if apiErr.StatusCode >= http.StatusBadRequest {
			return apiErr.StatusCode
		}

		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
