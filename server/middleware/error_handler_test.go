// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"codeberg.org/pixivgw/pixivgw/core"
	"codeberg.org/pixivgw/pixivgw/core/requests"
	"codeberg.org/pixivgw/pixivgw/server/request_context"
)

// createTestRequest creates a test HTTP request with request context.
func createTestRequest(t *testing.T) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/pixiv/illust?id=1", nil)

	return req.WithContext(request_context.WithRequestContext(req.Context(), req))
}

func TestCatchErrorSuccess(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, r *http.Request) error {
		_, _ = w.Write([]byte(`{"status": "success"}`))

		return nil
	})

	req := createTestRequest(t)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"status": "success"}`, rr.Body.String())
	assert.NoError(t, request_context.FromRequest(req).RequestError)
}

func TestCatchErrorWritesJSONError(t *testing.T) {
	t.Parallel()

	testError := errors.New("test handler error")
	handler := CatchError(func(w http.ResponseWriter, r *http.Request) error {
		return testError
	})

	req := createTestRequest(t)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "test handler error", gjson.Get(rr.Body.String(), "error").String())

	rc := request_context.FromRequest(req)
	assert.Equal(t, testError, rc.RequestError)
	assert.Equal(t, http.StatusInternalServerError, rc.StatusCode)
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "exhausted ranking",
			err:  fmt.Errorf("%w for mode day on 2024-03-01", core.ErrNoRankingResults),
			want: http.StatusNotFound,
		},
		{
			name: "upstream status passthrough",
			err:  &requests.APIError{StatusCode: http.StatusNotFound, Err: errors.New("not found")},
			want: http.StatusNotFound,
		},
		{
			name: "upstream rate limit passthrough",
			err:  &requests.APIError{StatusCode: http.StatusTooManyRequests, Err: errors.New("rate limited")},
			want: http.StatusTooManyRequests,
		},
		{
			name: "transport failure",
			err:  &requests.APIError{Err: errors.New("connection refused")},
			want: http.StatusBadGateway,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
