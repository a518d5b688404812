// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package request_context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWithRequestContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/pixiv/illust?id=1", nil)
	req.Header.Set("Accept-Language", "ja,en;q=0.8")

	ctx := WithRequestContext(req.Context(), req)
	rc := FromContext(ctx)

	if rc.RequestID == "" {
		t.Error("expected a generated request ID")
	}

	if rc.AcceptLanguage != "ja,en;q=0.8" {
		t.Errorf("AcceptLanguage = %q, want %q", rc.AcceptLanguage, "ja,en;q=0.8")
	}

	if rc.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", rc.StatusCode, http.StatusOK)
	}
}

func TestFromContextWithoutValue(t *testing.T) {
	t.Parallel()

	rc := FromContext(context.Background())

	if rc == nil {
		t.Fatal("FromContext must always return a valid pointer")
	}

	if rc.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", rc.StatusCode, http.StatusOK)
	}
}
