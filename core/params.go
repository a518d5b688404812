// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// params accumulates query parameters for one upstream request.
//
// Values that resolve to absent are never added, so the encoded query string
// cannot contain a key whose value was null upstream.
type params struct {
	values url.Values
}

func newParams() *params {
	return &params{values: url.Values{}}
}

// set adds a parameter unconditionally.
func (p *params) set(key, value string) *params {
	p.values.Set(key, value)

	return p
}

// setInt adds an integer parameter unconditionally; zero is a meaningful
// value here (e.g. the first page's offset).
func (p *params) setInt(key string, value int) *params {
	p.values.Set(key, strconv.Itoa(value))

	return p
}

// setOptional adds a parameter only when the value is non-empty.
func (p *params) setOptional(key, value string) *params {
	if value != "" {
		p.values.Set(key, value)
	}

	return p
}

// setOptionalInt adds an integer parameter only when the value is non-zero.
// Upstream treats zero IDs and zero cursors as absent.
func (p *params) setOptionalInt(key string, value int) *params {
	if value != 0 {
		p.values.Set(key, strconv.Itoa(value))
	}

	return p
}

// setOffset applies the upstream pagination convention offset = (page-1)*size.
func (p *params) setOffset(page, size int) *params {
	return p.setInt("offset", (page-1)*size)
}

// encode returns the canonical (sorted) query string encoding.
func (p *params) encode() string {
	if p == nil {
		return ""
	}

	return p.values.Encode()
}

// normalizePage clamps page and size to their operation defaults.
func normalizePage(page, size, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}

	if size < 1 {
		size = defaultSize
	}

	return page, size
}

// buildURL joins a base host, a relative endpoint path, and the accumulated
// parameters into an absolute request URL.
func buildURL(host, endpoint string, p *params) string {
	u := host + "/" + strings.TrimPrefix(endpoint, "/")

	if query := p.encode(); query != "" {
		u += "?" + query
	}

	return u
}

// parseAcceptLanguage extracts a normalized language tag from an
// Accept-Language header value: the first comma-separated entry with any
// quality suffix stripped, canonicalized and lowercased.
func parseAcceptLanguage(acceptLanguage string) string {
	first, _, _ := strings.Cut(acceptLanguage, ",")
	code, _, _ := strings.Cut(first, ";")
	code = strings.TrimSpace(code)

	// Canonicalize well-formed tags; pass anything else through as-is.
	if tag, err := language.Parse(code); err == nil {
		code = tag.String()
	}

	return strings.ToLower(code)
}
