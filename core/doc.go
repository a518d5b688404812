// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package core implements the pixiv app-API endpoint gateway.

Every exported operation on [Gateway] describes one upstream resource: it
assembles the query parameters the mobile app would send and delegates to a
single shared request primitive, returning the upstream JSON document
unmodified. The one exception is the novel webview, which extracts an embedded
JSON literal out of an HTML document.
*/
package core
