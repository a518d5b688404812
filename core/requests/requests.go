// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package requests performs the outbound HTTP calls for the gateway and
translates every transport-level failure into a uniform *APIError.

It does not retry and does not inspect response payloads beyond extracting an
error message for non-2xx statuses.
*/
package requests

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"codeberg.org/pixivgw/pixivgw/core/idgen"
	"codeberg.org/pixivgw/pixivgw/server/request_context"
)

const (
	// clientSessionCacheSize defines the size of the TLS session cache.
	clientSessionCacheSize = 20

	// maxIdleConnsPerHost defines maximum idle connections to keep per host.
	maxIdleConnsPerHost = 20

	// bufferSize defines the read and write buffer size in bytes (32KB).
	bufferSize = 32 * 1024
)

// HTTPClient is the pre-configured http.Client shared by all outbound calls.
// Timeout policy lives here, not in the callers.
var HTTPClient = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{
			ClientSessionCache: tls.NewLRUClientSessionCache(clientSessionCacheSize),
			MinVersion:         tls.VersionTLS12,
		},
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        0,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		WriteBufferSize:     bufferSize,
		ReadBufferSize:      bufferSize,
	},
	Timeout: 30 * time.Second,
}

var (
	errRequestFailed    = errors.New("upstream request failed")
	errAPIResponseError = errors.New("API response indicated error")
)

// APIError represents a failed upstream call, either a transport failure or a
// non-2xx API response.
type APIError struct {
	// StatusCode is the HTTP status code from the response, or zero when the
	// request never produced one.
	StatusCode int

	// Message contains the error message from the API response, if any.
	Message string

	// Err is the underlying error cause.
	Err error
}

// Error returns a formatted error message including the status code and API
// message if available.
func (e *APIError) Error() string {
	var b strings.Builder

	b.WriteString(e.Err.Error())

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	if e.StatusCode != 0 {
		b.WriteString(fmt.Sprintf(" (status code: %d)", e.StatusCode))
	}

	return b.String()
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Get performs a GET request with the given headers and returns the raw
// response body.
//
// Any connection failure, timeout, or non-2xx status is returned as an
// *APIError; the body is returned verbatim otherwise.
func Get(ctx context.Context, url string, headers http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &APIError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	resp, body, err := send(ctx, req)
	if err != nil {
		return nil, &APIError{Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.StatusCode),
			Err:        errAPIResponseError,
		}
	}

	return body, nil
}

// send executes the HTTP request, reads the full body, and logs the exchange.
func send(ctx context.Context, req *http.Request) (*http.Response, []byte, error) {
	start := time.Now()
	requestID := request_context.FromContext(ctx).RequestID + "-" + idgen.Make()

	resp, err := HTTPClient.Do(req)
	if err != nil {
		log.Ctx(ctx).Warn().
			Str("request_id", requestID).
			Str("url", req.URL.String()).
			Err(err).
			Msg("Outbound request failed")

		return nil, nil, fmt.Errorf("%w: %w", errRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Ctx(ctx).Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Outbound request")

	return resp, body, nil
}

// errorMessage extracts a human-readable message from an app-API error body.
func errorMessage(body []byte, statusCode int) string {
	result := gjson.ParseBytes(body)

	message := result.Get("error.message").String()
	if message == "" {
		message = result.Get("error.user_message").String()
	}

	if message == "" {
		message = http.StatusText(statusCode)
	}

	if message == "" {
		message = "An unknown API error occurred"
	}

	return message
}
