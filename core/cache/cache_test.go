// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := New(0)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(-1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestDoMemoizesFreshEntries(t *testing.T) {
	t.Parallel()

	store, err := New(8)
	require.NoError(t, err)

	fetches := 0
	fetch := func(context.Context) ([]byte, error) {
		fetches++

		return []byte(`{"value": 1}`), nil
	}

	first, err := store.Do(context.Background(), "illust?illust_id=1", time.Hour, fetch)
	require.NoError(t, err)

	second, err := store.Do(context.Background(), "illust?illust_id=1", time.Hour, fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)
}

func TestDoDistinguishesKeys(t *testing.T) {
	t.Parallel()

	store, err := New(8)
	require.NoError(t, err)

	got1, err := store.Do(context.Background(), "illust?illust_id=1", time.Hour, func(context.Context) ([]byte, error) {
		return []byte("one"), nil
	})
	require.NoError(t, err)

	got2, err := store.Do(context.Background(), "illust?illust_id=2", time.Hour, func(context.Context) ([]byte, error) {
		return []byte("two"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "one", string(got1))
	assert.Equal(t, "two", string(got2))
}

func TestDoExpiresEntries(t *testing.T) {
	t.Parallel()

	store, err := New(8)
	require.NoError(t, err)

	current := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	fetches := 0
	fetch := func(context.Context) ([]byte, error) {
		fetches++

		return []byte("body"), nil
	}

	_, err = store.Do(context.Background(), "key", time.Minute, fetch)
	require.NoError(t, err)

	// Still fresh just before the deadline.
	current = current.Add(59 * time.Second)

	_, err = store.Do(context.Background(), "key", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)

	// Stale once the TTL has elapsed.
	current = current.Add(2 * time.Second)

	_, err = store.Do(context.Background(), "key", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestDoDoesNotStoreFailures(t *testing.T) {
	t.Parallel()

	store, err := New(8)
	require.NoError(t, err)

	errFetch := errors.New("upstream down")
	fetches := 0

	_, err = store.Do(context.Background(), "key", time.Hour, func(context.Context) ([]byte, error) {
		fetches++

		return nil, errFetch
	})
	require.ErrorIs(t, err, errFetch)

	got, err := store.Do(context.Background(), "key", time.Hour, func(context.Context) ([]byte, error) {
		fetches++

		return []byte("recovered"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, fetches)
	assert.Equal(t, "recovered", string(got))
}

func TestDoCollapsesConcurrentFetches(t *testing.T) {
	t.Parallel()

	store, err := New(8)
	require.NoError(t, err)

	var fetches atomic.Int32

	release := make(chan struct{})
	fetch := func(context.Context) ([]byte, error) {
		fetches.Add(1)
		<-release

		return []byte("shared"), nil
	}

	const callers = 8

	var wg sync.WaitGroup

	results := make([][]byte, callers)

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			body, err := store.Do(context.Background(), "key", time.Hour, fetch)
			assert.NoError(t, err)

			results[i] = body
		}()
	}

	// Give the callers time to pile onto the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), fetches.Load())

	for _, body := range results {
		assert.Equal(t, "shared", string(body))
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	store, err := New(2)
	require.NoError(t, err)

	fetches := map[string]int{}
	fetch := func(key string) func(context.Context) ([]byte, error) {
		return func(context.Context) ([]byte, error) {
			fetches[key]++

			return []byte(key), nil
		}
	}

	ctx := context.Background()

	_, _ = store.Do(ctx, "a", time.Hour, fetch("a"))
	_, _ = store.Do(ctx, "b", time.Hour, fetch("b"))

	// Touch "a" so "b" becomes the eviction candidate.
	_, _ = store.Do(ctx, "a", time.Hour, fetch("a"))
	_, _ = store.Do(ctx, "c", time.Hour, fetch("c"))

	_, _ = store.Do(ctx, "a", time.Hour, fetch("a"))
	_, _ = store.Do(ctx, "b", time.Hour, fetch("b"))

	assert.Equal(t, 1, fetches["a"])
	assert.Equal(t, 2, fetches["b"])
	assert.Equal(t, 1, fetches["c"])
}
