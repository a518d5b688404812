// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package cache provides TTL-based memoization of gateway operation results.

Entries are keyed by operation name plus canonical argument encoding and
stored zstd-compressed in a fixed-capacity LRU. Concurrent fetches for the
same key are collapsed into a single upstream call; waiting callers share the
in-flight result. Failed fetches are never stored.
*/
package cache

import (
	"container/list"
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ErrInvalidSize is returned by New for non-positive capacities.
var ErrInvalidSize = errors.New("must provide a positive size")

// Store is a fixed-capacity TTL memoization store, safe for concurrent use.
// Instances must be constructed with [New]; the zero value is not ready for
// use.
type Store struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	lock      sync.Mutex

	group singleflight.Group

	zstdEnc *zstd.Encoder
	zstdDec *zstd.Decoder

	now func() time.Time
}

// entry holds one compressed response body and its expiry.
type entry struct {
	key       string
	body      []byte // zstd-compressed
	expiresAt time.Time
}

// New creates a Store holding at most size entries.
func New(size int) (*Store, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	// A nil writer/reader lets us use EncodeAll/DecodeAll without streams.
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, err
	}

	return &Store{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
		zstdEnc:   enc,
		zstdDec:   dec,
		now:       time.Now,
	}, nil
}

// Do returns the memoized body for key when fresh; otherwise it executes
// fetch, stores a successful result for ttl, and returns it.
//
// At most one fetch per key is in flight at a time: concurrent callers for
// the same key wait for and share that fetch's result.
func (s *Store) Do(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fetch func(context.Context) ([]byte, error),
) ([]byte, error) {
	hashedKey := hashKey(key)

	if body, ok := s.get(hashedKey); ok {
		return body, nil
	}

	result, err, _ := s.group.Do(hashedKey, func() (any, error) {
		// A concurrent caller may have populated the entry while we waited
		// for the flight slot.
		if body, ok := s.get(hashedKey); ok {
			return body, nil
		}

		body, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		s.add(hashedKey, body, ttl)

		return body, nil
	})
	if err != nil {
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, errors.New("unexpected cache result type")
	}

	return body, nil
}

// get returns a decompressed fresh body, evicting stale entries it touches.
func (s *Store) get(hashedKey string) ([]byte, bool) {
	s.lock.Lock()

	element, ok := s.items[hashedKey]
	if !ok {
		s.lock.Unlock()

		return nil, false
	}

	ent, ok := element.Value.(*entry)
	if !ok || s.now().After(ent.expiresAt) {
		s.removeElement(element)
		s.lock.Unlock()

		return nil, false
	}

	s.evictList.MoveToFront(element)
	compressed := ent.body

	s.lock.Unlock()

	body, err := s.zstdDec.DecodeAll(compressed, nil)
	if err != nil {
		log.Warn().Err(err).Str("key", hashedKey).Msg("Failed to decompress cached body; removing")
		s.remove(hashedKey)

		return nil, false
	}

	return body, true
}

func (s *Store) add(hashedKey string, body []byte, ttl time.Duration) {
	compressed := s.zstdEnc.EncodeAll(body, nil)

	s.lock.Lock()
	defer s.lock.Unlock()

	if element, ok := s.items[hashedKey]; ok {
		s.evictList.MoveToFront(element)

		if ent, ok := element.Value.(*entry); ok {
			ent.body = compressed
			ent.expiresAt = s.now().Add(ttl)
		}

		return
	}

	s.items[hashedKey] = s.evictList.PushFront(&entry{
		key:       hashedKey,
		body:      compressed,
		expiresAt: s.now().Add(ttl),
	})

	if s.evictList.Len() > s.size {
		s.removeOldest()
	}
}

func (s *Store) remove(hashedKey string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if element, ok := s.items[hashedKey]; ok {
		s.removeElement(element)
	}
}

func (s *Store) removeOldest() {
	if element := s.evictList.Back(); element != nil {
		s.removeElement(element)
	}
}

func (s *Store) removeElement(element *list.Element) {
	s.evictList.Remove(element)

	if ent, ok := element.Value.(*entry); ok {
		delete(s.items, ent.key)
	}
}

// hashKey binds an entry to the full operation + argument encoding without
// storing the raw key.
func hashKey(key string) string {
	hasher := fnv.New32()

	_, _ = hasher.Write([]byte(key))

	return strconv.FormatUint(uint64(hasher.Sum32()), 16)
}
