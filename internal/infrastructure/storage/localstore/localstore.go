// Package localstore implements the domain repositories over a kv.Store.
// Each collection lives under one key as a single JSON array, read in
// full, mutated in memory and written back in full on every change —
// the same shape the original site gave browser local storage. Writers in
// different processes race last-writer-wins; accepted for single-user use.
package localstore

import (
	"errors"
	"sync"
	"time"
)

const (
	// Storage keys, kept verbatim from the site for data compatibility.
	UsersKey   = "resolucity_users_v1"
	SessionKey = "resolucity_session_v1"
	ReportsKey = "resolucity_reports_v1"
)

// ErrCorruptData marks stored bytes that no longer decode. Reads still
// come back as an empty collection so callers that do not care can keep
// the original default-to-empty behavior.
var ErrCorruptData = errors.New("corrupt stored data")

// idSource hands out creation-timestamp ids in milliseconds, clamped
// monotonic so two creates in the same millisecond never collide.
type idSource struct {
	mu   sync.Mutex
	last int64
}

func (s *idSource) next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
