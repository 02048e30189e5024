// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionIdle is how long a session survives without requests.
const DefaultSessionIdle = 30 * time.Minute

// Session ties a working store to one browser session. The store starts as a
// copy of the base dataset and grows with that session's uploads only.
type Session struct {
	ID    string
	Store *Store

	lastSeen time.Time
}

// SessionRegistry hands out per-session stores keyed by session ID and
// expires them after an idle period. There is no background sweeper; expired
// entries are reaped on the next acquire.
type SessionRegistry struct {
	mu       sync.Mutex
	base     []PlaceRecord
	idle     time.Duration
	now      func() time.Time
	sessions map[string]*Session
}

// NewSessionRegistry creates a registry whose sessions start from the base
// dataset. Non-positive idle falls back to DefaultSessionIdle.
func NewSessionRegistry(base []PlaceRecord, idle time.Duration) *SessionRegistry {
	if idle <= 0 {
		idle = DefaultSessionIdle
	}

	return &SessionRegistry{
		base:     base,
		idle:     idle,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Acquire returns the session for id, refreshing its idle deadline. An
// empty, unknown, or expired id yields a fresh session with a new ID; the
// second return reports whether one was created.
func (r *SessionRegistry) Acquire(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.reap(now)

	if sess, ok := r.sessions[id]; ok {
		sess.lastSeen = now

		return sess, false
	}

	sess := &Session{
		ID:       uuid.NewString(),
		Store:    NewStore(r.base),
		lastSeen: now,
	}
	r.sessions[sess.ID] = sess

	return sess, true
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *SessionRegistry) reap(now time.Time) {
	for id, sess := range r.sessions {
		if now.Sub(sess.lastSeen) > r.idle {
			delete(r.sessions, id)
		}
	}
}
