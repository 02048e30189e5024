// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistryAcquire(t *testing.T) {
	registry := NewSessionRegistry(abarkuhRecords(), time.Minute)

	sess, created := registry.Acquire("")
	require.True(t, created)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 2, sess.Store.Len())

	again, created := registry.Acquire(sess.ID)
	assert.False(t, created)
	assert.Same(t, sess, again)
	assert.Equal(t, 1, registry.Len())
}

func TestSessionRegistryUnknownID(t *testing.T) {
	registry := NewSessionRegistry(nil, time.Minute)

	sess, created := registry.Acquire("no-such-session")
	require.True(t, created)
	assert.NotEqual(t, "no-such-session", sess.ID)
}

func TestSessionRegistryIsolation(t *testing.T) {
	registry := NewSessionRegistry(abarkuhRecords(), time.Minute)

	a, _ := registry.Acquire("")
	b, _ := registry.Acquire("")
	require.NotEqual(t, a.ID, b.ID)

	a.Store.Merge([]PlaceRecord{{GlobID: "GLOB_1", Label: "Abubu"}}, "k")

	// One session's upload never shows up in another.
	assert.Equal(t, 3, a.Store.Len())
	assert.Equal(t, 2, b.Store.Len())
}

func TestSessionRegistryExpiry(t *testing.T) {
	registry := NewSessionRegistry(nil, time.Minute)

	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return current }

	sess, _ := registry.Acquire("")

	// Still alive inside the idle window.
	current = current.Add(59 * time.Second)
	same, created := registry.Acquire(sess.ID)
	require.False(t, created)
	assert.Same(t, sess, same)

	// The refresh above reset the deadline; idle past it and the session
	// is reaped on the next acquire.
	current = current.Add(2 * time.Minute)
	fresh, created := registry.Acquire(sess.ID)
	assert.True(t, created)
	assert.NotEqual(t, sess.ID, fresh.ID)
	assert.Equal(t, 1, registry.Len())
}

func TestSessionRegistryDefaultIdle(t *testing.T) {
	registry := NewSessionRegistry(nil, 0)

	assert.Equal(t, DefaultSessionIdle, registry.idle)
}
