// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	amsterdam := Point{Lat: 52.3676, Lng: 4.9041}
	batavia := Point{Lat: -6.1754, Lng: 106.8272}

	// Amsterdam to Jakarta is roughly 11,350 km.
	d := amsterdam.HaversineDistance(&batavia)
	assert.InDelta(t, 11_350_000, d, 100_000)

	// Distance to self is zero.
	assert.Zero(t, amsterdam.HaversineDistance(&amsterdam))

	// Symmetric.
	assert.InDelta(t, d, batavia.HaversineDistance(&amsterdam), 1e-6)
}

func TestPointIsZero(t *testing.T) {
	assert.True(t, Point{}.IsZero())
	assert.False(t, Point{Lat: 31.1289, Lng: 53.2824}.IsZero())
	assert.False(t, Point{Lat: 0, Lng: 53.2824}.IsZero())
}
