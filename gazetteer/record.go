// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"math"
	"strconv"
	"strings"

	"github.com/KayWP/globalise-places-explorer/spatial"
)

// Label type tags as they appear in the source dataset. Other values pass
// through unfiltered but get no map color.
const (
	LabelTypePref = "PREF"
	LabelTypeAlt  = "ALT"
)

// PlaceRecord is one row of the gazetteer: a single observed spelling of a
// place name, tied to the canonical place through GlobID. Many records share
// a GlobID; they all carry the same PrefLabel.
//
// Latitude and Longitude keep the raw CSV text. The source data uses
// sentinels like "Not available" for unknown coordinates, so parsing is
// deferred to Location and never fails a load.
type PlaceRecord struct {
	GlobID    string `json:"glob_id"`
	Label     string `json:"label"`
	PrefLabel string `json:"pref_label"`
	LabelType string `json:"label_type"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Location parses the record's coordinates. It reports false when either
// value is missing, non-numeric, or non-finite, or when both are exactly
// zero (the dataset's null island sentinel). Such records stay searchable;
// they are only excluded from map output.
func (r *PlaceRecord) Location() (spatial.Point, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(r.Latitude), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return spatial.Point{}, false
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(r.Longitude), 64)
	if err != nil || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return spatial.Point{}, false
	}

	p := spatial.Point{Lat: lat, Lng: lng}
	if p.IsZero() {
		return spatial.Point{}, false
	}

	return p, true
}

// IsPreferred reports whether this record carries the canonical spelling.
func (r *PlaceRecord) IsPreferred() bool {
	return r.Label == r.PrefLabel
}
