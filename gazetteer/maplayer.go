// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"fmt"
	"slices"
	"sort"

	"github.com/KayWP/globalise-places-explorer/spatial"
	"github.com/uber/h3-go/v4"
)

// RGBA marker colors for the map legend. Label types outside the known two
// get no color assigned.
var (
	colorPref = [4]uint8{255, 0, 0, 160}
	colorAlt  = [4]uint8{0, 0, 255, 160}
)

// ColorFor returns the marker color for a label type.
func ColorFor(labelType string) ([4]uint8, bool) {
	switch labelType {
	case LabelTypePref:
		return colorPref, true
	case LabelTypeAlt:
		return colorAlt, true
	default:
		return [4]uint8{}, false
	}
}

// TooltipTemplate is the hover template the map renderer interpolates with
// each point's fields.
const TooltipTemplate = `<b>ID:</b> {glob_id}<br/>` +
	`<b>Label:</b> {label}<br/>` +
	`<b>Preferred:</b> {pref_label}<br/>` +
	`<b>Type:</b> {label_type}<br/>` +
	`<b>Coordinates:</b> {latitude}, {longitude}`

// MapPoint is one renderable marker: a record with a usable location.
type MapPoint struct {
	PlaceRecord
	Point spatial.Point `json:"point"`
	Color *[4]uint8     `json:"color,omitempty"`
}

// MapFilter narrows the rendered rows. Empty slices mean "no restriction",
// matching the multi-select controls with nothing selected.
type MapFilter struct {
	LabelTypes []string
	GlobIDs    []string
}

func (f *MapFilter) match(r *PlaceRecord) bool {
	if len(f.LabelTypes) > 0 && !slices.Contains(f.LabelTypes, r.LabelType) {
		return false
	}

	if len(f.GlobIDs) > 0 && !slices.Contains(f.GlobIDs, r.GlobID) {
		return false
	}

	return true
}

// MapLayer is the map renderer's input: the usable-location points that
// survive the filter, the initial view, and the tooltip template.
type MapLayer struct {
	Points  []MapPoint    `json:"points"`
	Center  spatial.Point `json:"center"`
	Zoom    int           `json:"zoom"`
	Tooltip string        `json:"tooltip"`
}

// BuildMapLayer selects the filtered rows with usable locations and centers
// the view on their mean coordinate. Rows with invalid coordinates are
// silently excluded; they remain searchable in the store.
func BuildMapLayer(records []PlaceRecord, filter MapFilter) MapLayer {
	layer := MapLayer{Zoom: 2, Tooltip: TooltipTemplate}

	var sumLat, sumLng float64

	for i := range records {
		rec := records[i]
		if !filter.match(&rec) {
			continue
		}

		point, ok := rec.Location()
		if !ok {
			continue
		}

		mp := MapPoint{PlaceRecord: rec, Point: point}
		if color, ok := ColorFor(rec.LabelType); ok {
			mp.Color = &color
		}

		layer.Points = append(layer.Points, mp)
		sumLat += point.Lat
		sumLng += point.Lng
	}

	if n := len(layer.Points); n > 0 {
		layer.Center = spatial.Point{
			Lat: sumLat / float64(n),
			Lng: sumLng / float64(n),
		}
	}

	return layer
}

// DefaultClusterResolution is the H3 resolution used when the caller does
// not pick one. Resolution 3 cells average roughly 100 km across, a sensible
// default for a world-spanning gazetteer at low zoom.
const DefaultClusterResolution = 3

// MapCluster groups nearby points into one H3 cell for low-zoom rendering.
type MapCluster struct {
	Cell   string         `json:"cell"`
	Center spatial.Point  `json:"center"`
	Count  int            `json:"count"`
	Points []ClusterPoint `json:"points"`
}

// ClusterPoint is a cluster member annotated with its distance from the
// cluster centroid, in meters.
type ClusterPoint struct {
	MapPoint
	DistanceFromCenter float64 `json:"distance_from_center"`
}

// ClusterPoints buckets map points into H3 cells at the given resolution
// and returns the clusters ordered by descending size. The centroid is the
// mean member coordinate.
func ClusterPoints(points []MapPoint, res int) ([]MapCluster, error) {
	if res < 0 || res > h3.MaxResolution {
		return nil, fmt.Errorf("h3 resolution out of range [0,%d]: %d", h3.MaxResolution, res)
	}

	index := make(map[h3.Cell]int)

	var clusters []MapCluster

	for _, p := range points {
		cell, err := h3.LatLngToCell(h3.NewLatLng(p.Point.Lat, p.Point.Lng), res)
		if err != nil {
			return nil, fmt.Errorf("converting %s to h3 cell at res %d: %w", p.Point.String(), res, err)
		}

		i, ok := index[cell]
		if !ok {
			i = len(clusters)
			index[cell] = i

			clusters = append(clusters, MapCluster{Cell: cell.String()})
		}

		clusters[i].Points = append(clusters[i].Points, ClusterPoint{MapPoint: p})
		clusters[i].Count++
	}

	for i := range clusters {
		var sumLat, sumLng float64

		for _, member := range clusters[i].Points {
			sumLat += member.Point.Lat
			sumLng += member.Point.Lng
		}

		n := float64(len(clusters[i].Points))
		clusters[i].Center = spatial.Point{Lat: sumLat / n, Lng: sumLng / n}

		for j := range clusters[i].Points {
			clusters[i].Points[j].DistanceFromCenter =
				clusters[i].Center.HaversineDistance(&clusters[i].Points[j].Point)
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Count > clusters[j].Count
	})

	return clusters, nil
}
