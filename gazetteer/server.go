// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KayWP/globalise-places-explorer/spatial"
)

const sessionCookie = "session_id"

// Server exposes the gazetteer as a JSON API. Each browser session gets its
// own store seeded with the base dataset, so uploads never leak between
// users of the same process.
type Server struct {
	sessions *SessionRegistry
	linkBase string
	addr     string
}

// NewServer creates a server over the base dataset.
func NewServer(base []PlaceRecord, addr, linkBase string) *Server {
	if linkBase == "" {
		linkBase = DefaultLinkBase
	}

	return &Server{
		sessions: NewSessionRegistry(base, DefaultSessionIdle),
		linkBase: linkBase,
		addr:     addr,
	}
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	r := gin.Default()
	s.RegisterRoutes(r)

	log.Printf("Serving gazetteer API on %s", s.addr)

	return r.Run(s.addr)
}

// RegisterRoutes attaches the API handlers to a router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/uploads", s.uploadData)
	r.GET("/api/search", s.searchPlaces)
	r.GET("/api/map/points", s.mapPoints)
	r.GET("/api/map/clusters", s.mapClusters)
	r.GET("/api/stats", s.datasetStats)
}

// session resolves the request's session, creating one (and setting the
// cookie) when none exists.
func (s *Server) session(ctx *gin.Context) *Session {
	id, _ := ctx.Cookie(sessionCookie)

	sess, created := s.sessions.Acquire(id)
	if created {
		ctx.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
	}

	return sess
}

func (s *Server) uploadData(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a CSV file upload is required"})

		return
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "only .csv uploads are accepted"})

		return
	}

	f, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		if IsDataFormatError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	sess := s.session(ctx)
	result := sess.Store.Merge(records, Fingerprint(file.Filename, file.Size))

	if result.Duplicate {
		log.Printf("Upload %q already merged in session %s; %d records total", file.Filename, sess.ID, result.Total)
	}

	ctx.JSON(http.StatusOK, result)
}

// PlaceResult is one search result group: a canonical place with the variant
// spellings that matched the query.
type PlaceResult struct {
	GlobID    string         `json:"glob_id"`
	PrefLabel string         `json:"pref_label"`
	Score     float64        `json:"score"`
	Variants  []string       `json:"variants"`
	Location  *spatial.Point `json:"location,omitempty"`
	Link      string         `json:"link"`
	Matches   []ScoredMatch  `json:"matches"`
}

func (s *Server) searchPlaces(ctx *gin.Context) {
	query := ctx.Query("q")

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		var err error

		limit, err = strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})

			return
		}
	}

	fold := false
	if raw := ctx.Query("fold"); raw != "" {
		var err error

		fold, err = strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid fold parameter"})

			return
		}
	}

	sess := s.session(ctx)
	matches := Search(sess.Store.Snapshot(), query, SearchOptions{
		TopN: ClampTopN(limit),
		Fold: fold,
	})

	groups := GroupByPlace(matches)
	results := make([]PlaceResult, 0, len(groups))

	for i := range groups {
		best := groups[i].Best()
		variants := groups[i].Variants()

		result := PlaceResult{
			GlobID:    groups[i].GlobID,
			PrefLabel: best.PrefLabel,
			Score:     best.Score,
			Variants:  variants,
			Link:      FullTextLink(s.linkBase, variants),
			Matches:   groups[i].Matches,
		}

		if point, ok := best.Location(); ok {
			result.Location = &point
		}

		results = append(results, result)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"query":   query,
		"total":   len(matches),
		"results": results,
	})
}

func mapFilterFromQuery(ctx *gin.Context) MapFilter {
	var filter MapFilter

	if raw := ctx.Query("types"); raw != "" {
		filter.LabelTypes = strings.Split(raw, ",")
	}

	if raw := ctx.Query("ids"); raw != "" {
		filter.GlobIDs = strings.Split(raw, ",")
	}

	return filter
}

func (s *Server) mapPoints(ctx *gin.Context) {
	sess := s.session(ctx)
	layer := BuildMapLayer(sess.Store.Snapshot(), mapFilterFromQuery(ctx))

	ctx.JSON(http.StatusOK, layer)
}

func (s *Server) mapClusters(ctx *gin.Context) {
	res := DefaultClusterResolution

	if raw := ctx.Query("res"); raw != "" {
		var err error

		res, err = strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid res parameter"})

			return
		}
	}

	sess := s.session(ctx)
	layer := BuildMapLayer(sess.Store.Snapshot(), mapFilterFromQuery(ctx))

	clusters, err := ClusterPoints(layer.Points, res)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("clustering failed: %v", err)})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"resolution": res,
		"clusters":   clusters,
	})
}

func (s *Server) datasetStats(ctx *gin.Context) {
	sess := s.session(ctx)

	ctx.JSON(http.StatusOK, ComputeStats(sess.Store.Snapshot()))
}
