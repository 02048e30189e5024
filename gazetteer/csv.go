// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Column names the loader requires after header cleaning. Latitude and
// Longitude are optional: rows without them simply have no usable location.
var requiredColumns = []string{"glob_id", "label", "pref_label", "label_type"}

// Optional coordinate columns as spelled in the source dataset.
const (
	columnLatitude  = "Latitude"
	columnLongitude = "Longitude"
)

// CleanHeader trims whitespace from column names and drops placeholder
// columns ("Unnamed: 3" and friends, produced by spreadsheet exports).
// The returned slice keeps the original positions of dropped columns as
// empty strings so row indexes still line up.
func CleanHeader(header []string) []string {
	cleaned := make([]string, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.HasPrefix(name, "Unnamed") {
			continue
		}

		cleaned[i] = name
	}

	return cleaned
}

// ReadRecords parses gazetteer rows from CSV data. The header is cleaned
// first; a missing required column yields a DataFormatError. Ragged rows are
// tolerated: absent trailing fields become empty strings.
func ReadRecords(r io.Reader) ([]PlaceRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DataFormatError{MissingColumns: requiredColumns}
		}

		return nil, &DataFormatError{Err: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range CleanHeader(header) {
		if name == "" {
			continue
		}

		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	var missing []string

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, &DataFormatError{MissingColumns: missing}
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}

		return row[i]
	}

	var records []PlaceRecord

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, &DataFormatError{Err: err}
		}

		records = append(records, PlaceRecord{
			GlobID:    field(row, "glob_id"),
			Label:     field(row, "label"),
			PrefLabel: field(row, "pref_label"),
			LabelType: field(row, "label_type"),
			Latitude:  field(row, columnLatitude),
			Longitude: field(row, columnLongitude),
		})
	}

	return records, nil
}

// LoadFile reads a gazetteer CSV from disk, showing a progress bar on
// interactive terminals.
func LoadFile(path string) ([]PlaceRecord, error) {
	f, err := os.Open(path) // #nosec G304 - path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	if isatty.IsTerminal(os.Stderr.Fd()) {
		size := int64(-1)
		if info, err := f.Stat(); err == nil {
			size = info.Size()
		}

		bar := progressbar.NewOptions64(size,
			progressbar.OptionSetDescription("Loading "+path),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		reader = io.TeeReader(f, bar)
	}

	records, err := ReadRecords(reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return records, nil
}

// Fingerprint derives the upload deduplication key from an upload's name and
// byte size. Deliberately weak: two different files of identical name and
// size collide, which is acceptable for session-scoped re-render dedup.
func Fingerprint(name string, size int64) string {
	return fmt.Sprintf("%s:%d", name, size)
}
