// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KayWP/globalise-places-explorer/gazetteer"
	"github.com/KayWP/globalise-places-explorer/utils/textutils"
)

var (
	mapOut   string
	mapTypes string
	mapIDs   string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Export the map point layer as JSON",
	Long: `Writes the rows with usable coordinates as a renderer-ready point layer:
colored markers, tooltip template, and an initial view centered on the data.
Rows with missing, non-numeric, or (0,0) coordinates are left out.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		records, err := gazetteer.LoadFile(dataFile)
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}

		var filter gazetteer.MapFilter

		if mapTypes != "" {
			filter.LabelTypes = strings.Split(mapTypes, ",")
		}

		if mapIDs != "" {
			filter.GlobIDs = strings.Split(mapIDs, ",")
		}

		layer := gazetteer.BuildMapLayer(records, filter)

		data, err := json.MarshalIndent(layer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling map layer: %w", err)
		}

		if mapOut == "-" {
			fmt.Println(string(data))

			return nil
		}

		if err := os.WriteFile(mapOut, data, 0o600); err != nil {
			return fmt.Errorf("writing map layer: %w", err)
		}

		fmt.Printf("✅ Exported %s map points to %s\n",
			textutils.FormatInt(int64(len(layer.Points))), mapOut)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().StringVar(&mapOut, "out", "points.json", "output file, or - for stdout")
	mapCmd.Flags().StringVar(&mapTypes, "types", "", "comma-separated label types to include (e.g. PREF,ALT)")
	mapCmd.Flags().StringVar(&mapIDs, "ids", "", "comma-separated glob_ids to include")
}
