// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KayWP/globalise-places-explorer/gazetteer"
	"github.com/KayWP/globalise-places-explorer/utils/textutils"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset statistics",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		records, err := gazetteer.LoadFile(dataFile)
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}

		stats := gazetteer.ComputeStats(records)

		fmt.Printf("Total records:     %s\n", textutils.FormatInt(int64(stats.Records)))
		fmt.Printf("Unique IDs:        %s\n", textutils.FormatInt(int64(stats.UniquePlaces)))
		fmt.Printf("Unique locations:  %s\n", textutils.FormatInt(int64(stats.UniquePreferred)))
		fmt.Printf("Usable locations:  %s\n", textutils.FormatInt(int64(stats.UsableLocations)))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
