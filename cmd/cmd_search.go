// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KayWP/globalise-places-explorer/gazetteer"
)

var (
	searchLimit    int
	searchFold     bool
	searchLinkBase string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search place name variants",
	Long: `Scores every label in the dataset against the query, ranks the matches,
and prints them grouped by canonical place. Use --fold to ignore diacritics,
so "Abarkuh" finds "Abarkūh" exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		query := args[0]

		records, err := gazetteer.LoadFile(dataFile)
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}

		matches := gazetteer.Search(records, query, gazetteer.SearchOptions{
			TopN: gazetteer.ClampTopN(searchLimit),
			Fold: searchFold,
		})

		if len(matches) == 0 {
			fmt.Printf("No matches found for %q. Try a different search term.\n", query)

			return nil
		}

		groups := gazetteer.GroupByPlace(matches)

		fmt.Printf("Found %d matches for %q across %d places\n\n", len(matches), query, len(groups))

		for i := range groups {
			best := groups[i].Best()
			variants := groups[i].Variants()

			fmt.Printf("%s  %s (match %d%%)\n", groups[i].GlobID, best.PrefLabel, int(best.Score*100))
			fmt.Printf("    variants: %s\n", strings.Join(variants, ", "))

			if point, ok := best.Location(); ok {
				fmt.Printf("    coordinates: %.4f, %.4f\n", point.Lat, point.Lng)
			}

			fmt.Printf("    transcriptions: %s\n", gazetteer.FullTextLink(searchLinkBase, variants))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", gazetteer.DefaultTopN, "maximum number of results (5-50)")
	searchCmd.Flags().BoolVar(&searchFold, "fold", false, "ignore diacritics when matching")
	searchCmd.Flags().StringVar(&searchLinkBase, "link-base", gazetteer.DefaultLinkBase, "base URL for outbound transcription search links")
}
