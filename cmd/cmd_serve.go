// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KayWP/globalise-places-explorer/gazetteer"
	"github.com/KayWP/globalise-places-explorer/utils/textutils"
)

var (
	serveAddr     string
	serveLinkBase string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gazetteer JSON API server",
	Long: `Loads the base dataset and serves search, map, stats, and upload endpoints.
Each browser session gets its own working copy of the dataset; uploads merged
into one session are invisible to others and vanish when the session expires.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		records, err := gazetteer.LoadFile(dataFile)
		if err != nil {
			return fmt.Errorf("loading base dataset: %w", err)
		}

		stats := gazetteer.ComputeStats(records)
		log.Printf("Loaded %s location records with %s unique IDs",
			textutils.FormatInt(int64(stats.Records)),
			textutils.FormatInt(int64(stats.UniquePlaces)))

		server := gazetteer.NewServer(records, serveAddr, serveLinkBase)

		fmt.Printf("🗺️  Places explorer starting on http://%s\n", serveAddr)

		return server.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "listen address")
	serveCmd.Flags().StringVar(&serveLinkBase, "link-base", gazetteer.DefaultLinkBase, "base URL for outbound transcription search links")
}
