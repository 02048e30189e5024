// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "places",
	Short: "explore the GLOBALISE places dataset",
	Long: `
places loads historical gazetteer CSVs from the GLOBALISE project — spelling
variants of place names mapped to canonical places with coordinates — and
lets you fuzzy-search variant spellings, inspect dataset statistics, export
map-ready point data, and serve it all over a JSON API.
`,
}

var dataFile string

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "locationdata.csv", "path to the gazetteer CSV")
}
