// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/KayWP/globalise-places-explorer/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
