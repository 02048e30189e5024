// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"net/url"
	"strings"
)

// DefaultLinkBase is the transcription search the variant links point at.
const DefaultLinkBase = "https://transcriptions.globalise.huygens.knaw.nl/search"

// FullTextLink builds an outbound full-text search URL over a place's
// spelling variants: <base>?query[fullText]=<t1>%20OR%20<t2>..., each term
// double-quoted and percent-encoded. With no terms it returns the base
// unchanged.
func FullTextLink(base string, terms []string) string {
	if len(terms) == 0 {
		return base
	}

	encoded := make([]string, len(terms))
	for i, term := range terms {
		// QueryEscape encodes spaces as '+'; the target expects %20.
		encoded[i] = strings.ReplaceAll(url.QueryEscape(`"`+term+`"`), "+", "%20")
	}

	return base + "?query[fullText]=" + strings.Join(encoded, "%20OR%20")
}
