// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gwas

// canonicalNames maps monitor spellings onto the reference map's
// country names. It is a fixed two-entry table, not fuzzy matching:
// the monitor's listing for South Korea, and the United States,
// which the map dataset names in full. Anything not listed passes
// through unchanged; an uncovered variant simply joins to No Data.
var canonicalNames = map[string]string{
	"Korea, South":  "South Korea",
	"United States": "United States of America",
}

// NormalizeName returns the canonical spelling of a country name.
func NormalizeName(raw string) string {
	if canon, ok := canonicalNames[raw]; ok {
		return canon
	}
	return raw
}
