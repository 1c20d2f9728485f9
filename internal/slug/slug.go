// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation. Synced content keeps
// the slug the CMS sent when it is already clean; anything else is
// normalized here so routes stay stable.
package slug

import (
	"regexp"
	"strings"
)

var (
	// disallowed matches anything that isn't a letter, digit, whitespace,
	// or hyphen after lowercasing.
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	// separatorRuns collapses runs of whitespace and hyphens into one hyphen.
	separatorRuns = regexp.MustCompile(`[\s-]+`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Chase Sapphire Preferred (2026 Review)" → "chase-sapphire-preferred-2026-review"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = disallowed.ReplaceAllString(result, "")
	result = separatorRuns.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Valid reports whether s is already a clean slug that Generate would
// leave unchanged.
func Valid(s string) bool {
	return s != "" && Generate(s) == s
}
