// Package slug derives URL-safe identifiers from product names.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRun  = regexp.MustCompile(`-+`)
)

// Make lowercases the name, drops everything outside word characters,
// whitespace and hyphens, turns whitespace runs into a single hyphen and
// collapses hyphen runs. Duplicate names yield duplicate slugs; uniqueness
// is not enforced here.
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
