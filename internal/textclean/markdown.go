// Package textclean turns markdown-bearing text from search providers into
// plain readable prose. Every function is total: any string in, a string out.
package textclean

import (
	"regexp"
	"strings"
)

var (
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headerRe     = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	boldStarRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderRe  = regexp.MustCompile(`__([^_]+)__`)
	italicStarRe = regexp.MustCompile(`\*([^*]+)\*`)
	// RE2 has no lookarounds, so the underscore rule captures its own
	// boundaries instead of asserting them.
	italicUnderRe = regexp.MustCompile(`(^|[^0-9A-Za-z_])_([^_]+)_([^0-9A-Za-z_]|$)`)
	codeRe        = regexp.MustCompile("`([^`]+)`")
	tableSepRe    = regexp.MustCompile(`^\s*\|[\s\-:|]+\|\s*$`)
	newlineRunRe  = regexp.MustCompile(`\n{3,}`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
)

// Normalize strips markdown formatting from raw extracted content and returns
// plain text. The stage order matters: images and links resolve to their inner
// text first, then headers, emphasis and code markers drop, then table rows
// flatten line by line, and whitespace collapses last so cell boundaries
// survive until they are joined.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = imageRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = headerRe.ReplaceAllString(text, "")
	text = boldStarRe.ReplaceAllString(text, "$1")
	text = boldUnderRe.ReplaceAllString(text, "$1")
	text = italicStarRe.ReplaceAllString(text, "$1")
	text = stripUnderscoreItalics(text)
	text = codeRe.ReplaceAllString(text, "$1")
	text = flattenTables(text)
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	text = spaceRunRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// stripUnderscoreItalics removes _italic_ spans not attached to a word
// character. Consecutive spans share their boundary character, so a single
// pass can miss the next span; loop until the text stops changing.
func stripUnderscoreItalics(text string) string {
	for {
		replaced := italicUnderRe.ReplaceAllString(text, "$1$2$3")
		if replaced == text {
			return replaced
		}
		text = replaced
	}
}

// flattenTables rewrites markdown table lines as plain text: separator rows
// (|---|---|) are dropped, data rows starting with a pipe are split into
// cells and re-joined with " - ", and everything else passes through.
func flattenTables(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		if tableSepRe.MatchString(line) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			var cells []string
			for _, cell := range strings.Split(line, "|") {
				if trimmed := strings.TrimSpace(cell); trimmed != "" {
					cells = append(cells, trimmed)
				}
			}
			if len(cells) > 0 {
				cleaned = append(cleaned, strings.Join(cells, " - "))
			}
			continue
		}
		cleaned = append(cleaned, line)
	}

	return strings.Join(cleaned, "\n")
}
