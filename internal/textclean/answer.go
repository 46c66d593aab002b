package textclean

import (
	"regexp"
	"strings"
)

var (
	// A parenthetical that wraps at least one markdown link, e.g.
	// "(see [Source](https://a.com) for details)".
	citationGroupRe = regexp.MustCompile(`\s*\([^()]*\[[^\]]*\]\([^)]+\)[^()]*\)`)
	citationLinkRe  = regexp.MustCompile(`\s*\[[^\]]*\]\([^)]+\)`)

	// Punctuation left behind once citations are gone.
	strayCommaParenRe  = regexp.MustCompile(`\s*,\s*\)`)
	emptyParenRe       = regexp.MustCompile(`\(\s*,?\s*\)`)
	spaceBeforeParenRe = regexp.MustCompile(`\s+\)`)
	parenAfterPunctRe  = regexp.MustCompile(`([.!?])\s*\)`)
	parenBeforePunctRe = regexp.MustCompile(`\)\s*([.!?])`)
	bulletPrefixRe     = regexp.MustCompile(`(?m)^\s*[*-]\s+`)
	spaceBeforePunctRe = regexp.MustCompile(`\s+([.,!?])`)
	answerSpaceRunRe   = regexp.MustCompile(`[ \t]{2,}`)
	answerNewlineRunRe = regexp.MustCompile(`\n{2,}`)
)

// CleanAnswer strips inline citation groups and markdown formatting from a
// generated answer, then repairs the punctuation and spacing artifacts the
// removal leaves behind. Citation URLs are never parsed out of the text;
// callers take them from the provider's structured citation entries.
func CleanAnswer(text string) string {
	if text == "" {
		return ""
	}

	// Grouped citations first, then any standalone links.
	text = citationGroupRe.ReplaceAllString(text, "")
	text = citationLinkRe.ReplaceAllString(text, "")

	// Repair what the removal exposed.
	text = strayCommaParenRe.ReplaceAllString(text, ")")
	text = emptyParenRe.ReplaceAllString(text, "")
	text = spaceBeforeParenRe.ReplaceAllString(text, ")")
	text = parenAfterPunctRe.ReplaceAllString(text, "$1")
	text = parenBeforePunctRe.ReplaceAllString(text, "$1")

	// Citation removal can expose fresh markdown matches, so the emphasis,
	// bullet, header, and code rules run again here.
	text = boldStarRe.ReplaceAllString(text, "$1")
	text = boldUnderRe.ReplaceAllString(text, "$1")
	text = italicStarRe.ReplaceAllString(text, "$1")
	text = stripUnderscoreItalics(text)
	text = bulletPrefixRe.ReplaceAllString(text, "")
	text = headerRe.ReplaceAllString(text, "")
	text = codeRe.ReplaceAllString(text, "$1")

	text = spaceBeforePunctRe.ReplaceAllString(text, "$1")
	text = answerSpaceRunRe.ReplaceAllString(text, " ")
	text = answerNewlineRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
