package textclean

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags returns the text content of an HTML fragment with script and
// style subtrees skipped and whitespace normalized. Inputs without markup
// pass through unchanged.
func StripTags(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var text strings.Builder
	collectText(doc, &text)

	return strings.Join(strings.Fields(text.String()), " ")
}

// collectText walks the node tree accumulating text content, skipping
// elements that never carry prose.
func collectText(n *html.Node, text *strings.Builder) {
	if n.Type == html.ElementNode {
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}

	if n.Type == html.TextNode {
		text.WriteString(n.Data)
		text.WriteString(" ")
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, text)
	}
}
