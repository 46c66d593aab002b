package traditional

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Mock simulates a traditional search API (Google, Bing, SerpAPI): titles,
// URLs, and short meta-description snippets templated from the query, with
// no content extraction. The same query and count always produce the same
// results, so comparisons run without any external call.
type Mock struct{}

// NewMock returns the deterministic snippet searcher used by default.
func NewMock() *Mock {
	return &Mock{}
}

// Search never fails.
func (m *Mock) Search(_ context.Context, query string, maxResults int) (*Response, error) {
	templates := mockResults(query)

	if maxResults < 0 {
		maxResults = 0
	}
	if maxResults > len(templates) {
		maxResults = len(templates)
	}
	results := templates[:maxResults]

	return &Response{
		Query:        query,
		Results:      results,
		TotalResults: len(results),
	}, nil
}

func mockResults(query string) []SnippetResult {
	title := titleCase(query)
	hyphens := strings.ReplaceAll(query, " ", "-")
	slashes := strings.ReplaceAll(query, " ", "/")
	underscores := strings.ReplaceAll(query, " ", "_")

	return []SnippetResult{
		{
			Title:   fmt.Sprintf("%s - Comprehensive Guide", title),
			URL:     fmt.Sprintf("https://example.com/guide/%s", hyphens),
			Snippet: fmt.Sprintf("Learn about %s in this comprehensive guide. Discover the best practices, tips, and techniques for understanding %s...", query, query),
		},
		{
			Title:   fmt.Sprintf("Understanding %s: A Complete Overview", title),
			URL:     fmt.Sprintf("https://docs.example.org/%s", hyphens),
			Snippet: fmt.Sprintf("Everything you need to know about %s. This article covers the fundamentals, advanced concepts, and practical applications...", query),
		},
		{
			Title:   fmt.Sprintf("%s Explained - Tutorial", title),
			URL:     fmt.Sprintf("https://tutorial.site/%s", slashes),
			Snippet: fmt.Sprintf("A step-by-step tutorial on %s. Perfect for beginners and advanced users alike. Includes examples and best practices...", query),
		},
		{
			Title:   fmt.Sprintf("Latest News and Updates on %s", title),
			URL:     fmt.Sprintf("https://news.example.com/topics/%s", hyphens),
			Snippet: fmt.Sprintf("Stay up to date with the latest developments in %s. Recent articles, announcements, and industry insights...", query),
		},
		{
			Title:   fmt.Sprintf("%s - Wikipedia", title),
			URL:     fmt.Sprintf("https://wikipedia.org/wiki/%s", underscores),
			Snippet: fmt.Sprintf("%s refers to... From Wikipedia, the free encyclopedia. This article needs additional citations for verification...", title),
		},
		{
			Title:   fmt.Sprintf("%s Best Practices and Tips", title),
			URL:     fmt.Sprintf("https://medium.com/@author/%s-best-practices", hyphens),
			Snippet: fmt.Sprintf("In this article, we explore the best practices for %s. Learn from industry experts and improve your understanding...", query),
		},
		{
			Title:   fmt.Sprintf("The Ultimate %s Resource", title),
			URL:     fmt.Sprintf("https://resources.dev/%s", hyphens),
			Snippet: fmt.Sprintf("Your one-stop resource for everything related to %s. Curated links, tutorials, and documentation...", query),
		},
		{
			Title:   fmt.Sprintf("%s FAQ - Frequently Asked Questions", title),
			URL:     fmt.Sprintf("https://faq.example.com/%s", hyphens),
			Snippet: fmt.Sprintf("Find answers to the most common questions about %s. Our FAQ covers basics to advanced topics...", query),
		},
		{
			Title:   fmt.Sprintf("Getting Started with %s", title),
			URL:     fmt.Sprintf("https://quickstart.io/%s", hyphens),
			Snippet: fmt.Sprintf("New to %s? This getting started guide will help you understand the fundamentals quickly and efficiently...", query),
		},
		{
			Title:   fmt.Sprintf("%s Documentation - Official", title),
			URL:     fmt.Sprintf("https://docs.official.com/%s", hyphens),
			Snippet: fmt.Sprintf("Official documentation for %s. Complete API reference, guides, and examples for developers...", query),
		},
	}
}

// titleCase uppercases the first letter of each word and lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
