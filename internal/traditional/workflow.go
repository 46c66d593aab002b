package traditional

// WorkflowSteps lists what a snippet-only pipeline still has to do before its
// results are usable as RAG context.
func WorkflowSteps() []string {
	return []string{
		"Call search API (Google, Bing, SerpAPI)",
		"Get URLs and short snippets",
		"For each URL, you need to scrape the page (requests, selenium), parse HTML (BeautifulSoup, lxml), extract main content (custom logic), clean and format text and handle errors (404s, timeouts, paywalls)",
		"Filter and rank extracted content",
		"Optimize for LLM context window",
		"Finally get RAG-ready content",
	}
}

// Problems lists the operational costs of that pipeline.
func Problems() []string {
	return []string{
		"Multiple API calls required",
		"Complex scraping logic needed",
		"Error handling for each website",
		"Content extraction varies by site",
		"High latency (serial scraping)",
		"Maintenance burden (site changes)",
		"Rate limiting concerns",
		"Extra infrastructure needed",
	}
}
