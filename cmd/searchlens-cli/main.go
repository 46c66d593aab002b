// Command searchlens-cli drives a running searchlens server from the
// terminal, rendering comparison reports as markdown.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"searchlens/internal/cliui"
	"searchlens/internal/compare"
	"searchlens/internal/history"
)

const historyLimit = 50

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "searchlens server URL")
	query := flag.String("query", "", "Run a single comparison and exit")
	maxResults := flag.Int("max", 0, "Results per side (0 uses the server default)")
	jsonOut := flag.Bool("json", false, "Print the raw JSON payload instead of the rendered report")
	showHistory := flag.Bool("history", false, "List recent comparison runs and exit")
	flag.Parse()

	display := cliui.NewDisplay()
	defer display.Cleanup()

	historyMgr := history.NewManager(history.DefaultPath(), historyLimit)
	if err := historyMgr.Load(); err != nil {
		display.PrintWarning(fmt.Sprintf("Failed to load history: %v", err))
	}

	c := &client{
		baseURL:    strings.TrimRight(*serverURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}

	if *showHistory {
		printHistory(display, historyMgr)
		return
	}

	if *query != "" {
		if err := runOnce(display, c, historyMgr, *query, *maxResults, *jsonOut); err != nil {
			display.PrintError(err)
			os.Exit(1)
		}
		return
	}

	runInteractive(display, c, historyMgr, *maxResults, *jsonOut)
}

// client talks to the comparison server's form endpoint
type client struct {
	baseURL    string
	httpClient *http.Client
}

func (c *client) compare(query string, maxResults int) (*compare.Response, error) {
	form := url.Values{"query": {query}}
	if maxResults > 0 {
		form.Set("max_results", strconv.Itoa(maxResults))
	}

	resp, err := c.httpClient.PostForm(c.baseURL+"/compare", form)
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != 200 {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			return nil, fmt.Errorf("%s", payload.Error)
		}
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var payload compare.Response
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &payload, nil
}

func runOnce(display *cliui.Display, c *client, historyMgr *history.Manager, query string, maxResults int, jsonOut bool) error {
	start := time.Now()
	resp, err := c.compare(query, maxResults)
	if err != nil {
		return err
	}

	if err := printResponse(display, resp, jsonOut); err != nil {
		return err
	}
	display.PrintSuccess(fmt.Sprintf("Compared in %s", cliui.FormatDuration(time.Since(start))))

	recordRun(display, historyMgr, resp, maxResults, c.baseURL)
	return nil
}

func runInteractive(display *cliui.Display, c *client, historyMgr *history.Manager, maxResults int, jsonOut bool) {
	display.PrintWelcome(c.baseURL)

	for {
		display.PrintPrompt()
		input, err := cliui.ReadUserInput()
		if err != nil {
			break
		}

		switch input {
		case "/exit", "/quit", "exit", "quit":
			display.PrintGoodbye()
			return
		case "/history":
			printHistory(display, historyMgr)
			continue
		case "":
			continue
		}

		display.ShowSpinner("Comparing")
		start := time.Now()
		resp, err := c.compare(input, maxResults)
		display.StopSpinner()
		if err != nil {
			display.PrintError(err)
			continue
		}

		if err := printResponse(display, resp, jsonOut); err != nil {
			display.PrintError(err)
			continue
		}
		display.PrintSuccess(fmt.Sprintf("Compared in %s", cliui.FormatDuration(time.Since(start))))

		recordRun(display, historyMgr, resp, maxResults, c.baseURL)
	}

	display.PrintGoodbye()
}

func printResponse(display *cliui.Display, resp *compare.Response, jsonOut bool) error {
	if jsonOut {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(display.RenderMarkdown(cliui.BuildReport(resp)))
	return nil
}

func recordRun(display *cliui.Display, historyMgr *history.Manager, resp *compare.Response, maxResults int, server string) {
	run := history.Run{
		Query:      resp.Query,
		MaxResults: maxResults,
		Server:     server,
		AnswerOK:   resp.Exa.AIAnswer.Error == "",
	}
	if resp.Exa.Results != nil {
		run.RichResults = len(resp.Exa.Results.Results)
	}
	if resp.Traditional.Results != nil {
		run.TraditionalResults = len(resp.Traditional.Results.Results)
	}
	for _, delta := range resp.Comparison.Deltas {
		if delta.Metric == "total_content_length" {
			run.ContentRatio = delta.Ratio
		}
	}

	if err := historyMgr.AddRun(run); err != nil {
		display.PrintWarning(fmt.Sprintf("Failed to save history: %v", err))
	}
}

func printHistory(display *cliui.Display, historyMgr *history.Manager) {
	runs := historyMgr.Recent(10)
	if len(runs) == 0 {
		display.PrintInfo("No comparison runs recorded yet")
		return
	}

	for _, run := range runs {
		fmt.Printf("  %s  %q rich=%d trad=%d ratio=%.1fx answer=%v\n",
			run.RanAt.Format("2006-01-02 15:04"), run.Query,
			run.RichResults, run.TraditionalResults, run.ContentRatio, run.AnswerOK)
	}
}
