package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/convert"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.HTML != "" {
		return c.scrapeFile(deps)
	}
	if len(c.URLs) == 0 {
		return ladle.Errorf(ladle.ETFETCH, "no URLs given")
	}

	results := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs)

	failures := 0
	for i, res := range results {
		if err := c.emit(deps, c.URLs[i], res); err != nil {
			return err
		}
		if !res.Success {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d scrapes failed", failures, len(results))
	}
	return nil
}

// scrapeFile runs extraction on a local HTML file, no fetch or auth check.
func (c *ScrapeCmd) scrapeFile(deps *Dependencies) error {
	markup, err := os.ReadFile(c.HTML)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", c.HTML, err)
	}

	res := deps.Scraper.ScrapeHTML(deps.Ctx, string(markup), c.URL)
	if err := c.emit(deps, c.URL, res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("scrape failed: %s", res.Err.Message)
	}
	return nil
}

// emit prints the result as JSON and saves successful scrapes when asked.
func (c *ScrapeCmd) emit(deps *Dependencies, url string, res ladle.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(payload))

	if !c.Save || !res.Success {
		return nil
	}

	converted := convert.Recipe(res.Data, convert.Options{DefaultPersons: c.Persons})
	stored := &ladle.StoredRecipe{SourceURL: url, Recipe: *converted}
	if err := deps.Recipes.CreateRecipe(deps.Ctx, stored); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ladle.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved %q as %s\n", stored.Recipe.Title, stored.ID)
	return nil
}
