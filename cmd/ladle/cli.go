package main

import (
	"context"
	"io"
	"time"

	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/scrape"
	ladlewazero "github.com/ladle-app/ladle/wazero"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Recipes ladle.RecipeService
	Scraper *scrape.Scraper
	Sandbox *ladlewazero.Backend
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log pipeline stages to stderr"`
	DB      string `help:"Database path (default: $LADLE_DB or ~/.ladle/ladle.db)"`

	Scrape    ScrapeCmd    `cmd:"" help:"Scrape one or more recipe URLs"`
	Hosts     HostsCmd     `cmd:"" help:"List hosts with specialized extraction support"`
	Supported SupportedCmd `cmd:"" help:"Check whether a host has specialized support"`
	List      ListCmd      `cmd:"" help:"List saved recipes"`
	Similar   SimilarCmd   `cmd:"" help:"Find saved recipes with similar titles"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a saved recipe"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string      `arg:"" optional:"" help:"Recipe page URLs"`
	HTML        string        `help:"Scrape a local HTML file instead of fetching" type:"existingfile"`
	URL         string        `help:"Source URL for the local HTML file"`
	Wild        bool          `short:"w" help:"Allow generic parsing of unsupported hosts"`
	Save        bool          `short:"s" help:"Convert and save successful scrapes"`
	Persons     int           `default:"4" help:"Serving count when the page states none"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Delay       time.Duration `short:"d" help:"Minimum delay between fetches"`
}

// HostsCmd is the "hosts" subcommand.
type HostsCmd struct{}

// SupportedCmd is the "supported" subcommand.
type SupportedCmd struct {
	Host string `arg:"" help:"Host to check, e.g. example.com"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Title  string `short:"t" help:"Filter by title substring"`
	Limit  int    `default:"20" help:"Maximum number of recipes"`
	Offset int    `help:"Number of recipes to skip"`
}

// SimilarCmd is the "similar" subcommand.
type SimilarCmd struct {
	Title string `arg:"" help:"Title to compare against"`
	Limit int    `default:"5" help:"Maximum number of matches"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Recipe ID"`
	Force bool   `help:"Confirm deletion"`
}
