package main

import (
	"context"
	"io"
	"log/slog"

	unlocked "github.com/Skasundra/medium-unlocked"
	"github.com/Skasundra/medium-unlocked/pipeline"
	"github.com/Skasundra/medium-unlocked/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	DB          *sqlite.DB
	Cache       unlocked.CacheService
	Reliability unlocked.ReliabilityService
	Audit       unlocked.AuditService
	Pipeline    *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch FetchCmd `cmd:"" help:"Fetch a Medium article through the mirror pipeline"`
	Stats StatsCmd `cmd:"" help:"Show per-domain reliability and recent attempts"`
	Logs  LogsCmd  `cmd:"" help:"Show recent extraction attempts"`
	Sweep SweepCmd `cmd:"" help:"Delete expired cache entries"`

	DB      string `help:"Database path" env:"MEDIUM_UNLOCKED_DB"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL       string `arg:"" help:"Medium article URL"`
	JSON      bool   `help:"Print the full result as JSON"`
	Extractor string `default:"cascade" enum:"cascade,readability" help:"Extraction engine (cascade or readability)"`
	NoCache   bool   `help:"Bypass the cache for this fetch"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Top int `default:"10" help:"Number of domains to show"`
}

// LogsCmd is the "logs" subcommand.
type LogsCmd struct {
	Limit int `default:"20" help:"Number of entries to show"`
}

// SweepCmd is the "sweep" subcommand.
type SweepCmd struct{}
