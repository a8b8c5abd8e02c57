package main

import (
	"context"
	"io"

	"github.com/rcoelho/ythist"
	"github.com/rcoelho/ythist/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	History   ythist.HistoryService
	Extractor ythist.Extractor

	// CachePath, when set, loads records from the cache file instead of
	// the database.
	CachePath string
}

// loadHistory builds the in-memory store the query commands run against.
func (d *Dependencies) loadHistory() (*ythist.History, error) {
	var records []*ythist.Record
	var err error
	if d.CachePath != "" {
		records, err = fs.NewCache(d.CachePath).ReadRecords()
	} else {
		records, err = d.History.ListRecords(d.Ctx)
	}
	if err != nil {
		return nil, err
	}
	return ythist.NewHistory(records), nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Cache string `help:"Load records from a cache file instead of the database" type:"path"`

	Parse    ParseCmd    `cmd:"" help:"Parse a watch-history export into the database"`
	First    FirstCmd    `cmd:"" help:"List the earliest watched videos"`
	Top      TopCmd      `cmd:"" help:"Rank videos, channels or days by view count"`
	Day      DayCmd      `cmd:"" help:"List videos watched on a given date"`
	Channels ChannelsCmd `cmd:"" help:"List distinct channels watched on a given date"`
	Search   SearchCmd   `cmd:"" help:"Search titles with a boolean query"`
	Dist     DistCmd     `cmd:"" help:"Show temporal distribution of views"`
	Ads      AdsCmd      `cmd:"" help:"Show ad view aggregates"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File        string `arg:"" help:"Path to the watch-history HTML export" type:"path"`
	WriteCache  string `help:"Also write records to a cache file" type:"path"`
	Concurrency int    `short:"c" help:"Extraction worker limit (default: number of CPUs)"`
}

// FirstCmd is the "first" subcommand.
type FirstCmd struct {
	N       int    `short:"n" default:"10" help:"Number of records to list"`
	Channel string `help:"Restrict to channels whose name contains this substring"`
	ByYear  bool   `help:"List the earliest records of each year"`
}

// TopCmd is the "top" subcommand.
type TopCmd struct {
	Kind   string `arg:"" enum:"videos,channels,days" help:"What to rank: videos, channels or days"`
	N      int    `short:"n" default:"10" help:"Number of entries to list"`
	ByYear bool   `help:"Rank within each year"`
}

// DayCmd is the "day" subcommand.
type DayCmd struct {
	Date string `arg:"" help:"Calendar date (YYYY-MM-DD)"`
}

// ChannelsCmd is the "channels" subcommand.
type ChannelsCmd struct {
	Date string `arg:"" help:"Calendar date (YYYY-MM-DD)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Comma-separated OR groups of space-separated AND terms"`
}

// DistCmd is the "dist" subcommand.
type DistCmd struct{}

// AdsCmd is the "ads" subcommand.
type AdsCmd struct {
	N      int  `short:"n" default:"10" help:"Number of ad titles to list"`
	ByYear bool `help:"Rank ad titles within each year"`
}
