package main

import (
	"fmt"
	"os"

	"github.com/rcoelho/ythist"
	"github.com/rcoelho/ythist/fs"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}

	progress := func(p ythist.ExtractProgress) {
		if p.Completed%1000 == 0 || p.Completed == p.Total {
			fmt.Fprintf(deps.Stderr, "\rProcessing records: %d/%d", p.Completed, p.Total)
		}
		if p.Completed == p.Total {
			fmt.Fprintln(deps.Stderr)
		}
	}

	records, err := deps.Extractor.ExtractAll(deps.Ctx, string(data), progress)
	if err != nil {
		return err
	}

	if err := deps.History.SaveRecords(deps.Ctx, records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	if c.WriteCache != "" {
		if err := fs.NewCache(c.WriteCache).WriteRecords(records); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d records\n", len(records))
	return nil
}
