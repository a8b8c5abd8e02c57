package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/rcoelho/ythist"
)

// printRecords writes records one per line as "<raw date> - <title>
// (<channel>)", matching the export's own display strings.
func printRecords(w io.Writer, records []*ythist.Record) {
	for _, r := range records {
		fmt.Fprintf(w, "%s - %s (%s)\n", r.ViewedAtRaw, r.Title, r.Channel)
	}
}

// printCounts writes "key - N <unit>" lines.
func printCounts(w io.Writer, counts []ythist.Count, unit string) {
	for _, c := range counts {
		fmt.Fprintf(w, "%s - %d %s\n", c.Key, c.Count, unit)
	}
}

// sortedYears returns the map's keys in ascending order.
func sortedYears[V any](m map[int]V) []int {
	years := make([]int, 0, len(m))
	for year := range m {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
