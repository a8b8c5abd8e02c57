// Package fs provides the simplified file cache for extracted records.
package fs

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rcoelho/ythist"
)

// Separator is the horizontal rule between records in the cache file.
const Separator = "-------------------------------------"

// Field labels of the cache format, one line per field in this order.
const (
	labelTitle      = "Title: "
	labelURL        = "URL: "
	labelChannel    = "Channel: "
	labelChannelURL = "Channel URL: "
	labelDate       = "Date: "
)

// FormatRecord renders one record in the cache format: five labeled lines
// followed by the separator. Detail text is not part of the format.
func FormatRecord(r *ythist.Record) string {
	var b strings.Builder
	b.WriteString(labelTitle)
	b.WriteString(r.Title)
	b.WriteString("\n")
	b.WriteString(labelURL)
	b.WriteString(r.URL)
	b.WriteString("\n")
	b.WriteString(labelChannel)
	b.WriteString(r.Channel)
	b.WriteString("\n")
	b.WriteString(labelChannelURL)
	b.WriteString(r.ChannelURL)
	b.WriteString("\n")
	b.WriteString(labelDate)
	b.WriteString(r.ViewedAtRaw)
	b.WriteString("\n")
	b.WriteString(Separator)
	b.WriteString("\n")
	return b.String()
}

// Cache reads and writes the record cache file.
type Cache struct {
	path string
}

// NewCache creates a Cache at the given path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// WriteRecords writes all records to the cache file, replacing any previous
// content.
func (c *Cache) WriteRecords(records []*ythist.Record) error {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(FormatRecord(r))
	}
	if err := os.WriteFile(c.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// ReadRecords reads the cache file back into records, in file order. The
// view date is re-derived from the raw date string; detail text is not
// persisted, so restored records never classify as ads. Entries without a
// title and URL are skipped.
func (c *Cache) ReadRecords() ([]*ythist.Record, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	defer f.Close()

	var records []*ythist.Record
	current := &ythist.Record{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "---"):
			if current.Validate() == nil {
				if current.ViewedAtRaw != "" {
					if t, err := ythist.ParseViewDate(current.ViewedAtRaw); err == nil {
						current.ViewedAt = &t
					}
				}
				records = append(records, current)
			}
			current = &ythist.Record{}
		case strings.HasPrefix(line, labelTitle):
			current.Title = strings.TrimPrefix(line, labelTitle)
		case strings.HasPrefix(line, labelURL):
			current.URL = strings.TrimPrefix(line, labelURL)
		case strings.HasPrefix(line, labelChannelURL):
			current.ChannelURL = strings.TrimPrefix(line, labelChannelURL)
		case strings.HasPrefix(line, labelChannel):
			current.Channel = strings.TrimPrefix(line, labelChannel)
		case strings.HasPrefix(line, labelDate):
			current.ViewedAtRaw = strings.TrimPrefix(line, labelDate)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	return records, nil
}
