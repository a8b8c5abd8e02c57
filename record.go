package ythist

import (
	"context"
	"time"
)

// Record represents one watched-video event from the history export.
type Record struct {
	// Title and URL identify the video. Both are required; a fragment
	// without them never produces a Record.
	Title string `json:"title"`
	URL   string `json:"url"`

	// Channel fields are empty when the source fragment has no channel
	// anchor after the video anchor. Empty is the "no channel" sentinel,
	// not an error.
	Channel    string `json:"channel"`
	ChannelURL string `json:"channelUrl"`

	// ViewedAt is nil when the fragment carried no recognizable date or
	// when normalization of ViewedAtRaw failed. ViewedAtRaw preserves the
	// matched substring either way, for display and round-tripping.
	ViewedAt    *time.Time `json:"viewedAt"`
	ViewedAtRaw string     `json:"viewedAtRaw"`

	// Detail is the free text following the "Detalhes" label in the
	// fragment's caption block. Used only for ad classification.
	Detail string `json:"detail"`
}

// Validate returns an error if the record is missing required fields.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// Year returns the calendar year of the view and whether a view date is
// present at all.
func (r *Record) Year() (int, bool) {
	if r.ViewedAt == nil {
		return 0, false
	}
	return r.ViewedAt.Year(), true
}

// Day returns the view date formatted as YYYY-MM-DD, or "" when absent.
func (r *Record) Day() string {
	if r.ViewedAt == nil {
		return ""
	}
	return r.ViewedAt.Format("2006-01-02")
}

// Channel is a (name, link) pair as it appears in the export.
type Channel struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// HistoryService persists extracted records between sessions.
type HistoryService interface {
	// SaveRecords replaces the stored history with the given records,
	// preserving their order.
	SaveRecords(ctx context.Context, records []*Record) error

	// ListRecords returns all stored records in their original extraction
	// order. Returns an empty slice when nothing has been stored.
	ListRecords(ctx context.Context) ([]*Record, error)
}
