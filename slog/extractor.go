// Package slog provides logging decorators for ythist services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/rcoelho/ythist"
)

// Ensure Extractor implements ythist.Extractor.
var _ ythist.Extractor = (*Extractor)(nil)

// Extractor wraps an Extractor with summary logging of each extraction run.
type Extractor struct {
	next   ythist.Extractor
	logger *slog.Logger
}

// NewExtractor creates a new logging Extractor.
func NewExtractor(next ythist.Extractor, logger *slog.Logger) *Extractor {
	return &Extractor{next: next, logger: logger}
}

// ExtractAll delegates to the wrapped extractor and logs record, dateless
// and ad counts along with the run duration.
func (e *Extractor) ExtractAll(ctx context.Context, document string, progress ythist.ExtractProgressFunc) ([]*ythist.Record, error) {
	begin := time.Now()
	records, err := e.next.ExtractAll(ctx, document, progress)
	if err != nil {
		e.logger.Error("extraction failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	var dateless, ads int
	for _, r := range records {
		if r.ViewedAt == nil {
			dateless++
		}
		if ythist.IsAd(r) {
			ads++
		}
	}
	e.logger.Info("extraction finished",
		"records", len(records),
		"dateless", dateless,
		"ads", ads,
		"duration", time.Since(begin),
	)
	return records, nil
}
