package goquery

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rcoelho/ythist"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ ythist.Extractor = (*Extractor)(nil)

// Extractor extracts view records from a full history export document,
// fanning fragments out over a bounded worker pool while preserving
// source-document order in the result.
type Extractor struct {
	// Concurrency bounds the worker pool. Zero or negative means one
	// worker per CPU.
	Concurrency int

	// Logger, when set, receives diagnostics for fragments whose date
	// substring failed to normalize.
	Logger *slog.Logger
}

// NewExtractor creates an Extractor with default settings.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractAll splits the document into event fragments and parses them in
// parallel. Results keep the fragments' document order; fragments that
// yield no record contribute nothing. A worker panic on one fragment is
// equivalent to "no record" for that fragment.
func (e *Extractor) ExtractAll(ctx context.Context, document string, progress ythist.ExtractProgressFunc) ([]*ythist.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, ythist.Errorf(ythist.EINVALID, "failed to parse document: %v", err)
	}

	// Serialize each fragment to a standalone string so workers can parse
	// them independently.
	var fragments []string
	doc.Find(eventSelector).Each(func(_ int, sel *goquery.Selection) {
		if fragment, err := goquery.OuterHtml(sel); err == nil {
			fragments = append(fragments, fragment)
		}
	})

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	type fragmentResult struct {
		position int
		record   *ythist.Record
	}
	resultCh := make(chan fragmentResult, len(fragments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	go func() {
		for i, fragment := range fragments {
			i, fragment := i, fragment
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				resultCh <- fragmentResult{position: i, record: e.parseFragment(fragment)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect by original index; workers complete in any order. Progress is
	// reported from this single goroutine so callbacks need no locking.
	results := make([]*ythist.Record, len(fragments))
	completed := 0
	for res := range resultCh {
		completed++
		results[res.position] = res.record
		if progress != nil {
			progress(ythist.ExtractProgress{
				Completed: completed,
				Total:     len(fragments),
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Reassemble in original order, dropping non-records. Records with
	// absent dates are kept.
	records := make([]*ythist.Record, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, r)
		}
	}
	return records, nil
}

// parseFragment runs the cell extractor, turning any failure into "no
// record" so one bad fragment cannot fail the batch.
func (e *Extractor) parseFragment(fragment string) (record *ythist.Record) {
	defer func() {
		if r := recover(); r != nil {
			if e.Logger != nil {
				e.Logger.Warn("fragment parse panic", "panic", r)
			}
			record = nil
		}
	}()

	record, err := ParseFragment(fragment)
	if err != nil {
		return nil
	}
	if record != nil && record.ViewedAtRaw != "" && record.ViewedAt == nil && e.Logger != nil {
		e.Logger.Warn("date normalization failed",
			"title", record.Title,
			"raw", record.ViewedAtRaw,
		)
	}
	return record
}
