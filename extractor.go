package ythist

import "context"

// ExtractProgress reports progress during extraction of a history export.
type ExtractProgress struct {
	Completed int
	Total     int
}

// ExtractProgressFunc is called as event fragments are processed.
type ExtractProgressFunc func(ExtractProgress)

// Extractor turns a full history export document into the ordered list of
// view records. Implementations must preserve source-document order
// regardless of internal parallelism, and must degrade to "no record" on
// malformed fragments instead of failing the batch.
type Extractor interface {
	ExtractAll(ctx context.Context, document string, progress ExtractProgressFunc) ([]*Record, error)
}
