package mock

import (
	"context"

	"github.com/rcoelho/ythist"
)

var _ ythist.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ythist.Extractor.
type Extractor struct {
	ExtractAllFn func(ctx context.Context, document string, progress ythist.ExtractProgressFunc) ([]*ythist.Record, error)
}

func (e *Extractor) ExtractAll(ctx context.Context, document string, progress ythist.ExtractProgressFunc) ([]*ythist.Record, error) {
	return e.ExtractAllFn(ctx, document, progress)
}
