package mock

import (
	"context"

	"github.com/rcoelho/ythist"
)

var _ ythist.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of ythist.HistoryService.
type HistoryService struct {
	SaveRecordsFn func(ctx context.Context, records []*ythist.Record) error
	ListRecordsFn func(ctx context.Context) ([]*ythist.Record, error)
}

func (s *HistoryService) SaveRecords(ctx context.Context, records []*ythist.Record) error {
	return s.SaveRecordsFn(ctx, records)
}

func (s *HistoryService) ListRecords(ctx context.Context) ([]*ythist.Record, error) {
	return s.ListRecordsFn(ctx)
}
