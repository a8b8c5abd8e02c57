package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/rcoelho/ythist"
	"github.com/rcoelho/ythist/mock"
	ytslog "github.com/rcoelho/ythist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractAll(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs a summary", func(t *testing.T) {
		t.Parallel()

		records := []*ythist.Record{
			{Title: "a", URL: "https://www.youtube.com/watch?v=a"},
			{Title: "promo", URL: "https://www.youtube.com/watch?v=b", Detail: ythist.AdMarker},
		}
		next := &mock.Extractor{
			ExtractAllFn: func(ctx context.Context, document string, progress ythist.ExtractProgressFunc) ([]*ythist.Record, error) {
				return records, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		got, err := ytslog.NewExtractor(next, logger).ExtractAll(context.Background(), "<html></html>", nil)

		require.NoError(t, err)
		assert.Equal(t, records, got)
		assert.Contains(t, buf.String(), "extraction finished")
		assert.Contains(t, buf.String(), "records=2")
		assert.Contains(t, buf.String(), "dateless=2")
		assert.Contains(t, buf.String(), "ads=1")
	})

	t.Run("logs and propagates failure", func(t *testing.T) {
		t.Parallel()

		next := &mock.Extractor{
			ExtractAllFn: func(ctx context.Context, document string, progress ythist.ExtractProgressFunc) ([]*ythist.Record, error) {
				return nil, errors.New("boom")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		_, err := ytslog.NewExtractor(next, logger).ExtractAll(context.Background(), "", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "extraction failed")
	})
}
