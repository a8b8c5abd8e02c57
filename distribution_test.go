package ythist_test

import (
	"testing"
	"time"

	"github.com/rcoelho/ythist"
	"github.com/stretchr/testify/assert"
)

func TestHistory_Distribution(t *testing.T) {
	t.Parallel()

	t.Run("buckets views by hour, weekday, day and month", func(t *testing.T) {
		t.Parallel()

		// 2024-09-09 is a Monday.
		h := ythist.NewHistory([]*ythist.Record{
			rec("a", "Ch", ts(2024, time.September, 9, 22)),
			rec("b", "Ch", ts(2024, time.September, 9, 8)),
			rec("c", "Ch", ts(2024, time.December, 25, 8)),
		})

		d := h.Distribution()

		assert.Equal(t, 2, d.ByHour[8])
		assert.Equal(t, 1, d.ByHour[22])
		assert.Equal(t, 2, d.ByWeekday[time.Monday])
		assert.Equal(t, 1, d.ByWeekday[time.Wednesday])
		assert.Equal(t, 2, d.ByMonthDay[9-1])
		assert.Equal(t, 1, d.ByMonthDay[25-1])
		assert.Equal(t, 2, d.ByMonth[time.September-1])
		assert.Equal(t, 1, d.ByMonth[time.December-1])
	})

	t.Run("sparse data leaves zero-filled buckets in place", func(t *testing.T) {
		t.Parallel()

		d := ythist.NewHistory(nil).Distribution()

		assert.Len(t, d.ByHour, 24)
		assert.Len(t, d.ByWeekday, 7)
		assert.Len(t, d.ByMonthDay, 31)
		assert.Len(t, d.ByMonth, 12)
		for _, n := range d.ByHour {
			assert.Zero(t, n)
		}
	})

	t.Run("excludes dateless records and ads", func(t *testing.T) {
		t.Parallel()

		h := ythist.NewHistory([]*ythist.Record{
			rec("dateless", "Ch", nil),
			ad("promo", ts(2024, time.September, 9, 8)),
		})

		d := h.Distribution()

		assert.Zero(t, d.ByHour[8])
	})
}
