package ythist_test

import (
	"testing"
	"time"

	"github.com/rcoelho/ythist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SearchTitles(t *testing.T) {
	t.Parallel()

	h := ythist.NewHistory([]*ythist.Record{
		rec("My Minecraft Mod Play", "Ch", ts(2022, time.March, 1, 10)),
		rec("Epic Tutorial Box Setup", "Ch", ts(2021, time.March, 1, 10)),
		rec("Tutorial only", "Ch", ts(2020, time.March, 1, 10)),
	})

	t.Run("groups are OR'ed, terms are AND'ed", func(t *testing.T) {
		t.Parallel()

		got := h.SearchTitles("play mod, tutorial box")

		require.Len(t, got, 2)
		titles := []string{got[0].Title, got[1].Title}
		assert.Contains(t, titles, "My Minecraft Mod Play")
		assert.Contains(t, titles, "Epic Tutorial Box Setup")
		assert.NotContains(t, titles, "Tutorial only")
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		got := h.SearchTitles("MINECRAFT")

		require.Len(t, got, 1)
		assert.Equal(t, "My Minecraft Mod Play", got[0].Title)
	})

	t.Run("results sort ascending by view date", func(t *testing.T) {
		t.Parallel()

		got := h.SearchTitles("tutorial")

		require.Len(t, got, 2)
		assert.Equal(t, "Tutorial only", got[0].Title)
		assert.Equal(t, "Epic Tutorial Box Setup", got[1].Title)
	})

	t.Run("empty and whitespace-only queries return empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, h.SearchTitles(""))
		assert.Empty(t, h.SearchTitles("   "))
		assert.Empty(t, h.SearchTitles(" , ,, "))
	})

	t.Run("dateless matches sort last without crashing", func(t *testing.T) {
		t.Parallel()

		h := ythist.NewHistory([]*ythist.Record{
			rec("tutorial sem data", "Ch", nil),
			rec("tutorial com data", "Ch", ts(2021, time.March, 1, 10)),
		})

		got := h.SearchTitles("tutorial")

		require.Len(t, got, 2)
		assert.Equal(t, "tutorial com data", got[0].Title)
		assert.Equal(t, "tutorial sem data", got[1].Title)
	})
}
