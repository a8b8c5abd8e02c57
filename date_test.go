package ythist_test

import (
	"testing"
	"time"

	"github.com/rcoelho/ythist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewDate(t *testing.T) {
	t.Parallel()

	t.Run("parses a full localized date with timezone token", func(t *testing.T) {
		t.Parallel()

		got, err := ythist.ParseViewDate("9 de set. de 2024, 22:16:56 BRT")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.September, 9, 22, 16, 56, 0, time.UTC), got)
	})

	t.Run("zero-padded day parses identically", func(t *testing.T) {
		t.Parallel()

		padded, err := ythist.ParseViewDate("09 de set. de 2024, 22:16:56 BRT")
		require.NoError(t, err)

		plain, err := ythist.ParseViewDate("9 de set. de 2024, 22:16:56 BRT")
		require.NoError(t, err)

		assert.Equal(t, plain, padded)
	})

	t.Run("month lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()

		got, err := ythist.ParseViewDate("1 de Fev. de 2023, 08:00:00")

		require.NoError(t, err)
		assert.Equal(t, time.February, got.Month())
	})

	t.Run("parses every month abbreviation", func(t *testing.T) {
		t.Parallel()

		abbrevs := []string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."}
		for i, abbrev := range abbrevs {
			got, err := ythist.ParseViewDate("15 de " + abbrev + " de 2022, 12:30:00")
			require.NoError(t, err, "month %q", abbrev)
			assert.Equal(t, time.Month(i+1), got.Month())
		}
	})

	t.Run("unknown month abbreviation fails without panicking", func(t *testing.T) {
		t.Parallel()

		_, err := ythist.ParseViewDate("9 de xyz. de 2024, 22:16:56")

		require.Error(t, err)
		assert.Equal(t, ythist.EINVALID, ythist.ErrorCode(err))
	})

	t.Run("unrecognized shape fails", func(t *testing.T) {
		t.Parallel()

		_, err := ythist.ParseViewDate("September 9, 2024 10:16 PM")

		require.Error(t, err)
		assert.Equal(t, ythist.EINVALID, ythist.ErrorCode(err))
	})

	t.Run("out-of-range components fail", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"32 de jan. de 2024, 10:00:00",
			"30 de fev. de 2024, 10:00:00",
			"9 de set. de 2024, 25:16:56",
			"9 de set. de 2024, 22:61:56",
		} {
			_, err := ythist.ParseViewDate(raw)
			assert.Error(t, err, "raw %q", raw)
		}
	})
}

func TestMatchViewDate(t *testing.T) {
	t.Parallel()

	t.Run("finds the date substring inside surrounding text", func(t *testing.T) {
		t.Parallel()

		text := "Vídeo legal Canal X 9 de set. de 2024, 22:16:56 BRT"

		assert.Equal(t, "9 de set. de 2024, 22:16:56", ythist.MatchViewDate(text))
	})

	t.Run("returns empty when no date is present", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ythist.MatchViewDate("Assistiu a um vídeo que foi removido"))
	})
}
