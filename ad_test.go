package ythist_test

import (
	"testing"

	"github.com/rcoelho/ythist"
	"github.com/stretchr/testify/assert"
)

func TestIsAd(t *testing.T) {
	t.Parallel()

	t.Run("matches the sponsored marker", func(t *testing.T) {
		t.Parallel()

		r := &ythist.Record{Title: "Promo", Detail: "De anúncios do Google"}

		assert.True(t, ythist.IsAd(r))
	})

	t.Run("marker match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		r := &ythist.Record{Title: "Promo", Detail: "de anúncios do google"}

		assert.False(t, ythist.IsAd(r))
	})

	t.Run("empty detail is not an ad", func(t *testing.T) {
		t.Parallel()

		assert.False(t, ythist.IsAd(&ythist.Record{Title: "Video"}))
	})
}
