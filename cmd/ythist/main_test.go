package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/rcoelho/ythist/cmd/ythist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExport = `<!DOCTYPE html><html><body>
<div class="outer-cell mdl-cell mdl-cell--12-col">
<div class="content-cell mdl-typography--body-1">Assistiu a
<a href="https://www.youtube.com/watch?v=a">Receita de bolo</a><br>
<a href="https://www.youtube.com/channel/UCcook">Cozinha Fácil</a><br>
9 de set. de 2024, 22:16:56 BRT</div>
</div>
<div class="outer-cell mdl-cell mdl-cell--12-col">
<div class="content-cell mdl-typography--body-1">Assistiu a
<a href="https://www.youtube.com/watch?v=a">Receita de bolo</a><br>
<a href="https://www.youtube.com/channel/UCcook">Cozinha Fácil</a><br>
10 de set. de 2024, 08:00:00 BRT</div>
</div>
<div class="outer-cell mdl-cell mdl-cell--12-col">
<div class="content-cell mdl-typography--body-1">Assistiu a
<a href="https://www.youtube.com/watch?v=b">Propaganda qualquer</a><br>
11 de set. de 2024, 09:00:00 BRT</div>
<div class="content-cell mdl-typography--caption"><b>Detalhes:</b><br>De anúncios do Google<br></div>
</div>
</body></html>`

// newTestMain returns a Main wired to a temp database and the export file
// path it can parse.
func newTestMain(t *testing.T) (*main.Main, string) {
	t.Helper()

	dir := t.TempDir()
	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "test.db")

	exportPath := filepath.Join(dir, "historico.html")
	require.NoError(t, os.WriteFile(exportPath, []byte(testExport), 0644))

	return m, exportPath
}

func runCmd(t *testing.T, m *main.Main, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_ParseAndQuery(t *testing.T) {
	t.Parallel()

	m, exportPath := newTestMain(t)

	out, err := runCmd(t, m, "parse", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Extracted 3 records")

	t.Run("top videos excludes the ad", func(t *testing.T) {
		out, err := runCmd(t, m, "top", "videos")
		require.NoError(t, err)
		assert.Contains(t, out, "Receita de bolo - 2 views")
		assert.NotContains(t, out, "Propaganda")
	})

	t.Run("first lists earliest views in order", func(t *testing.T) {
		out, err := runCmd(t, m, "first", "-n", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "9 de set. de 2024, 22:16:56")
	})

	t.Run("day reports zero results without error", func(t *testing.T) {
		out, err := runCmd(t, m, "day", "1999-01-01")
		require.NoError(t, err)
		assert.Contains(t, out, "0 videos on 1999-01-01")
	})

	t.Run("day rejects malformed dates", func(t *testing.T) {
		_, err := runCmd(t, m, "day", "not-a-date")
		assert.Error(t, err)
	})

	t.Run("search matches boolean groups", func(t *testing.T) {
		out, err := runCmd(t, m, "search", "receita bolo, inexistente")
		require.NoError(t, err)
		assert.Contains(t, out, "2 matches")
	})

	t.Run("ads reports count and percentage", func(t *testing.T) {
		out, err := runCmd(t, m, "ads")
		require.NoError(t, err)
		assert.Contains(t, out, "1 ads out of 3 records (33.33%)")
	})

	t.Run("channels lists the day's channels", func(t *testing.T) {
		out, err := runCmd(t, m, "channels", "2024-09-09")
		require.NoError(t, err)
		assert.Contains(t, out, "Cozinha Fácil")
	})
}

func TestRun_ParseWithCache(t *testing.T) {
	t.Parallel()

	m, exportPath := newTestMain(t)
	cachePath := filepath.Join(t.TempDir(), "cache.txt")

	_, err := runCmd(t, m, "parse", exportPath, "--write-cache", cachePath)
	require.NoError(t, err)

	out, err := runCmd(t, m, "--cache", cachePath, "top", "videos")
	require.NoError(t, err)
	// Detail text is not cached, so the ad is not filtered out here.
	assert.Contains(t, out, "Receita de bolo - 2 views")
	assert.Contains(t, out, "Propaganda qualquer - 1 views")
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	_, err := runCmd(t, m)
	assert.Error(t, err)
}

func TestRun_MissingExportFile(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	_, err := runCmd(t, m, "parse", filepath.Join(t.TempDir(), "nope.html"))
	assert.Error(t, err)
}
