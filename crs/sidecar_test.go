package crs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePrjEndsWithNewline(t *testing.T) {
	dir := t.TempDir()
	shp := filepath.Join(dir, "roads.shp")

	e, err := Resolve("UTM33")
	require.NoError(t, err)
	require.NoError(t, WritePrj(shp, e.WKT))

	got, err := os.ReadFile(filepath.Join(dir, "roads.prj"))
	require.NoError(t, err)
	assert.Equal(t, e.WKT+"\n", string(got))
}

func TestWriteCpgIfMissing(t *testing.T) {
	dir := t.TempDir()
	shp := filepath.Join(dir, "fresh.shp")

	require.NoError(t, WriteCpgIfMissing(shp))
	got, err := os.ReadFile(filepath.Join(dir, "fresh.cpg"))
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", string(got))
}

func TestWriteCpgKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	shp := filepath.Join(dir, "legacy.shp")
	cpg := filepath.Join(dir, "legacy.cpg")
	require.NoError(t, os.WriteFile(cpg, []byte("ISO-8859-1"), 0644))

	require.NoError(t, WriteCpgIfMissing(shp))
	got, err := os.ReadFile(cpg)
	require.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", string(got))
}

func TestApplyStampsAllShapefiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0755))
	for _, p := range []string{
		filepath.Join(dir, "a.shp"),
		filepath.Join(sub, "b.shp"),
		filepath.Join(dir, "notes.txt"),
	} {
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}

	e, err := Resolve("NTM/10")
	require.NoError(t, err)

	n, err := Apply(dir, e)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, p := range []string{
		filepath.Join(dir, "a.prj"),
		filepath.Join(sub, "b.prj"),
	} {
		got, rerr := os.ReadFile(p)
		require.NoError(t, rerr)
		assert.Equal(t, e.WKT+"\n", string(got))
	}
	_, err = os.Stat(filepath.Join(dir, "notes.prj"))
	assert.True(t, os.IsNotExist(err))

	got, err := os.ReadFile(filepath.Join(dir, "a.cpg"))
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", string(got))
}
