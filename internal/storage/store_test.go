package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tabula/internal/config"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	st := New(t.TempDir(), 0, nil)
	require.NoError(t, st.Init())
	return st
}

func line(name string, ys ...float64) *config.Table {
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}
	return &config.Table{
		Name:   name,
		Axes:   []config.AxisSpec{{Name: "x", Values: xs}},
		Values: ys,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.Save(line("ramp", 0, 2, 4)))
	got, err := st.Load("ramp")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4}, got.Values)

	_, err = st.Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreInvalidName(t *testing.T) {
	st := newStore(t)
	for _, name := range []string{"", "../escape", `a\b`, ".."} {
		_, err := st.Load(name)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestStoreList(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Save(line("b", 1, 2)))
	require.NoError(t, st.Save(config.GetPreset("drag-polar")))
	require.NoError(t, os.WriteFile(filepath.Join(st.baseDir, "broken.yaml"), []byte("name: [\n"), 0644))

	tables, err := st.List()
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "b", tables[0].Name)
	assert.Equal(t, "drag-polar", tables[1].Name)
	assert.Equal(t, 2, tables[1].Rank)
	assert.Equal(t, []string{"mach", "cl"}, tables[1].Axes)
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"), 0, nil)
	tables, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestStoreInterpolatorCache(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Save(line("ramp", 0, 2, 4)))

	m1, err := st.Interpolator("ramp")
	require.NoError(t, err)
	m2, err := st.Interpolator("ramp")
	require.NoError(t, err)
	assert.Same(t, m1, m2)
	assert.Equal(t, 3.0, m1.MustEval(1.5))

	require.NoError(t, st.Save(line("ramp", 0, 1, 2)))
	m3, err := st.Interpolator("ramp")
	require.NoError(t, err)
	assert.NotSame(t, m1, m3)
	assert.Equal(t, 1.5, m3.MustEval(1.5))

	require.NoError(t, st.Delete("ramp"))
	_, err = st.Interpolator("ramp")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, st.Delete("ramp"), ErrNotFound)
}

func TestStoreImport(t *testing.T) {
	st := newStore(t)
	src := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(src, []byte("0 10 100\n1 20 200\n2 30 300\n"), 0644))

	tbl, err := st.Import("cols", src, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, tbl.Axes[0].Values)
	assert.Equal(t, []float64{100, 200, 300}, tbl.Values)

	m, err := st.Interpolator("cols")
	require.NoError(t, err)
	assert.Equal(t, 150.0, m.MustEval(0.5))
}
