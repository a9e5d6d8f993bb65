package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tokapit/internal/batch"
	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
)

// tree writes a small site directory:
//
//	dir/a.json         valid default
//	dir/b.toml         outer radius inside the wall (errors)
//	dir/sub/c.toml     valid default
//	dir/sub/notes.txt  ignored by globs
func tree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, pit.WriteFile(filepath.Join(dir, "a.json"), pit.Default()))
	require.NoError(t, pit.WriteFile(filepath.Join(dir, "b.toml"), pit.Default().WithOuterRadius(9)))
	require.NoError(t, pit.WriteFile(filepath.Join(dir, "sub", "c.toml"), pit.Default()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "notes.txt"), []byte("x"), 0o644))

	return dir
}

func TestExpand(t *testing.T) {
	dir := tree(t)

	got, err := batch.Expand([]string{filepath.Join(dir, "**", "*")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.toml"),
		filepath.Join(dir, "sub", "c.toml"),
	}, got)

	got, err = batch.Expand([]string{
		filepath.Join(dir, "b.toml"),
		filepath.Join(dir, "*.{json,toml}"),
		filepath.Join(dir, "missing.json"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "b.toml"),
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "missing.json"),
	}, got)
}

func TestExpand_NoMatch(t *testing.T) {
	dir := tree(t)
	_, err := batch.Expand([]string{filepath.Join(dir, "**", "*.yaml")})
	require.ErrorIs(t, err, batch.ErrNoMatch)
}

func TestRun(t *testing.T) {
	dir := tree(t)
	paths := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.toml"),
		filepath.Join(dir, "missing.json"),
		filepath.Join(dir, "sub", "c.toml"),
	}

	for _, workers := range []int{0, 1, 3, 16} {
		res := batch.Run(context.Background(), paths, workers, nil)
		require.Len(t, res, len(paths))
		for i := range paths {
			assert.Equal(t, paths[i], res[i].Path)
		}

		assert.NoError(t, res[0].Err)
		assert.Empty(t, res[0].Findings)
		assert.False(t, res[0].Failed())

		assert.NoError(t, res[1].Err)
		assert.True(t, validate.HasErrors(res[1].Findings))
		assert.True(t, res[1].Failed())

		assert.Error(t, res[2].Err)
		assert.True(t, res[2].Failed())

		assert.False(t, res[3].Failed())
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := tree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := batch.Run(ctx, []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.toml")}, 1, nil)
	require.Len(t, res, 2)
	for _, r := range res {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.True(t, r.Failed())
	}
}

func TestRun_Empty(t *testing.T) {
	assert.Empty(t, batch.Run(context.Background(), nil, 4, nil))
}
