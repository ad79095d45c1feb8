package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammophone/domos/pkg/settings"
)

func countingSource(loads *map[string]int) settings.Source {
	return settings.SourceFunc(func(name string) (map[string]any, error) {
		(*loads)[name]++
		return map[string]any{"section": name}, nil
	})
}

func TestCacheConstruction(t *testing.T) {
	_, err := settings.NewCache(nil, 4)
	assert.Error(t, err)

	_, err = settings.NewCache(countingSource(&map[string]int{}), 0)
	assert.Error(t, err)
}

func TestCacheLoadsOnce(t *testing.T) {
	loads := map[string]int{}
	cache, err := settings.NewCache(countingSource(&loads), 4)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		section, err := cache.Section("billing")
		require.NoError(t, err)
		assert.Equal(t, "billing", section["section"])
	}
	assert.Equal(t, 1, loads["billing"])
	assert.Equal(t, 1, cache.Len())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	loads := map[string]int{}
	cache, err := settings.NewCache(countingSource(&loads), 2)
	require.NoError(t, err)

	_, err = cache.Section("a")
	require.NoError(t, err)
	_, err = cache.Section("b")
	require.NoError(t, err)

	// Touch "a" so "b" becomes the eviction candidate.
	_, err = cache.Section("a")
	require.NoError(t, err)

	_, err = cache.Section("c")
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())

	_, err = cache.Section("b")
	require.NoError(t, err)
	assert.Equal(t, 2, loads["b"])
	assert.Equal(t, 1, loads["a"])
}

func TestCacheInvalidate(t *testing.T) {
	loads := map[string]int{}
	cache, err := settings.NewCache(countingSource(&loads), 4)
	require.NoError(t, err)

	_, err = cache.Section("billing")
	require.NoError(t, err)
	cache.Invalidate("billing")
	_, err = cache.Section("billing")
	require.NoError(t, err)
	assert.Equal(t, 2, loads["billing"])

	// Invalidating an absent section is a no-op.
	cache.Invalidate("missing")
}

func TestCacheFlush(t *testing.T) {
	loads := map[string]int{}
	cache, err := settings.NewCache(countingSource(&loads), 4)
	require.NoError(t, err)

	_, err = cache.Section("a")
	require.NoError(t, err)
	_, err = cache.Section("b")
	require.NoError(t, err)

	cache.Flush()
	assert.Zero(t, cache.Len())

	_, err = cache.Section("a")
	require.NoError(t, err)
	assert.Equal(t, 2, loads["a"])
}

func TestCacheCopies(t *testing.T) {
	cache, err := settings.NewCache(countingSource(&map[string]int{}), 4)
	require.NoError(t, err)

	first, err := cache.Section("a")
	require.NoError(t, err)
	first["section"] = "mutated"

	second, err := cache.Section("a")
	require.NoError(t, err)
	assert.Equal(t, "a", second["section"])
}

func TestCacheSourceError(t *testing.T) {
	boom := errors.New("backend down")
	cache, err := settings.NewCache(settings.SourceFunc(func(string) (map[string]any, error) {
		return nil, boom
	}), 4)
	require.NoError(t, err)

	_, err = cache.Section("a")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, cache.Len())
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	doc := "billing:\n  currency: EUR\n  precision: 2\nmail:\n  host: smtp.example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	src := settings.NewFileSource(path)

	section, err := src.Section("billing")
	require.NoError(t, err)
	assert.Equal(t, "EUR", section["currency"])

	_, err = src.Section("reporting")
	assert.ErrorIs(t, err, settings.ErrSectionNotFound)

	missing := settings.NewFileSource(filepath.Join(dir, "absent.yaml"))
	_, err = missing.Section("billing")
	assert.Error(t, err)
}
