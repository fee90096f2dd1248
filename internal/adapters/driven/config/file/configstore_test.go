package file

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".lexi", "config.toml"), store.Path())

	info, err := os.Stat(filepath.Join(home, ".lexi"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_Getters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("s", "hello"))
	require.NoError(t, store.Set("i", 42))
	require.NoError(t, store.Set("f", 2.5))
	require.NoError(t, store.Set("b", true))

	assert.Equal(t, "hello", store.GetString("s"))
	assert.Equal(t, 42, store.GetInt("i"))
	assert.InDelta(t, 2.5, store.GetFloat("f"), 0.0001)
	assert.InDelta(t, 42.0, store.GetFloat("i"), 0.0001)
	assert.True(t, store.GetBool("b"))

	// Wrong types and missing keys fall back to zero values.
	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.Zero(t, store.GetFloat("s"))
	assert.False(t, store.GetBool("s"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("dictionary.base_url", "http://localhost:9999"))
	require.NoError(t, store.Set("dictionary.rate_limit", 1.5))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[dictionary]")
	assert.Contains(t, string(data), "base_url = ")
	assert.Contains(t, string(data), "http://localhost:9999")

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", reopened.GetString("dictionary.base_url"))
	assert.InDelta(t, 1.5, reopened.GetFloat("dictionary.rate_limit"), 0.0001)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Load_HandEditedFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[dictionary]\nbase_url = \"https://example.test/api\"\nrate_limit = 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/api", store.GetString("dictionary.base_url"))
	assert.InDelta(t, 2.0, store.GetFloat("dictionary.rate_limit"), 0.0001)
}

func TestConfigStore_Load_MissingFileResets(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))
	require.NoError(t, os.Remove(store.Path()))

	require.NoError(t, store.Load())

	_, ok := store.Get("key")
	assert.False(t, ok)
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"dictionary": map[string]any{
			"base_url": "u",
			"limits":   map[string]any{"rate": 1.0},
		},
		"top": true,
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"dictionary.base_url":    "u",
		"dictionary.limits.rate": 1.0,
		"top":                    true,
	}, flat)

	assert.Equal(t, nested, nestMap(flat))
}

func TestConfigStore_IsConfigChange(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	other := filepath.Join(filepath.Dir(store.Path()), "other.toml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write config", fsnotify.Event{Name: store.Path(), Op: fsnotify.Write}, true},
		{"create config", fsnotify.Event{Name: store.Path(), Op: fsnotify.Create}, true},
		{"write and chmod", fsnotify.Event{Name: store.Path(), Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"chmod only", fsnotify.Event{Name: store.Path(), Op: fsnotify.Chmod}, false},
		{"remove config", fsnotify.Event{Name: store.Path(), Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: other, Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.isConfigChange(tt.event))
		})
	}
}

func TestConfigStore_Watch_ReloadsOnWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() { changes.Add(1) })
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	content := "[dictionary]\nbase_url = \"http://reloaded.test\"\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	assert.Eventually(t, func() bool {
		return changes.Load() > 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "http://reloaded.test", store.GetString("dictionary.base_url"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
