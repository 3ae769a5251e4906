package file

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".leetgen"), dir)
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[databases]
dir = "/srv/questions"
files = ["main-question-database.json", "extra.yaml"]

[generate]
format = "json"
count = 3

[history]
enabled = false
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/questions", store.GetString("databases.dir"))
	assert.Equal(t, []string{"main-question-database.json", "extra.yaml"}, store.GetStringSlice("databases.files"))
	assert.Equal(t, "json", store.GetString("generate.format"))
	assert.Equal(t, 3, store.GetInt("generate.count"))
	assert.False(t, store.GetBool("history.enabled"))
	_, ok := store.Get("history.enabled")
	assert.True(t, ok)
	assert.Equal(t, []string{
		"databases.dir", "databases.files", "generate.count", "generate.format", "history.enabled",
	}, store.Keys())
}

func TestConfigStore_SaveWritesTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("generate.format", "markdown"))
	require.NoError(t, store.Set("generate.count", 2))
	require.NoError(t, store.Set("github.repo", "owner/repo"))
	require.NoError(t, store.Save())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "[generate]")
	assert.Contains(t, content, "[github]")
	assert.NotContains(t, content, "'generate.format'")
}

func TestConfigStore_SaveReload_PreservesData(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("databases.files", []string{"a.json", "b.json"}))
	require.NoError(t, store.Set("progression.count", 4))
	require.NoError(t, store.Set("history.enabled", true))
	require.NoError(t, store.Set("top", "level"))
	require.NoError(t, store.Save())

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.json", "b.json"}, reloaded.GetStringSlice("databases.files"))
	assert.Equal(t, 4, reloaded.GetInt("progression.count"))
	assert.True(t, reloaded.GetBool("history.enabled"))
	assert.Equal(t, "level", reloaded.GetString("top"))
}

func TestConfigStore_SetDoesNotPersistUntilSave(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("generate.count", 5))

	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestConfigStore_Set_InvalidKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".a", "a.", "a..b"} {
		assert.Error(t, store.Set(key, 1), "key %q", key)
	}
}

func TestConfigStore_Save_ConflictingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("generate", "flat"))
	require.NoError(t, store.Set("generate.count", 1))

	err = store.Save()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate")
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("github.token", "secret"))
	require.NoError(t, store.Delete("github.token"))
	require.NoError(t, store.Delete("never.set"))
	require.NoError(t, store.Save())

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok := reloaded.Get("github.token")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("int64", int64(9)))
	require.NoError(t, store.Set("numeric", " 12 "))
	require.NoError(t, store.Set("word", "many"))
	require.NoError(t, store.Set("yes", "true"))
	require.NoError(t, store.Set("num", 1))

	assert.Equal(t, 9, store.GetInt("int64"))
	assert.Equal(t, 12, store.GetInt("numeric"))
	assert.Equal(t, 0, store.GetInt("word"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.True(t, store.GetBool("yes"))
	assert.False(t, store.GetBool("num"))
	assert.Empty(t, store.GetString("num"))
	assert.Nil(t, store.GetStringSlice("word"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Unix permissions only")
	}
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("github.token", "secret"))
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[unclosed"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("generate.count", i)
		}()
		go func() {
			defer wg.Done()
			_ = store.GetInt("generate.count")
			_ = store.Keys()
		}()
	}
	wg.Wait()

	require.NoError(t, store.Save())
}
