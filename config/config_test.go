package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgolubev/recordvault/models"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.TitleMinLen, 1)
	assert.Equal(t, c.TitleMaxLen, 50)
	assert.Equal(t, c.IntegrityHashLen, 64)
	assert.Equal(t, c.PayloadMinLen, 1)
	assert.Equal(t, c.PayloadMaxLen, 200)
	assert.Equal(t, c.CategoryMinLen, 1)
	assert.Equal(t, c.CategoryMaxLen, 20)
	assert.Equal(t, c.TagsMinCount, 1)
	assert.Equal(t, c.TagsMaxCount, 5)
	assert.Equal(t, c.TagMinLen, 1)
	assert.Equal(t, c.TagMaxLen, 30)
	assert.Equal(t, c.MaxGrantDuration, models.Ticks(52560))
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, c.TitleMaxLen, 50)
	assert.Equal(t, c.MaxGrantDuration, models.Ticks(52560))
}

func TestLoad_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"title_max_len": 80, "max_grant_duration": 100000}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, c.TitleMaxLen, 80)
	assert.Equal(t, c.MaxGrantDuration, models.Ticks(100000))

	// Untouched fields keep their defaults.
	assert.Equal(t, c.TitleMinLen, 1)
	assert.Equal(t, c.IntegrityHashLen, 64)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
