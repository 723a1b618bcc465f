package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgolubev/recordvault/models"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, non-zero fields are copied into
// the runtime Config, so a file may override any subset of limits.
type JsonConfig struct {
	TitleMinLen      int    `json:"title_min_len"`
	TitleMaxLen      int    `json:"title_max_len"`
	IntegrityHashLen int    `json:"integrity_hash_len"`
	PayloadMinLen    int    `json:"payload_min_len"`
	PayloadMaxLen    int    `json:"payload_max_len"`
	CategoryMinLen   int    `json:"category_min_len"`
	CategoryMaxLen   int    `json:"category_max_len"`
	TagsMinCount     int    `json:"tags_min_count"`
	TagsMaxCount     int    `json:"tags_max_count"`
	TagMinLen        int    `json:"tag_min_len"`
	TagMaxLen        int    `json:"tag_max_len"`
	MaxGrantDuration uint64 `json:"max_grant_duration"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. Zero-valued fields in the file leave the corresponding
// Config values untouched.
func parseJson(config *Config, path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if c.TitleMinLen > 0 {
		config.TitleMinLen = c.TitleMinLen
	}
	if c.TitleMaxLen > 0 {
		config.TitleMaxLen = c.TitleMaxLen
	}
	if c.IntegrityHashLen > 0 {
		config.IntegrityHashLen = c.IntegrityHashLen
	}
	if c.PayloadMinLen > 0 {
		config.PayloadMinLen = c.PayloadMinLen
	}
	if c.PayloadMaxLen > 0 {
		config.PayloadMaxLen = c.PayloadMaxLen
	}
	if c.CategoryMinLen > 0 {
		config.CategoryMinLen = c.CategoryMinLen
	}
	if c.CategoryMaxLen > 0 {
		config.CategoryMaxLen = c.CategoryMaxLen
	}
	if c.TagsMinCount > 0 {
		config.TagsMinCount = c.TagsMinCount
	}
	if c.TagsMaxCount > 0 {
		config.TagsMaxCount = c.TagsMaxCount
	}
	if c.TagMinLen > 0 {
		config.TagMinLen = c.TagMinLen
	}
	if c.TagMaxLen > 0 {
		config.TagMaxLen = c.TagMaxLen
	}
	if c.MaxGrantDuration > 0 {
		config.MaxGrantDuration = models.Ticks(c.MaxGrantDuration)
	}

	return nil
}
