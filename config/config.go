// Package config handles configuration for the record vault core: field
// limits and the grant-duration bound, with defaults and an optional JSON
// overlay.
package config

import "github.com/dgolubev/recordvault/models"

// Config holds the validation limits and grant bounds.
//
// Fields:
//   - TitleMinLen / TitleMaxLen: allowed title length.
//   - IntegrityHashLen: exact required hash length (format is not validated).
//   - PayloadMinLen / PayloadMaxLen: allowed payload length.
//   - CategoryMinLen / CategoryMaxLen: allowed category length.
//   - TagsMinCount / TagsMaxCount: allowed tag list size.
//   - TagMinLen / TagMaxLen: allowed length of each tag.
//   - MaxGrantDuration: inclusive upper bound on grant duration, roughly one
//     year at a fixed block-time cadence.
type Config struct {
	TitleMinLen      int
	TitleMaxLen      int
	IntegrityHashLen int
	PayloadMinLen    int
	PayloadMaxLen    int
	CategoryMinLen   int
	CategoryMaxLen   int
	TagsMinCount     int
	TagsMaxCount     int
	TagMinLen        int
	TagMaxLen        int
	MaxGrantDuration models.Ticks
}

// LoadDefaults populates Config with the standard vault limits.
func (c *Config) LoadDefaults() {
	c.TitleMinLen = 1
	c.TitleMaxLen = 50
	c.IntegrityHashLen = 64
	c.PayloadMinLen = 1
	c.PayloadMaxLen = 200
	c.CategoryMinLen = 1
	c.CategoryMaxLen = 20
	c.TagsMinCount = 1
	c.TagsMaxCount = 5
	c.TagMinLen = 1
	c.TagMaxLen = 30
	c.MaxGrantDuration = 52560
}

// Load builds a Config by applying defaults and then overlaying values from
// an optional JSON file. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path != "" {
		if err := parseJson(cfg, path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
