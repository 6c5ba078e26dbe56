package config

// ValidLevels lists the accepted logging.level values.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted logging.format values.
var ValidFormats = []string{"json", "text"}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json, text
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // Off means every logger is a no-op
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled reports whether a category may log. Nothing logs outside
// debug mode; inside it, a category is on unless the map switches it off.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	on, listed := c.Categories[category]
	return !listed || on
}
