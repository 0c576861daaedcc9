package questiontag

import (
	"fmt"
	"os"
	"strings"
)

// Output formats understood by the CLI.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds the extraction settings.
type Config struct {
	// Tag is the name of the tag wrapping the payload.
	// Default: "Generated Question".
	Tag string

	// Format selects the output rendering: "json" or "text".
	Format string
}

// DefaultConfig returns a Config with the standard tag and JSON output.
func DefaultConfig() Config {
	return Config{
		Tag:    DefaultTag,
		Format: FormatJSON,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if t := os.Getenv("QUESTIONTAG_TAG"); strings.TrimSpace(t) != "" {
		cfg.Tag = t
	}
	if f := os.Getenv("QUESTIONTAG_FORMAT"); f != "" {
		cfg.Format = strings.ToLower(f)
	}

	return cfg
}

// Validate checks that the tag is set and the format is known.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Tag) == "" {
		return fmt.Errorf("tag name must not be empty")
	}
	switch c.Format {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("unknown output format: %q", c.Format)
	}
	return nil
}
