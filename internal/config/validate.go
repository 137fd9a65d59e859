package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validModes = map[string]bool{
	"move": true, "copy": true, "link": true,
}

var validFallbacks = map[string]bool{
	"": true, "move": true, "copy": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validModes[c.Organize.Mode] {
		errs = append(errs, fmt.Sprintf("organize.mode: must be one of move, copy, link; got %q", c.Organize.Mode))
	}
	if !validFallbacks[c.Organize.Fallback] {
		errs = append(errs, fmt.Sprintf("organize.fallback: must be move or copy; got %q", c.Organize.Fallback))
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
