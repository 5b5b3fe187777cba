// Package ignore loads the optional .ddlsortignore file, which lists tables
// to leave out of the sorted output.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the default name of the ignore file, looked up in the current
// directory when no explicit path is given.
const FileName = ".ddlsortignore"

// Config holds glob-style patterns matched against normalized table names.
// A nil *Config means no filtering.
type Config struct {
	Tables []string
}

// tomlConfig mirrors the on-disk TOML structure:
//
//	[tables]
//	patterns = ["audit_*", "tmp_*"]
type tomlConfig struct {
	Tables tablePatterns `toml:"tables,omitempty"`
}

type tablePatterns struct {
	Patterns []string `toml:"patterns,omitempty"`
}

// Load reads an ignore file from path. A missing file is not an error; it
// returns a nil config, meaning nothing is ignored.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var parsed tomlConfig
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse ignore file %s: %w", path, err)
	}

	return &Config{Tables: parsed.Tables.Patterns}, nil
}

// MatchTable reports whether name matches any table pattern. Patterns support
// * and ? wildcards; a pattern starting with ! re-includes names an earlier
// pattern excluded. Names are matched case-insensitively since table keys are
// already normalized to lowercase.
func (c *Config) MatchTable(name string) bool {
	if c == nil {
		return false
	}
	name = strings.ToLower(name)

	matched := false
	for _, pattern := range c.Tables {
		if strings.HasPrefix(pattern, "!") {
			continue
		}
		if matchPattern(pattern, name) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	for _, pattern := range c.Tables {
		if !strings.HasPrefix(pattern, "!") {
			continue
		}
		if matchPattern(pattern[1:], name) {
			return false
		}
	}
	return true
}

// matchPattern matches a glob-style pattern against a name. An invalid
// pattern falls back to a literal comparison.
func matchPattern(pattern, name string) bool {
	matched, err := filepath.Match(strings.ToLower(pattern), name)
	if err != nil {
		return strings.ToLower(pattern) == name
	}
	return matched
}
