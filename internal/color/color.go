// Package color provides minimal ANSI coloring for CLI failure reports.
package color

import (
	"os"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	yellow = "\033[33m"
	bold   = "\033[1m"
)

// Color colorizes strings when enabled. The zero value is disabled.
type Color struct {
	enabled bool
}

// New creates a colorizer. Even when enabled is true, color is suppressed for
// dumb terminals and when NO_COLOR is set (https://no-color.org/).
func New(enabled bool) *Color {
	return &Color{enabled: enabled && shouldEnableColor()}
}

func shouldEnableColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}
	return true
}

// Stuck colors a blocked table name red.
func (c *Color) Stuck(text string) string {
	if !c.enabled {
		return text
	}
	return red + text + reset
}

// Missing colors a never-defined reference yellow.
func (c *Color) Missing(text string) string {
	if !c.enabled {
		return text
	}
	return yellow + text + reset
}

// Bold emphasizes headings.
func (c *Color) Bold(text string) string {
	if !c.enabled {
		return text
	}
	return bold + text + reset
}
