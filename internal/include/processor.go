// Package include resolves psql-style \i directives so that a schema split
// across several files can be sorted as a single batch.
package include

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// directive matches a psql include line: \i path, with an optional trailing
// semicolon.
var directive = regexp.MustCompile(`^\s*\\i\s+([^\s;]+)\s*;?\s*$`)

// Processor expands \i directives recursively. Included paths are resolved
// relative to the including file and must stay inside the base directory of
// the top-level file.
type Processor struct {
	baseDir string
	active  map[string]bool
}

// NewProcessor returns a processor rooted at baseDir. The base directory is
// replaced by the input file's directory on each ProcessFile call.
func NewProcessor(baseDir string) *Processor {
	return &Processor{
		baseDir: baseDir,
		active:  make(map[string]bool),
	}
}

// ProcessFile reads filename and returns its content with every \i directive
// replaced by the content of the included file, recursively.
func (p *Processor) ProcessFile(filename string) (string, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", filename, err)
	}

	p.baseDir = filepath.Dir(absPath)
	p.active = make(map[string]bool)

	return p.expand(absPath)
}

// expand reads one file and splices in its includes. The active map tracks
// the current include chain; a file including itself, directly or through
// intermediaries, is an error. It is unmarked on return so the same file may
// still be included from sibling branches.
func (p *Processor) expand(filename string) (string, error) {
	if p.active[filename] {
		return "", fmt.Errorf("circular include detected: %s", filename)
	}
	p.active[filename] = true
	defer delete(p.active, filename)

	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}

	currentDir := filepath.Dir(filename)
	lines := strings.Split(string(content), "\n")
	var out strings.Builder

	for i, line := range lines {
		m := directive.FindStringSubmatch(line)
		if m == nil {
			out.WriteString(line)
			if i < len(lines)-1 {
				out.WriteString("\n")
			}
			continue
		}

		resolved, err := p.resolve(m[1], currentDir)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		included, err := p.expand(resolved)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		out.WriteString(included)
		if !strings.HasSuffix(included, "\n") {
			out.WriteString("\n")
		}
	}

	return out.String(), nil
}

// resolve turns an include path into an absolute path under the base
// directory. Paths escaping the base directory are rejected.
func (p *Processor) resolve(includePath, currentDir string) (string, error) {
	cleanPath := filepath.Clean(includePath)
	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("directory traversal not allowed: %s", includePath)
	}

	absPath, err := filepath.Abs(filepath.Join(currentDir, cleanPath))
	if err != nil {
		return "", fmt.Errorf("failed to resolve include path %s: %w", includePath, err)
	}

	baseAbs, err := filepath.Abs(p.baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	relPath, err := filepath.Rel(baseAbs, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("include path %s is outside the base directory %s", includePath, p.baseDir)
	}

	if _, err := os.Stat(absPath); err != nil {
		return "", fmt.Errorf("included file %s: %w", includePath, err)
	}
	return absPath, nil
}
