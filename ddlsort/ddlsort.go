// Package ddlsort provides a programmatic API for dependency-ordering SQL
// CREATE TABLE statements. Given a batch of single-line CREATE TABLE
// statements, it returns them reordered so that every table appears after the
// tables it references via foreign keys, ready to execute top to bottom.
package ddlsort

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ddlsort/ddlsort/internal/ignore"
	"github.com/ddlsort/ddlsort/internal/include"
	"github.com/ddlsort/ddlsort/schema"
)

// SortSQL extracts every single-line CREATE TABLE statement from sql and
// returns the definition lines in dependency order. On circular or unresolved
// dependencies the error is a *schema.UnresolvedError naming the blocked
// tables.
func SortSQL(sql string, opts SortOptions) ([]string, error) {
	s, err := schema.Parse(strings.NewReader(sql))
	if err != nil {
		return nil, err
	}
	return sortSchema(s, opts)
}

// SortFile reads the SQL file at path, resolves psql-style \i include
// directives relative to it, and returns the definition lines in dependency
// order.
func SortFile(path string, opts SortOptions) ([]string, error) {
	content, err := include.NewProcessor(filepath.Dir(path)).ProcessFile(path)
	if err != nil {
		return nil, err
	}
	return SortSQL(content, opts)
}

// WriteGraph extracts the reference graph from sql and writes it to w in
// Graphviz DOT form.
func WriteGraph(w io.Writer, sql string, opts SortOptions) error {
	s, err := schema.Parse(strings.NewReader(sql))
	if err != nil {
		return err
	}
	if err := applyIgnore(s, opts); err != nil {
		return err
	}
	return s.WriteDOT(w)
}

func sortSchema(s *schema.Schema, opts SortOptions) ([]string, error) {
	if err := applyIgnore(s, opts); err != nil {
		return nil, err
	}
	return s.Sort()
}

func applyIgnore(s *schema.Schema, opts SortOptions) error {
	if opts.IgnoreFile == "" {
		return nil
	}
	cfg, err := ignore.Load(opts.IgnoreFile)
	if err != nil {
		return err
	}
	if cfg != nil {
		s.Exclude(cfg.MatchTable)
	}
	return nil
}
