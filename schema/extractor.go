package schema

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/ddlsort/ddlsort/internal/logger"
	"github.com/ddlsort/ddlsort/internal/util"
)

// An identifier token is a run of word characters and dots, optionally wrapped
// in one quote character (double quote, single quote, backtick) on each side.
// This is the same token shape on the definition side and the reference side,
// which keeps quoted qualified names consistent between the two even when the
// token only captures the schema part.
var (
	spaceRuns   = regexp.MustCompile(`\s{2,}`)
	createTable = regexp.MustCompile("(?i)^create table\\s+([\"'`]?[\\w.]+[\"'`]?)")
	references  = regexp.MustCompile("(?i)references\\s+([\"'`]?[\\w.]+[\"'`]?)")
)

// Parse scans SQL text line by line and extracts every single-line CREATE
// TABLE statement into a Schema. Lines that do not start with the CREATE TABLE
// keywords are skipped. Referenced tables are not validated to exist here;
// unresolved references surface later, during Sort.
func Parse(r io.Reader) (*Schema, error) {
	s := NewSchema()

	scanner := bufio.NewScanner(r)
	// Generated dumps can put a whole table with dozens of columns on one
	// line, which overflows the default scanner buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := spaceRuns.ReplaceAllString(scanner.Text(), " ")

		m := createTable.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := util.NormalizeIdent(m[1])

		var refs []string
		for _, rm := range references.FindAllStringSubmatch(line, -1) {
			refs = append(refs, util.NormalizeIdent(rm[1]))
		}

		if _, seen := s.Definition(name); seen {
			logger.Get().Debug("duplicate table definition, keeping the later one", "table", name)
		}
		s.add(name, line, refs)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read SQL input: %w", err)
	}

	return s, nil
}
