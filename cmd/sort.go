package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ddlsort/ddlsort/internal/color"
	"github.com/ddlsort/ddlsort/internal/ignore"
	"github.com/ddlsort/ddlsort/internal/include"
	"github.com/ddlsort/ddlsort/internal/logger"
	"github.com/ddlsort/ddlsort/internal/util"
	"github.com/ddlsort/ddlsort/schema"
	"github.com/spf13/cobra"
)

var (
	sortFile    string
	sortOutput  string
	sortIgnore  string
	sortNoColor bool
)

var SortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort CREATE TABLE statements in dependency order",
	Long: `Read a SQL file containing single-line CREATE TABLE statements and write
them back out so that every table appears after the tables it references.

Lines that are not single-line CREATE TABLE statements are dropped. psql-style
\i directives are resolved before extraction, so a schema split across files
sorts as one batch.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		applyIgnoreEnv(cmd, &sortIgnore)
		return nil
	},
	RunE: runSort,
}

func init() {
	SortCmd.Flags().StringVar(&sortFile, "file", "", "SQL file to sort (required)")
	SortCmd.Flags().StringVar(&sortOutput, "output", "", "Write sorted statements to this file instead of stdout")
	SortCmd.Flags().StringVar(&sortIgnore, "ignore-file", ignore.FileName, "Path to the ignore file (optional, can also use DDLSORT_IGNORE_FILE env var)")
	SortCmd.Flags().BoolVar(&sortNoColor, "no-color", false, "Disable colored output")
	SortCmd.MarkFlagRequired("file")
}

func runSort(cmd *cobra.Command, args []string) error {
	s, err := loadSchema(sortFile, sortIgnore)
	if err != nil {
		return err
	}
	logger.Get().Info("extracted tables", "file", sortFile, "count", s.Len())

	lines, err := s.Sort()
	if err != nil {
		var unresolved *schema.UnresolvedError
		if errors.As(err, &unresolved) {
			reportUnresolved(cmd, unresolved)
		}
		return err
	}

	var out strings.Builder
	for _, line := range lines {
		out.WriteString(line)
		out.WriteString("\n")
	}

	if sortOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), out.String())
		return nil
	}
	if err := os.WriteFile(sortOutput, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", sortOutput, err)
	}
	logger.Get().Info("wrote sorted statements", "file", sortOutput, "count", len(lines))
	return nil
}

// loadSchema reads a SQL file with include resolution, extracts its tables,
// and applies the ignore configuration when one is present.
func loadSchema(file, ignorePath string) (*schema.Schema, error) {
	content, err := include.NewProcessor(filepath.Dir(file)).ProcessFile(file)
	if err != nil {
		return nil, err
	}

	s, err := schema.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	cfg, err := ignore.Load(ignorePath)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		before := s.Len()
		s.Exclude(cfg.MatchTable)
		logger.Get().Debug("applied ignore patterns", "dropped", before-s.Len())
	}
	return s, nil
}

// applyIgnoreEnv falls back to the DDLSORT_IGNORE_FILE environment variable
// when the --ignore-file flag was not set explicitly.
func applyIgnoreEnv(cmd *cobra.Command, target *string) {
	if !cmd.Flags().Changed("ignore-file") {
		*target = util.GetEnvWithDefault("DDLSORT_IGNORE_FILE", *target)
	}
}

func reportUnresolved(cmd *cobra.Command, unresolved *schema.UnresolvedError) {
	c := color.New(!sortNoColor)
	w := cmd.ErrOrStderr()

	fmt.Fprintln(w, c.Bold("tables with circular or unresolved dependencies:"))
	for _, name := range unresolved.Stuck {
		fmt.Fprintf(w, "  %s\n", c.Stuck(name))
	}
	if len(unresolved.Missing) > 0 {
		fmt.Fprintln(w, c.Bold("referenced but never defined:"))
		for _, name := range unresolved.Missing {
			fmt.Fprintf(w, "  %s\n", c.Missing(name))
		}
	}
}
