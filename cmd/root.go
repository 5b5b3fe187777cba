package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ddlsort/ddlsort/internal/logger"
	"github.com/ddlsort/ddlsort/internal/version"
	"github.com/spf13/cobra"
)

var Debug bool

// Build-time variables set via ldflags
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var RootCmd = &cobra.Command{
	Use:   "ddlsort",
	Short: "Sort SQL CREATE TABLE statements by foreign key dependencies",
	Long: fmt.Sprintf(`ddlsort reorders a batch of CREATE TABLE statements so that every table
appears after the tables it references, letting the output execute top to
bottom without foreign key violations.

Version: %s@%s %s %s

Commands:
  sort     Sort CREATE TABLE statements in dependency order
  graph    Print the table dependency graph in Graphviz DOT form
  version  Show version information

Use "ddlsort [command] --help" for more information about a command.`,
		version.App(), GitCommit, version.Platform(), BuildDate),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
	RootCmd.AddCommand(SortCmd)
	RootCmd.AddCommand(GraphCmd)
	RootCmd.AddCommand(VersionCmd)
}

func setupLogger() {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger.SetGlobal(slog.New(handler))
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
