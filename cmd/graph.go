package cmd

import (
	"github.com/ddlsort/ddlsort/internal/ignore"
	"github.com/spf13/cobra"
)

var (
	graphFile   string
	graphIgnore string
)

var GraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the table dependency graph in Graphviz DOT form",
	Long: `Extract the table dependency graph from a SQL file and print it in
Graphviz DOT form. Pipe the output to dot to render it:

  ddlsort graph --file schema.sql | dot -Tsvg -o schema.svg`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		applyIgnoreEnv(cmd, &graphIgnore)
		return nil
	},
	RunE: runGraph,
}

func init() {
	GraphCmd.Flags().StringVar(&graphFile, "file", "", "SQL file to graph (required)")
	GraphCmd.Flags().StringVar(&graphIgnore, "ignore-file", ignore.FileName, "Path to the ignore file (optional, can also use DDLSORT_IGNORE_FILE env var)")
	GraphCmd.MarkFlagRequired("file")
}

func runGraph(cmd *cobra.Command, args []string) error {
	s, err := loadSchema(graphFile, graphIgnore)
	if err != nil {
		return err
	}
	return s.WriteDOT(cmd.OutOrStdout())
}
