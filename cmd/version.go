package cmd

import (
	"fmt"

	"github.com/ddlsort/ddlsort/internal/version"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version number of ddlsort",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ddlsort v%s@%s %s %s\n",
			version.App(), GitCommit, version.Platform(), BuildDate)
	},
}
