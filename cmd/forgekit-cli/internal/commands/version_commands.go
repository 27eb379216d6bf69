package commands

import (
	"fmt"

	"forgekit/internal/buildinfo"

	"github.com/spf13/cobra"
)

// InitVersionCommands registers the version command
func InitVersionCommands(rootCmd *cobra.Command) error {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(buildinfo.String())
		},
	}
	rootCmd.AddCommand(versionCmd)

	return nil
}
