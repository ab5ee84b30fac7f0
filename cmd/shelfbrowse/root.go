package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	catalog string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "shelfbrowse",
		Short:         "Shelfbrowse is an interactive book catalog browser for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Running with no subcommand launches the browser.
			return browseCmdRunner(browseOptions{
				CatalogPath: flags.catalog,
				Verbose:     flags.verbose,
			})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.catalog, "catalog", "c", "catalog.yaml", "Path to the catalog file")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
