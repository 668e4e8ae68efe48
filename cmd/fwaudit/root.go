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
		Use:           "fwaudit",
		Short:         "fwaudit verifies firewall configuration parameters against a baseline",
		Long: `fwaudit connects to a firewall over SSH, runs the read-only query commands
declared in a baseline, extracts the current parameter values from the
command output, and reports which parameters match their expected values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.catalog, "catalog", defaultCatalogPath(), "Path to the parameter catalog database")

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newParamsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
