package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fwaudit/fwaudit/internal/store"
)

func defaultCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fwaudit-catalog.db"
	}
	return filepath.Join(home, ".fwaudit", "catalog.db")
}

func newParamsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Manage the parameter catalog",
		Long: `Params manages the SQLite catalog of check definitions. The catalog is an
alternative to YAML baselines for teams that curate parameters centrally;
run checks against it with 'fwaudit check --from-catalog'.`,
	}

	cmd.AddCommand(newParamsListCmd(root))
	cmd.AddCommand(newParamsShowCmd(root))
	cmd.AddCommand(newParamsAddCmd(root))
	cmd.AddCommand(newParamsRemoveCmd(root))
	cmd.AddCommand(newParamsExportCmd(root))
	cmd.AddCommand(newParamsImportCmd(root))
	cmd.AddCommand(newParamsResetCmd(root))

	return cmd
}

func openCatalog(root *rootFlags) (*store.Store, error) {
	return store.Open(root.catalog)
}

func newParamsListCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(root)
			if err != nil {
				return err
			}
			defer catalog.Close()

			entries, err := catalog.List()
			if err != nil {
				return err
			}

			fmt.Printf("%-28s %-8s %-32s %s\n", "NAME", "TYPE", "QUERY COMMAND", "EXPECTED")
			for _, e := range entries {
				fmt.Printf("%-28s %-8s %-32s %s\n",
					e.Name, e.ResultType, e.QueryCommand, strings.Join(e.Expected, ", "))
			}
			fmt.Printf("\n%d parameter(s)\n", len(entries))
			return nil
		},
	}
}

func newParamsShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one catalog parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(root)
			if err != nil {
				return err
			}
			defer catalog.Close()

			e, err := catalog.Get(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Name:          %s\n", e.Name)
			fmt.Printf("Description:   %s\n", e.Description)
			fmt.Printf("Query command: %s\n", e.QueryCommand)
			fmt.Printf("Expected:      %s\n", strings.Join(e.Expected, ", "))
			fmt.Printf("Pattern:       %s\n", e.Pattern)
			fmt.Printf("Capture group: %d\n", e.CaptureGroup)
			if e.Separator != "" {
				fmt.Printf("Separator:     %q\n", e.Separator)
			}
			fmt.Printf("Result type:   %s\n", e.ResultType)
			return nil
		},
	}
}

func newParamsAddCmd(root *rootFlags) *cobra.Command {
	var entry store.Entry

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog parameter",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(root)
			if err != nil {
				return err
			}
			defer catalog.Close()

			if _, err := catalog.Add(entry); err != nil {
				return err
			}
			color.New(color.FgGreen).Printf("Added parameter %q\n", entry.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&entry.Name, "name", "", "Parameter name")
	cmd.Flags().StringVar(&entry.Description, "description", "", "Human-readable description")
	cmd.Flags().StringVar(&entry.QueryCommand, "command", "", "Query command sent to the device")
	cmd.Flags().StringSliceVar(&entry.Expected, "expected", nil, "Expected value (repeat for list types)")
	cmd.Flags().StringVar(&entry.Pattern, "pattern", "", "Extraction pattern with at least one capture group")
	cmd.Flags().IntVar(&entry.CaptureGroup, "group", 1, "Capture group index")
	cmd.Flags().StringVar(&entry.Separator, "separator", "", "Optional value separator")
	cmd.Flags().StringVar(&entry.ResultType, "type", "single", "Result type: single or list")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("command")
	_ = cmd.MarkFlagRequired("expected")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func newParamsRemoveCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a catalog parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(root)
			if err != nil {
				return err
			}
			defer catalog.Close()

			if err := catalog.Delete(args[0]); err != nil {
				return err
			}
			color.New(color.FgGreen).Printf("Removed parameter %q\n", args[0])
			return nil
		},
	}
}

func newParamsExportCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the catalog as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(root)
			if err != nil {
				return err
			}
			defer catalog.Close()

			out := os.Stdout
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return catalog.ExportJSON(out)
		},
	}
}

func newParamsImportCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import parameters from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(root)
			if err != nil {
				return err
			}
			defer catalog.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := catalog.ImportJSON(f)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Printf("Imported %d parameter(s)\n", n)
			return nil
		},
	}
}

func newParamsResetCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the catalog to the default parameter set",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(root)
			if err != nil {
				return err
			}
			defer catalog.Close()

			if err := catalog.Reset(); err != nil {
				return err
			}
			color.New(color.FgGreen).Println("Catalog reset to defaults")
			return nil
		},
	}
}
