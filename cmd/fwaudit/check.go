package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fwaudit/fwaudit/internal/config"
	"github.com/fwaudit/fwaudit/internal/engine"
	"github.com/fwaudit/fwaudit/internal/logger"
	"github.com/fwaudit/fwaudit/internal/model"
	"github.com/fwaudit/fwaudit/internal/report"
	"github.com/fwaudit/fwaudit/internal/store"
	"github.com/fwaudit/fwaudit/internal/transport"
)

type checkOptions struct {
	BaselinePath   string
	FromCatalog    bool
	Host           string
	Port           int
	Username       string
	Password       string
	ConnectTimeout time.Duration
	CommandTimeout time.Duration
	JSON           bool
	CSVPath        string
	HTMLPath       string
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [baseline-file]",
		Short: "Verify device parameters against a baseline",
		Long: `Check loads parameter specs from a YAML baseline file (or from the catalog
with --from-catalog), connects to the device, runs each unique query command
once, and reports the compliance state of every parameter.

Exit codes: 0 all parameters match, 1 deviations found, 2 baseline or usage
error, 3 connection failure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.BaselinePath = args[0]
			}
			if opts.BaselinePath == "" && !opts.FromCatalog {
				return errors.New("a baseline file or --from-catalog is required")
			}
			return runCheck(root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.FromCatalog, "from-catalog", false, "Load parameters from the catalog instead of a baseline file")
	cmd.Flags().StringVar(&opts.Host, "host", "", "Device address")
	cmd.Flags().IntVar(&opts.Port, "port", 0, "SSH port (default 22)")
	cmd.Flags().StringVar(&opts.Username, "username", "", "SSH username")
	cmd.Flags().StringVar(&opts.Password, "password", "", "SSH password (or set FWAUDIT_PASSWORD)")
	cmd.Flags().DurationVar(&opts.ConnectTimeout, "connect-timeout", 0, "Connection timeout")
	cmd.Flags().DurationVar(&opts.CommandTimeout, "command-timeout", 0, "Per-command timeout")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Write the report as JSON on stdout")
	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "Also write a CSV report to this file")
	cmd.Flags().StringVar(&opts.HTMLPath, "html", "", "Also write an HTML report to this file")

	return cmd
}

func runCheck(root *rootFlags, opts checkOptions) error {
	level := "info"
	if root.verbose {
		level = "debug"
	}
	pretty := !opts.JSON && term.IsTerminal(int(os.Stderr.Fd()))
	log, err := logger.New(logger.Options{Level: level, Pretty: pretty})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(2)
	}

	specs, baselineName, deviceCfg, err := loadSpecs(root, opts)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Baseline error: %v\n", err)
		os.Exit(2)
	}
	if len(specs) == 0 {
		color.New(color.FgRed).Fprintln(os.Stderr, "Baseline declares no parameters")
		os.Exit(2)
	}
	if deviceCfg.Host == "" {
		color.New(color.FgRed).Fprintln(os.Stderr, "Device address is required (--host or baseline device block)")
		os.Exit(2)
	}
	if deviceCfg.Username == "" {
		color.New(color.FgRed).Fprintln(os.Stderr, "Username is required (--username or baseline device block)")
		os.Exit(2)
	}
	if deviceCfg.Password == "" {
		color.New(color.FgRed).Fprintln(os.Stderr, "Password is required (--password or FWAUDIT_PASSWORD)")
		os.Exit(2)
	}

	log.WithFields(map[string]any{
		"host":       deviceCfg.Host,
		"parameters": len(specs),
	}).Info("starting verification")

	ctx := context.Background()
	started := time.Now()

	session, err := transport.Dial(ctx, deviceCfg, log)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Connection failed: %v\n", err)
		os.Exit(3)
	}
	defer session.Close()

	outcomes, summary, err := engine.Run(ctx, specs, session)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Verification error: %v\n", err)
		os.Exit(2)
	}

	log.WithFields(map[string]any{
		"total":          summary.Total,
		"match":          summary.Match,
		"mismatch":       summary.Mismatch,
		"no_value":       summary.NoValue,
		"command_failed": summary.CommandFailed,
		"error":          summary.Error,
	}).Info("verification complete")

	rep := report.New(deviceCfg.Host, baselineName, outcomes, started)

	if opts.JSON {
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "Report error: %v\n", err)
			os.Exit(2)
		}
	} else {
		report.WriteTerminal(os.Stdout, rep)
	}

	if opts.CSVPath != "" {
		if err := writeReportFile(opts.CSVPath, rep, report.WriteCSV); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "CSV report error: %v\n", err)
			os.Exit(2)
		}
		log.WithFields(map[string]any{"path": opts.CSVPath}).Info("csv report written")
	}
	if opts.HTMLPath != "" {
		if err := writeReportFile(opts.HTMLPath, rep, report.WriteHTML); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "HTML report error: %v\n", err)
			os.Exit(2)
		}
		log.WithFields(map[string]any{"path": opts.HTMLPath}).Info("html report written")
	}

	os.Exit(rep.ExitCode())
	return nil
}

// loadSpecs resolves the parameter specs and the device settings, with
// command-line flags taking precedence over the baseline's device block.
func loadSpecs(root *rootFlags, opts checkOptions) ([]model.ParameterSpec, string, transport.Config, error) {
	deviceCfg := transport.Config{
		Host:           opts.Host,
		Port:           opts.Port,
		Username:       opts.Username,
		Password:       opts.Password,
		ConnectTimeout: opts.ConnectTimeout,
		CommandTimeout: opts.CommandTimeout,
	}
	if deviceCfg.Password == "" {
		deviceCfg.Password = os.Getenv("FWAUDIT_PASSWORD")
	}

	if opts.FromCatalog {
		catalog, err := store.Open(root.catalog)
		if err != nil {
			return nil, "", deviceCfg, err
		}
		defer catalog.Close()

		specs, err := catalog.ToSpecs()
		if err != nil {
			return nil, "", deviceCfg, err
		}
		return specs, "catalog", deviceCfg, nil
	}

	cfg, err := config.ParseConfig(opts.BaselinePath)
	if err != nil {
		return nil, "", deviceCfg, err
	}

	if deviceCfg.Host == "" {
		deviceCfg.Host = cfg.Device.Host
	}
	if deviceCfg.Port == 0 {
		deviceCfg.Port = cfg.Device.Port
	}
	if deviceCfg.Username == "" {
		deviceCfg.Username = cfg.Device.Username
	}
	if deviceCfg.ConnectTimeout == 0 && cfg.Device.ConnectTimeout > 0 {
		deviceCfg.ConnectTimeout = time.Duration(cfg.Device.ConnectTimeout) * time.Second
	}
	if deviceCfg.CommandTimeout == 0 && cfg.Device.CommandTimeout > 0 {
		deviceCfg.CommandTimeout = time.Duration(cfg.Device.CommandTimeout) * time.Second
	}

	return cfg.ToSpecs(), cfg.Name, deviceCfg, nil
}

func writeReportFile(path string, rep *model.RunReport, write func(w io.Writer, r *model.RunReport) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f, rep)
}
