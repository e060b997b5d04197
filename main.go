package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hogwarts-cloud/sizer/config"
	"github.com/hogwarts-cloud/sizer/internal/batch"
	"github.com/hogwarts-cloud/sizer/internal/calculator"
	"github.com/hogwarts-cloud/sizer/internal/export"
	"github.com/hogwarts-cloud/sizer/internal/logging"
	"github.com/hogwarts-cloud/sizer/internal/mail"
	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/parser"
	"github.com/hogwarts-cloud/sizer/internal/report"
	"github.com/hogwarts-cloud/sizer/internal/server"
	"github.com/hogwarts-cloud/sizer/internal/validate"
	"github.com/hogwarts-cloud/sizer/internal/workbook"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	configPath string
	logLevel   string
	input      string
	format     string
	output     string
	exportDir  string
	mailTo     []string

	cfg config.Config
)

var ErrXLSXMultipleScenarios = errors.New("xlsx output holds a single scenario, use --export-dir for several")

var root = &cobra.Command{
	Use:   "sizer",
	Short: "Hardware sizing calculator for data services clusters",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}

		logger, err := logging.New(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		zap.ReplaceGlobals(logger)

		return nil
	},
}

var calculate = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate the hardware required for the given inputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		reportFormat, err := report.ParseFormat(format)
		if err != nil {
			return fmt.Errorf("failed to parse format: %w", err)
		}

		scenarios, err := loadScenarios(cmd.Flags())
		if err != nil {
			return err
		}

		if reportFormat == report.FormatXLSX && len(scenarios) > 1 {
			return ErrXLSXMultipleScenarios
		}

		calc := calculator.New(cfg.Baseline)

		outcomes, err := batch.New(calc).Run(cmd.Context(), scenarios)
		if err != nil {
			return fmt.Errorf("failed to calculate scenarios: %w", err)
		}

		w, closeOutput, err := openOutput(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeOutput()

		reports := make([]report.Report, 0, len(outcomes))
		for _, outcome := range outcomes {
			rep := report.Build(outcome.Scenario.Requirements, outcome.Result, calc.Baseline())
			rep.Name = outcome.Scenario.Name

			if reportFormat == report.FormatXLSX {
				err = workbook.Export(w, rep)
			} else {
				err = report.Render(w, rep, reportFormat)
			}
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}

			reports = append(reports, rep)
		}

		if exportDir != "" {
			writer := export.NewWriter(export.Config{Directory: exportDir, Baseline: calc.Baseline()})
			if err := writer.Write(outcomes); err != nil {
				return fmt.Errorf("failed to export outcomes: %w", err)
			}
		}

		recipients := mailTo
		if len(recipients) == 0 {
			recipients = cfg.Mail.Recipients
		}

		if len(recipients) > 0 {
			sender := mail.NewSender(mail.Config{Server: cfg.Mail.Server, Sender: cfg.Mail.Sender})
			for _, rep := range reports {
				for _, recipient := range recipients {
					if err := sender.SendReport(recipient, rep); err != nil {
						return fmt.Errorf("failed to mail report: %w", err)
					}
				}
			}
		}

		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate scenario files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		defaults, err := cfg.ResolveDefaults()
		if err != nil {
			return fmt.Errorf("failed to resolve defaults: %w", err)
		}

		scenarios, err := parser.Parse(input, defaults)
		if err != nil {
			return fmt.Errorf("failed to parse scenarios: %w", err)
		}

		if _, err := batch.New(calculator.New(cfg.Baseline)).Run(cmd.Context(), scenarios); err != nil {
			return fmt.Errorf("failed to validate scenarios: %w", err)
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d scenario(s) are valid\n", len(scenarios))
		return err
	},
}

var serve = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator form and API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		defaults, err := cfg.ResolveDefaults()
		if err != nil {
			return fmt.Errorf("failed to resolve defaults: %w", err)
		}

		srv := server.New(server.Config{
			Address:         cfg.Server.Address,
			ReadTimeout:     cfg.Server.ReadTimeout,
			WriteTimeout:    cfg.Server.WriteTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
			Defaults:        defaults,
			Calculator:      calculator.New(cfg.Baseline),
		})

		if err := srv.Run(cmd.Context()); err != nil {
			return fmt.Errorf("failed to run server: %w", err)
		}

		return nil
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the effective default inputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		defaults, err := cfg.ResolveDefaults()
		if err != nil {
			return fmt.Errorf("failed to resolve defaults: %w", err)
		}

		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)

		if err := encoder.Encode(defaults); err != nil {
			return fmt.Errorf("failed to encode defaults: %w", err)
		}

		return encoder.Close()
	},
}

// loadScenarios reads --input, or builds one scenario from the defaults. Requirement
// flags that were set override every scenario.
func loadScenarios(flags *pflag.FlagSet) ([]models.Scenario, error) {
	defaults, err := cfg.ResolveDefaults()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve defaults: %w", err)
	}

	scenarios := []models.Scenario{{Name: "default", Requirements: defaults}}

	if input != "" {
		scenarios, err = parser.Parse(input, defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scenarios: %w", err)
		}
	}

	for _, field := range defaults.Fields() {
		flag := flags.Lookup(field.Key)
		if flag == nil || !flag.Changed {
			continue
		}

		for i := range scenarios {
			if err := validate.Assign(&scenarios[i].Requirements, field.Key, flag.Value.String(), true); err != nil {
				return nil, fmt.Errorf("failed to apply flag: %w", err)
			}
		}
	}

	return scenarios, nil
}

func openOutput(stdout io.Writer) (io.Writer, func(), error) {
	if output == "" {
		return stdout, func() {}, nil
	}

	file, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}

func init() {
	root.PersistentFlags().StringVar(&configPath, "config", "", "Directory containing sizer.yaml")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	calculate.Flags().StringVar(&input, "input", "", "Scenario file or directory of scenario files")
	calculate.Flags().StringVar(&format, "format", string(report.FormatText), "Output format (text, html, json, yaml, xlsx)")
	calculate.Flags().StringVar(&output, "output", "", "Write the report to a file instead of stdout")
	calculate.Flags().StringVar(&exportDir, "export-dir", "", "Write result.yaml and report.xlsx per scenario into this directory")
	calculate.Flags().StringSliceVar(&mailTo, "mail-to", nil, "Mail the HTML report to these addresses")

	for _, field := range models.DefaultRequirements().Fields() {
		switch value := field.Value.(type) {
		case bool:
			calculate.Flags().Bool(field.Key, value, "Override "+field.Key)
		case int:
			calculate.Flags().Int(field.Key, value, "Override "+field.Key)
		}
	}

	validateCmd.Flags().StringVar(&input, "input", "", "Scenario file or directory of scenario files")
	_ = validateCmd.MarkFlagRequired("input")

	root.AddCommand(calculate, validateCmd, serve, defaultsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)

	_ = zap.L().Sync()

	if err != nil {
		stop()
		os.Exit(1)
	}
}
