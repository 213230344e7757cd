package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gridsift/adapters/excel"
	"gridsift/adapters/phone"
	"gridsift/adapters/report"
	"gridsift/app"
	"gridsift/domain/roster"
	"gridsift/internal/config"
	"gridsift/ports"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "gridsift",
		Short: "Heuristic extraction of participant tables from messy spreadsheet exports",
	}

	rootCmd.AddCommand(
		newProcessCmd(),
		newBatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProcessCmd() *cobra.Command {
	var outDir string
	var sheet string
	var region string
	var require []string
	var noE164 bool

	cmd := &cobra.Command{
		Use:   "process [input-file]",
		Short: "Extract one spreadsheet into cleaned/rejected tables and a run summary",
		Long: `Extract one spreadsheet export end-to-end: locate the header row,
map columns to canonical fields, detect the group number, normalize
phone values, and partition the rows.

Example: gridsift process export.xlsx --out run_output --require phone,full_name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildExtractService(region, noE164)
			if err != nil {
				return err
			}

			required, err := parseFields(require)
			if err != nil {
				return err
			}

			summary, err := svc.Run(cmd.Context(), app.ExtractRequest{
				InputPath:      args[0],
				Sheet:          sheet,
				OutputDir:      outDir,
				RequiredFields: required,
			})
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(summary)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: fresh run_<timestamp> directory)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default: first sheet)")
	cmd.Flags().StringVar(&region, "region", "", "Default phone region hint (default: PHONE_REGION or CA)")
	cmd.Flags().StringSliceVar(&require, "require", nil, "Canonical fields that must be present (person_code,full_name,email,phone)")
	cmd.Flags().BoolVar(&noE164, "no-e164", false, "Disable enhanced phone parsing, digit-strip only")

	return cmd
}

func newBatchCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [input-files...]",
		Short: "Extract several spreadsheets concurrently, one fresh output directory each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := buildExtractService("", false)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.Extract.BatchWorkers
			}

			results, err := app.NewBatchService(svc, workers).Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			failures := 0
			for _, res := range results {
				if res.Err != nil {
					failures++
					log.Printf("[Batch] %s failed: %v", res.Input, res.Err)
					continue
				}
				log.Printf("[Batch] %s: %d accepted, %d rejected -> %s",
					res.Input, res.Summary.RowsAccepted, res.Summary.RowsRejected, res.Summary.OutputDir)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d inputs failed", failures, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers (default: BATCH_WORKERS or 4)")

	return cmd
}

func buildExtractService(regionOverride string, noE164 bool) (*app.ExtractService, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if regionOverride != "" {
		cfg.Extract.PhoneRegion = regionOverride
	}
	if noE164 {
		cfg.Extract.PhoneE164 = false
	}

	var normalizer ports.PhoneNormalizer = phone.NewDigitStrip()
	if cfg.Extract.PhoneE164 {
		normalizer = phone.NewE164Normalizer()
	}

	svc := app.NewExtractService(
		excel.NewDataReader(),
		normalizer,
		report.NewFactory(cfg.Extract.OutputRoot),
		cfg.Extract,
	)
	return svc, cfg, nil
}

func parseFields(names []string) ([]roster.Field, error) {
	fields := make([]roster.Field, 0, len(names))
	for _, name := range names {
		field := roster.Field(name)
		valid := false
		for _, known := range roster.AllFields {
			if field == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown field %q (known: person_code, full_name, email, phone)", name)
		}
		fields = append(fields, field)
	}
	return fields, nil
}
