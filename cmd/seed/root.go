// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tomtom215/venuelens/internal/config"
	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/warehouse"
)

// seedParams are the command line flags.
type seedParams struct {
	path     string
	rows     int
	seed     uint64
	start    string
	months   int
	reset    bool
	logLevel string
}

// rootCmd builds the venuelens-seed command. Flags default to the
// warehouse section of the regular configuration.
func rootCmd() *cobra.Command {
	p := &seedParams{}

	cmd := &cobra.Command{
		Use:   "venuelens-seed",
		Short: "Generate a DuckDB demo warehouse for Venuelens.",
		Long: `venuelens-seed creates the fact_book_trans, dim_visit, dim_venue and dim_item
tables in a DuckDB file and fills them with deterministic demo bookings.

An already populated warehouse is left untouched unless --reset is given,
which deletes the file first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.Init(logging.Options{
				Level:  p.logLevel,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), cmd.OutOrStdout(), p)
		},
	}

	defaults := config.DefaultWarehouseConfig()
	cmd.Flags().StringVar(&p.path, "path", defaults.Path, "DuckDB file to create or extend")
	cmd.Flags().IntVar(&p.rows, "rows", defaults.SeedRows, "Fact rows to insert")
	cmd.Flags().Uint64Var(&p.seed, "seed", 1, "Random seed; equal seeds produce equal warehouses")
	cmd.Flags().StringVar(&p.start, "start", "", "First event month as YYYY-MM (default: two years ago)")
	cmd.Flags().IntVar(&p.months, "months", 24, "Number of event months to cover")
	cmd.Flags().BoolVar(&p.reset, "reset", false, "Delete an existing warehouse file before seeding")
	cmd.Flags().StringVar(&p.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")

	return cmd
}

func runSeed(ctx context.Context, out io.Writer, p *seedParams) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := warehouse.SeedOptions{Rows: p.rows, Seed: p.seed, Months: p.months}
	if p.start != "" {
		start, err := time.Parse("2006-01", p.start)
		if err != nil {
			return fmt.Errorf("invalid --start %q, want YYYY-MM: %w", p.start, err)
		}
		opts.Start = start
	}

	if p.reset {
		for _, f := range []string{p.path, p.path + ".wal"} {
			if err := os.Remove(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to remove %s: %w", f, err)
			}
		}
	}

	wcfg := config.DefaultWarehouseConfig()
	wcfg.Driver = config.DriverDuckDB
	wcfg.Path = p.path
	exec, err := warehouse.Open(&wcfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := exec.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing warehouse")
		}
	}()

	if n, err := warehouse.FactRowCount(ctx, exec.DB()); err == nil && n > 0 {
		logging.Info().Int("fact_rows", n).Str("path", p.path).Msg("Warehouse already populated, use --reset to regenerate it")
		return nil
	}

	bar := progressbar.Default(int64(p.rows), "seeding")
	opts.Progress = func(done int) {
		_ = bar.Set(done)
	}

	sum, err := warehouse.Seed(ctx, exec.DB(), opts)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d fact rows across %d visits and %d venues (%d duplicates, %d unparseable, %d out of scope)\n",
		p.path, sum.FactRows, sum.Visits, sum.Venues, sum.Duplicates, sum.Unparseable, sum.OutOfScope)
	return nil
}
