package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/config"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/engine"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/persistence"
)

func main() {
	root := &cobra.Command{
		Use:          "topazsim",
		Short:        "Quarterly business simulation runner",
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd(), newReportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		quarters   int
		fresh      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run simulation quarters with automated decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			setupLogging(cfg.Log.Level)
			if quarters > 0 {
				cfg.Simulation.Quarters = quarters
			}

			db, err := persistence.Open(cfg.Database.SQLitePath)
			if err != nil {
				return err
			}
			defer db.Close()

			sim := restoreOrCreate(db, cfg, fresh)

			for i := 0; i < cfg.Simulation.Quarters; i++ {
				quarter, year := sim.Economy.Quarter, sim.Economy.Year
				reports, err := sim.Step(nil)
				if err != nil {
					return fmt.Errorf("step year %d quarter %d: %w", year, quarter, err)
				}
				renderQuarter(year, quarter, reports)

				if err := db.AppendReports(reports); err != nil {
					return fmt.Errorf("persist reports: %w", err)
				}
				if err := db.SaveSimulation(sim); err != nil {
					return fmt.Errorf("persist simulation: %w", err)
				}
			}
			if err := db.AppendEvents(sim.Events); err != nil {
				return fmt.Errorf("persist events: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "topazsim.yaml", "config file path")
	cmd.Flags().IntVarP(&quarters, "quarters", "q", 0, "quarters to run (overrides config)")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "ignore any saved state and start over")
	return cmd
}

func newReportCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "report [company]",
		Short: "Print the saved report history, optionally for one company",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			setupLogging("warn")

			db, err := persistence.Open(cfg.Database.SQLitePath)
			if err != nil {
				return err
			}
			defer db.Close()

			history, err := db.LoadReports()
			if err != nil {
				return fmt.Errorf("load reports: %w", err)
			}
			for _, r := range history {
				if len(args) == 1 && r.Company != args[0] {
					continue
				}
				renderReport(r)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "topazsim.yaml", "config file path")
	return cmd
}

func restoreOrCreate(db *persistence.DB, cfg *config.Config, fresh bool) *engine.Simulation {
	if !fresh {
		if sim, err := db.LoadSimulation(); err == nil && len(sim.Companies) > 0 {
			slog.Info("resuming saved simulation",
				"companies", len(sim.Companies),
				"quarter", sim.Economy.Quarter,
				"year", sim.Economy.Year,
			)
			return sim
		}
	}
	slog.Info("starting new simulation",
		"companies", cfg.Simulation.Companies,
		"seed", cfg.Simulation.Seed,
	)
	return engine.New(cfg.Simulation.Companies, cfg.Simulation.Humans, cfg.Simulation.Seed)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
