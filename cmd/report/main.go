// Package main provides the report CLI: generate moneyline and spread edge
// reports from a JSON batch file, locally or against a running service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yourusername/sportsline-analyzer/internal/analyzer"
	"github.com/yourusername/sportsline-analyzer/internal/client"
	"github.com/yourusername/sportsline-analyzer/internal/config"
	"github.com/yourusername/sportsline-analyzer/internal/logger"
	"github.com/yourusername/sportsline-analyzer/internal/models"
	"github.com/yourusername/sportsline-analyzer/internal/render"
	"github.com/yourusername/sportsline-analyzer/internal/scheduler"
)

var (
	configFile string
	inputFile  string
	outputDir  string
	serviceURL string
	cronExpr   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "Path to JSON batch file (required)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "./reports", "Directory for generated CSV reports")
	rootCmd.MarkPersistentFlagRequired("input")

	remoteCmd.Flags().StringVar(&serviceURL, "url", "http://localhost:8080", "Base URL of a running analyzer service")
	watchCmd.Flags().StringVar(&cronExpr, "cron", "*/5 * * * *", "Cron expression for report regeneration")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(remoteCmd)
	rootCmd.AddCommand(watchCmd)
}

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate moneyline and spread edge reports",
	Long:  `Analyzes a JSON batch of games and writes the ranked moneyline and against-the-spread CSV reports.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Analyze a local batch file and write both CSV reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateOnce(context.Background())
	},
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Post the batch to a running analyzer service and write its CSV reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		lg := logger.New(cfg.App.LogLevel, cfg.App.Environment)

		batch, err := loadBatch(inputFile)
		if err != nil {
			return err
		}

		c := client.New(client.DefaultConfig(serviceURL), lg)
		defer c.Close()

		result, err := c.Analyze(cmd.Context(), batch)
		if err != nil {
			return err
		}
		return writeReports(outputDir, result.CSV.Moneyline, result.CSV.Spread)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate reports from the batch file on a cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		lg := logger.New(cfg.App.LogLevel, cfg.App.Environment)

		sched := scheduler.New(lg)
		if err := sched.Schedule(cronExpr, "regenerate-reports", generateOnce); err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		lg.WithField("next_run", sched.NextRun()).Info("Watching for scheduled report runs")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		return sched.Stop()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func generateOnce(ctx context.Context) error {
	cfg := mustLoadConfig()
	lg := logger.New(cfg.App.LogLevel, cfg.App.Environment)

	batch, err := loadBatch(inputFile)
	if err != nil {
		return err
	}

	params, weights := analyzer.FromConfig(cfg.Analysis)
	a := analyzer.New(params, weights, lg)

	mlRows, atsRows := a.AnalyzeGames(batch.Games)
	return writeReports(outputDir, render.MoneylineCSV(mlRows), render.SpreadCSV(atsRows))
}

func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func loadBatch(path string) (*models.Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	batch := &models.Batch{}
	if err := json.Unmarshal(data, batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	if fieldErrs := models.ValidateBatch(models.NewValidator(), batch); fieldErrs != nil {
		for _, fe := range fieldErrs {
			fmt.Fprintf(os.Stderr, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return nil, models.ErrInvalidPayload
	}
	batch.Normalize()

	return batch, nil
}

func writeReports(dir, moneylineCSV, spreadCSV string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "moneyline.csv"), []byte(moneylineCSV), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "spread.csv"), []byte(spreadCSV), 0o644)
}
