// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubstats CLI. It maintains the
// portfolio's publications_data.json and derives the statistics the
// site's charts render.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubstats/internal/aggregate"
	"github.com/pdiddy/pubstats/internal/config"
	"github.com/pdiddy/pubstats/internal/httputil"
	"github.com/pdiddy/pubstats/internal/portfolio"
	"github.com/pdiddy/pubstats/internal/secrets"
	"github.com/pdiddy/pubstats/internal/source"
	"github.com/pdiddy/pubstats/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is decoded once per invocation in PersistentPreRunE.
	cfg    types.Config
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// rootCmd is the base command for the pubstats CLI.
var rootCmd = &cobra.Command{
	Use:   "pubstats",
	Short: "Publication statistics for an academic portfolio",
	Long: `pubstats keeps the portfolio's publication list up to date and derives
the statistics behind its charts.

Publications are partitioned by authorship (primary, student,
non-student significant, other) using ADS library tags or, failing that,
the byline. Each paper is attributed to research areas, and the results
are summarized per year and per area.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		logger = logger.With("run", uuid.NewString())
		slog.SetDefault(logger)

		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}

		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		if names := s.Names(); len(names) > 0 {
			logger.Debug("loaded secrets", "keys", names)
		}
		config.ApplySecrets(&loaded, s)
		cfg = loaded
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubstats.yaml or ~/.config/pubstats/pubstats.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("publications", "", "path to publications_data.json")
	rootCmd.PersistentFlags().String("mentees", "", "path to mentees.json")
	rootCmd.PersistentFlags().String("remote", "", "base URL of the deployed data directory, tried before local files")

	viper.BindPFlag("data.publications_path", rootCmd.PersistentFlags().Lookup("publications"))
	viper.BindPFlag("data.mentees_path", rootCmd.PersistentFlags().Lookup("mentees"))
	viper.BindPFlag("data.remote_base_url", rootCmd.PersistentFlags().Lookup("remote"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubstats")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubstats"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// newSession builds a session over the configured data source.
func newSession() *portfolio.Session {
	client := httputil.NewClient(30*time.Second, 0, 0, logger)
	src := source.New(cfg.Data, client, logger)
	return portfolio.NewSession(src, config.AggregateOptions(cfg), logger)
}

// loadLocal reads the local publications document, the only one the
// mutating commands write back to.
func loadLocal(ctx context.Context) (*types.PublicationsDocument, error) {
	src := source.FileSource{PublicationsPath: cfg.Data.PublicationsPath, MenteesPath: cfg.Data.MenteesPath}
	return src.Publications(ctx)
}

// saveLocal refreshes the document's metrics and writes it back.
func saveLocal(doc *types.PublicationsDocument, sourceName string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	sources := []string{sourceName}
	if doc.Metrics != nil {
		sources = mergeSources(doc.Metrics.Sources, sourceName)
	}
	doc.Metrics = aggregate.Summarize(doc.Publications).Metrics(sources, now)
	doc.LastUpdated = now
	if err := source.WritePublications(cfg.Data.PublicationsPath, doc); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", cfg.Data.PublicationsPath)
	return nil
}

func mergeSources(existing []string, name string) []string {
	for _, s := range existing {
		if s == name {
			return existing
		}
	}
	return append(existing, name)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
