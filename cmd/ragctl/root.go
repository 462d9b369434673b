package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"motherlanka-be/internal/bootstrap"
	"motherlanka-be/internal/config"
	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/pkg/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dsn     string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ragctl",
	Short: "Operate the MotherLanka assistant's content store and RAG index",
	Long: `ragctl migrates and seeds the content tables, rebuilds the retrieval
index and runs retrieval or full answers from the terminal.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database connection string (defaults to DB_CONNECTION_STRING)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline traces to stdout")
}

func loadConfig() *config.Config {
	cfg := config.Load()
	if dsn != "" {
		cfg.Database.Connection = dsn
	}
	return cfg
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func openRag(cfg *config.Config) (*bootstrap.Rag, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	var ragLogger logger.ILogger = logger.NewIsolatedLogger(cfg.App.RagLogFilePath)
	if verbose {
		ragLogger = logger.NewZapLogger(cfg.App.RagLogFilePath, false)
	}
	return bootstrap.NewRag(db, cfg, ragLogger)
}
