package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/logger"
	"github.com/jonathan/ats-analyzer/internal/server"
	"github.com/jonathan/ats-analyzer/internal/store"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resumes and querying past submissions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	appCfg, err := config.LoadApp(serveConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != 0 {
		appCfg.Port = servePort
	}

	log, err := logger.New(appCfg.LogJSON, appCfg.LogDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	registry, err := loadRegistry(appCfg.CategoriesFile)
	if err != nil {
		return err
	}

	var st *store.Store
	if appCfg.DatabaseURL != "" {
		ctx := context.Background()
		st, err = store.Connect(ctx, appCfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := st.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}
	} else {
		log.Sugar().Infow("no database configured, submissions will not be persisted")
	}

	srv, err := server.New(server.Config{
		Port:     appCfg.Port,
		Registry: registry,
		Store:    st,
		Logger:   log.Sugar(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
