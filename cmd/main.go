package main

import (
	"os"

	"hospital-management/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital administration service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "path to the .env configuration file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(configPath string) error {
	// Initialize application with all dependencies
	app, err := bootstrap.New(configPath)
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		return err
	}

	// Run the application
	app.Run()
	return nil
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath)
		},
	}
}

func migrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Migrate(*configPath, true)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert all applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Migrate(*configPath, false)
		},
	})

	return cmd
}
