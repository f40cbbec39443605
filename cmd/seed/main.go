// Package main provides a CLI tool for seeding the catalog with demo data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var opts struct {
	driver      string
	databaseURL string
	sqlitePath  string
	logLevel    string
}

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Seed and inspect the store catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.driver, "driver", envOr("STORAGE_DRIVER", "sqlite"), "storage driver: sqlite or postgres")
	flags.StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	flags.StringVar(&opts.sqlitePath, "sqlite-path", envOr("SQLITE_PATH", "data/storecatalog.db"), "sqlite database file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(reportCmd)
}

func envOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
