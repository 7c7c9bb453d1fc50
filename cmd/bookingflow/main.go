package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	internalcli "github.com/flightqa/bookingflow/internal/cli"
	"github.com/flightqa/bookingflow/internal/config"
)

var version = "0.1.0"

// CheckCommand returns the check command
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Open the booking page and verify the form is ready",
		Action: func(c *cli.Context) error {
			suite, err := config.LoadSuiteConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid suite configuration: %w", err)
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer logger.Sync()

			return internalcli.RunCheck(internalcli.CheckDependencies{
				Suite:     suite,
				Artifacts: config.LoadArtifactsConfig(os.Getenv),
				Logger:    logger,
			})
		},
	}
}

// CleanCommand returns the clean command
func CleanCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove generated logs, reports, and screenshots",
		Action: func(c *cli.Context) error {
			return internalcli.RunClean(config.LoadArtifactsConfig(os.Getenv))
		},
	}
}

// ReportCommand returns the report command
func ReportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Rebuild latest_report.html from the newest results file",
		Action: func(c *cli.Context) error {
			return internalcli.RunReport(config.LoadArtifactsConfig(os.Getenv).ReportsDir)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "bookingflow",
		Usage:   "Flight booking UI test suite management tool",
		Version: version,
		Commands: []*cli.Command{
			CheckCommand(),
			CleanCommand(),
			ReportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
