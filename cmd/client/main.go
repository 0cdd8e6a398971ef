package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-marketplace/internal/adapter"
	"github.com/MKhiriev/go-marketplace/internal/client"
	"github.com/MKhiriev/go-marketplace/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		printBuildInfo()
		return
	}

	cfg, err := client.GetConfig()
	log := logger.NewClientLogger("marketplace-client", cfg.Verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api := adapter.NewHTTPClient(cfg.Adapter(), log)
	api.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(ctx, os.Args[1:]); err != nil {
		printError(err)
		stop()
		os.Exit(1)
	}
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, err)

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		for _, issue := range apiErr.Details {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", issue.Path, issue.Message)
		}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
