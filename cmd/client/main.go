package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-delivery-board/internal/adapter"
	"github.com/MKhiriev/go-delivery-board/internal/client"
	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// the client binary version is printed only on request so command
	// output stays parseable
	if len(os.Args) == 2 && os.Args[1] == "--build-info" {
		printBuildInfo()
		return
	}

	log := logger.NewClientLogger("delivery-board-client", os.Stderr)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, client.NewTokenStore(cfg.Adapter.TokenFile), os.Args[1:], log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
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
