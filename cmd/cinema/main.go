// Command cinema runs the interactive console front end of the reservation
// engine against the same catalog and booking record file as the API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/metinatakli/show-reservation-engine/internal/catalog"
	"github.com/metinatakli/show-reservation-engine/internal/cli"
	"github.com/metinatakli/show-reservation-engine/internal/payment"
	"github.com/metinatakli/show-reservation-engine/internal/reservation"
	"github.com/metinatakli/show-reservation-engine/internal/store"
	"github.com/metinatakli/show-reservation-engine/internal/vcs"
)

var (
	version = vcs.Version()
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	dataFile := flag.String("data-file", envString("DATA_FILE", "bookings.json"), "Durable booking record file")
	catalogFile := flag.String("catalog-file", envString("CATALOG_FILE", ""), "Catalog definition file (built-in sample data when empty)")
	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	// UI goes to stdout, logs to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	shows, err := newCatalog(*catalogFile)
	if err != nil {
		logger.Error("could not build catalog", "error", err)
		return err
	}

	service := reservation.NewService(
		shows,
		store.NewFileStore(*dataFile),
		payment.NewSimulator(logger),
		logger,
	)

	ctx := context.Background()

	if err := service.Load(ctx); err != nil {
		logger.Error("booking record failed integrity check", "error", err)
		return err
	}

	if err := cli.New(os.Stdin, os.Stdout, service).Run(ctx); err != nil {
		logger.Error("could not save booking records on exit", "error", err)
		return err
	}

	return nil
}

func newCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	cfg, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return catalog.New(cfg)
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}
