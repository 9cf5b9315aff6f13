package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/calundra/shelly-export/internal/config"
	"github.com/calundra/shelly-export/internal/export"
	"github.com/calundra/shelly-export/internal/ha"
	"github.com/calundra/shelly-export/internal/registry"
	"github.com/calundra/shelly-export/internal/version"
	"github.com/calundra/shelly-export/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	hubURL := flag.String("url", "", "hub base url (overrides HA_URL)")
	token := flag.String("token", "", "long-lived access token (overrides HA_TOKEN)")
	output := flag.String("output", "", "output csv path")
	useRegistry := flag.Bool("registry", false, "annotate states from the entity and device registries")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	// Set up structured logging
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	logger = logger.With("run_id", uuid.NewString())

	logger.Info("starting shelly-export",
		"version", version.Version,
		"commit", version.Commit,
	)

	// Resolve configuration
	cfg, err := config.Resolve(*configPath, config.Overrides{
		URL:      *hubURL,
		Token:    *token,
		Output:   *output,
		Registry: *useRegistry,
	})
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"hub_url", cfg.Hub.URL,
		"vendor", cfg.Export.Vendor,
		"registry", cfg.Registry.Enabled,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create hub client
	client := ha.NewClient(
		cfg.Hub.URL,
		cfg.Hub.Token,
		ha.WithLogger(logger),
		ha.WithTimeout(cfg.Hub.Timeout),
	)

	// Probe the hub before fetching
	info, err := client.GetInstanceInfo(ctx)
	if err != nil {
		logger.Error("failed to reach hub", "error", err)
		os.Exit(1)
	}
	logger.Info("hub reachable",
		"location", info.LocationName,
		"ha_version", info.Version,
	)

	// Fetch all entity states
	states, err := client.GetStates(ctx)
	if err != nil {
		logger.Error("failed to fetch states", "error", err)
		os.Exit(1)
	}
	logger.Info("states fetched", "entities", len(states))

	// Optional registry annotation
	if cfg.Registry.Enabled {
		states, err = annotateFromRegistry(ctx, cfg, logger, states)
		if err != nil {
			logger.Error("failed to resolve registries", "error", err)
			os.Exit(1)
		}
	}

	// Select vendor switch devices
	records := export.Records(states, export.Options{Vendor: cfg.Export.Vendor})
	for _, r := range records {
		logger.Debug("found device", "id", r.ID, "name", r.Name)
	}

	if len(records) == 0 {
		logger.Info("no matching devices found, skipping output file")
		return
	}

	// Write output
	path := cfg.Export.Output
	if path == "" {
		path = writer.DefaultFilename(time.Now())
	}
	if err := writer.Write(path, records); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	logger.Info("export complete",
		"devices", len(records),
		"output", abs,
	)
}

// annotateFromRegistry connects to the WebSocket API, fetches both
// registries, and returns states annotated with device ownership.
func annotateFromRegistry(ctx context.Context, cfg *config.Config, logger *slog.Logger, states []ha.Entity) ([]ha.Entity, error) {
	wsURL := cfg.Registry.URL
	if wsURL == "" {
		derived, err := registry.EndpointURL(cfg.Hub.URL)
		if err != nil {
			return nil, err
		}
		wsURL = derived
	}

	client := registry.NewClient(registry.ClientConfig{
		URL:              wsURL,
		Token:            cfg.Hub.Token,
		HandshakeTimeout: cfg.Registry.Timeout,
		CallTimeout:      cfg.Registry.Timeout,
	}, logger.With("component", "registry"))

	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	defer client.Close()

	idx, err := registry.Fetch(ctx, client)
	if err != nil {
		return nil, err
	}
	logger.Info("registries loaded",
		"entities", idx.EntityCount(),
		"devices", idx.DeviceCount(),
	)
	return idx.Annotate(states), nil
}
