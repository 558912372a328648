package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/slides/internal/httpserver"
	"github.com/tinytelemetry/slides/internal/logging"
	"github.com/tinytelemetry/slides/internal/session"
)

// runServer loads the configured documents and serves the generation API
// until interrupted.
func runServer(cfg appConfig) error {
	logger, cleanupLogger := logging.Setup(logging.Config{Name: "slides-server", Level: cfg.LogLevel})
	defer cleanupLogger()

	registry := session.NewRegistry()
	loaded, err := loadDocuments(registry, cfg.Documents, logger)
	if err != nil {
		return err
	}

	apiServer, err := httpserver.NewServer(cfg.APIAddr, registry, httpserver.Options{
		ArtifactCacheSize: cfg.ArtifactCacheSize,
		Logger:            logger,
	})
	if err != nil {
		return err
	}
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	printStartupBanner(cfg, apiServer.Addr(), loaded)
	logger.Info().Str("addr", apiServer.Addr()).Int("sessions", registry.Len()).Msg("generation service started")

	if err := waitForShutdown(context.Background(), sigCh, apiServer.Stop); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		return err
	}
	logger.Info().Msg("generation service stopped")
	return nil
}

// waitForShutdown blocks until a signal arrives or ctx ends, then calls stop.
func waitForShutdown(ctx context.Context, sigCh <-chan os.Signal, stop func() error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-sigCh:
			fmt.Println("\nShutting down gracefully...")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return stop()
	})

	return g.Wait()
}

// loadDocuments registers every document matched by paths. Entries may be
// glob patterns. A path that matches nothing is an error; an unreadable or
// unsupported file is logged and skipped.
func loadDocuments(registry *session.Registry, paths []string, logger zerolog.Logger) ([]*session.FileSession, error) {
	var loaded []*session.FileSession
	for _, pattern := range paths {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("document pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("document %q: no such file", pattern)
		}
		for _, path := range matches {
			doc, err := session.LoadFile(path)
			if err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("skipping document")
				continue
			}
			registry.Add(doc)
			loaded = append(loaded, doc)
			logger.Info().
				Str("session_id", doc.ID()).
				Str("path", path).
				Int("words", doc.Info().WordCount).
				Msg("document loaded")
		}
	}
	return loaded, nil
}

func printStartupBanner(cfg appConfig, addr string, docs []*session.FileSession) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := cyan.Bold(true).Render(`
    ╔═╗╦  ╦╔╦╗╔═╗╔═╗
    ╚═╗║  ║ ║║║╣ ╚═╗
    ╚═╝╩═╝╩═╩╝╚═╝╚═╝`)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, logo)
	lines = append(lines, "    "+dim.Render("v"+version))
	lines = append(lines, "")

	separator := dim.Render("    ─────────────────────────────────")
	lines = append(lines, separator)
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Gateway"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("    %s  HTTP API       %s", check, cyan.Render("http://"+addr)))
	lines = append(lines, fmt.Sprintf("    %s  Artifacts      %s", check, dim.Render(fmt.Sprintf("last %d kept", cfg.ArtifactCacheSize))))
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Documents"))
	lines = append(lines, "")
	if len(docs) == 0 {
		lines = append(lines, fmt.Sprintf("    %s  %s", dot, dim.Render("none loaded (pass files as arguments)")))
	}
	for _, d := range docs {
		info := d.Info()
		lines = append(lines, fmt.Sprintf("    %s  %-20s %s", check, info.FileName, yellow.Render(info.SessionID)))
	}
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Config"))
	lines = append(lines, "")
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}

	lines = append(lines, "")
	lines = append(lines, separator)
	lines = append(lines, "")
	lines = append(lines, "    "+dim.Render("Connect with ")+yellow.Render("slides -session <id>"))
	lines = append(lines, "    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"))
	lines = append(lines, "")

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
