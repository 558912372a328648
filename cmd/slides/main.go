package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/slides/internal/export"
	"github.com/tinytelemetry/slides/internal/generation"
	"github.com/tinytelemetry/slides/internal/logging"
	"github.com/tinytelemetry/slides/internal/session"
	"github.com/tinytelemetry/slides/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var serverURL string
	var sessionID string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/slides/config.yml)")
	flag.StringVar(&serverURL, "server", "", "override generation service url")
	flag.StringVar(&sessionID, "session", "", "override document session id")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Slides - Presentation Generator\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if sessionID != "" {
		cfg.SessionID = sessionID
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	logger, cleanupLogger := logging.Setup(logging.Config{Name: "slides", Level: cfg.LogLevel})
	defer cleanupLogger()

	home, _ := os.UserHomeDir()
	configDir := filepath.Join(home, ".config", "slides")
	if err := tui.InitializeSkin(cfg.Skin, configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	remote := session.NewRemote(cfg.ServerURL, cfg.SessionID, httpClient)
	client, err := generation.NewClient(cfg.ServerURL, httpClient, logger)
	if err != nil {
		return err
	}

	ws := tui.NewWorkspace(tui.WorkspaceConfig{
		Gate:       session.NewGate(remote),
		Session:    remote,
		Generator:  client,
		Downloader: export.NewDownloader(httpClient, logger),
		ExportDir:  cfg.ExportDir,
		MaxSlides:  cfg.MaxSlides,
		Timeout:    cfg.RequestTimeout,
		Logger:     logger,
	})

	logger.Info().
		Str("server_url", cfg.ServerURL).
		Str("session_id", cfg.SessionID).
		Str("version", version).
		Msg("starting slides")

	p := tea.NewProgram(tui.New(ws), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
