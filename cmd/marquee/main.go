package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kweston/marquee/internal/config"
	"github.com/kweston/marquee/internal/log"
	"github.com/kweston/marquee/internal/repository"
	"github.com/kweston/marquee/internal/service"
	"github.com/kweston/marquee/internal/store"
	"github.com/kweston/marquee/internal/tmdb"
	"github.com/kweston/marquee/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("marquee is an interactive application and needs a terminal")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	if !cfg.IsConfigured() {
		fmt.Println()
		fmt.Println("No TMDB API key configured.")
		fmt.Println("Set MARQUEE_TMDB_API_KEY or add it to the config file:")
		fmt.Println()
		fmt.Println("  tmdb:")
		fmt.Println("    api_key: \"...\"")
		fmt.Println()
		return fmt.Errorf("missing TMDB API key")
	}

	favorites, err := store.Open(cfg.Storage.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to open favorite store: %w", err)
	}
	defer favorites.Close()

	gateway := tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, logger)
	repo := repository.New(gateway, favorites, logger)

	searchCtrl := service.NewSearchController(repo, logger)
	defer searchCtrl.Close()
	homeLoader := service.NewHomeLoader(repo, logger)

	favWatch, err := favorites.Watch()
	if err != nil {
		return fmt.Errorf("failed to watch favorites: %w", err)
	}
	defer favWatch.Close()

	model := tui.NewModel(repo, searchCtrl, homeLoader, favWatch.C())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
