package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/api"
	"github.com/thesavant42/launchdeck/internal/config"
	"github.com/thesavant42/launchdeck/internal/db"
	"github.com/thesavant42/launchdeck/internal/feed"
	"github.com/thesavant42/launchdeck/internal/missions"
	"github.com/thesavant42/launchdeck/internal/models"
	"github.com/thesavant42/launchdeck/internal/ui"
)

// session holds everything a command needs: config, logger, the preference
// store over SQLite and the launch feed
type session struct {
	cfg    config.Config
	logger *log.Logger
	db     *db.DB
	store  *missions.Store
	feed   *feed.Feed

	closeLog func() error
}

// loadConfig reads the environment and applies the persistent flags on top
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if rootFlags.dbPath != "" {
		cfg.DBPath = rootFlags.dbPath
	}
	if rootFlags.file != "" {
		cfg.LaunchFile = rootFlags.file
	}
	if rootFlags.url != "" {
		cfg.LaunchesURL = rootFlags.url
	}
	if rootFlags.logLevel != "" {
		cfg.LogLevel = rootFlags.logLevel
	}
	return cfg, nil
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog := config.NewFileLogger(cfg, "launchdeck")
	logger.Debug("Starting", "command", cmd.Name(), "db", cfg.DBPath, "version", version)

	database, err := db.New(cfg.DBPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open database: %w", err)
	}

	store, err := missions.Open(cmd.Context(), database, logger.WithPrefix("missions"))
	if err != nil {
		database.Close()
		_ = closeLog()
		return nil, fmt.Errorf("open mission store: %w", err)
	}

	var fetcher feed.Fetcher
	if cfg.LaunchFile != "" {
		fetcher = api.FileSource{Path: cfg.LaunchFile}
	} else {
		fetcher = api.NewLaunchClient(cfg.LaunchesURL, cfg.HTTPTimeout, logger.WithPrefix("api"))
	}

	f := feed.New(fetcher,
		feed.WithStaleTime(cfg.StaleTime),
		feed.WithLogger(logger.WithPrefix("feed")),
	)

	return &session{
		cfg:      cfg,
		logger:   logger,
		db:       database,
		store:    store,
		feed:     f,
		closeLog: closeLog,
	}, nil
}

func (s *session) Close() {
	s.feed.Close()
	if err := s.db.Close(); err != nil {
		s.logger.Warn("Failed to close database", "error", err)
	}
	_ = s.closeLog()
}

// fetchLaunches refreshes the feed and returns the manifest. A spinner runs
// while waiting when output goes to a terminal.
func (s *session) fetchLaunches(cmd *cobra.Command) ([]models.Launch, error) {
	refresh := func() error {
		return s.feed.Refresh(cmd.Context(), feed.RefreshOptions{})
	}
	var err error
	if isTerminal(cmd.OutOrStdout()) {
		err = ui.RunWithSpinner("Syncing with launchpad...", refresh)
	} else {
		err = refresh()
	}
	if err != nil {
		return nil, fmt.Errorf("fetch launches: %w", err)
	}
	return s.feed.Snapshot().Launches, nil
}

// persistErr surfaces a failed preference write as the command's error
func (s *session) persistErr() error {
	if err := s.store.PersistErr(); err != nil {
		return fmt.Errorf("preferences not saved: %w", err)
	}
	return nil
}

// lookup finds a launch by id; the name falls back to the id
func lookup(launches []models.Launch, id string) (models.Launch, bool) {
	for _, l := range launches {
		if l.ID == id {
			return l, true
		}
	}
	return models.Launch{ID: id, Name: id}, false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

var errNoLaunches = errors.New("no launches returned from API")
