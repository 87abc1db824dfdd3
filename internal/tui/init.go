package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/javiermolinar/together/internal/config"
	"github.com/javiermolinar/together/internal/db"
	"github.com/javiermolinar/together/internal/journal"
)

// InitState tracks whether startup initialization is required.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// DetectInitState checks for missing config or database files.
func DetectInitState(cfg *config.Config) (InitState, error) {
	return detectInitState(config.DefaultConfigPath(), cfg.Storage.DBPath)
}

func detectInitState(configPath, dbPath string) (InitState, error) {
	state := InitState{
		ConfigPath: configPath,
		DBPath:     dbPath,
	}

	configMissing, err := pathMissing(state.ConfigPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	dbMissing, err := pathMissing(state.DBPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}

	state.ConfigMissing = configMissing
	state.DBMissing = dbMissing
	state.NeedsInit = configMissing || dbMissing
	return state, nil
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}

func openRepo(dbPath string, log *zap.Logger) (journal.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath, db.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

func (m Model) initializeStorage() (Model, error) {
	if m.initState.ConfigMissing {
		if err := m.config.SaveTo(m.initState.ConfigPath); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
		m.log.Info("config written", zap.String("path", m.initState.ConfigPath))
	}

	if m.repo == nil {
		repo, err := openRepo(m.initState.DBPath, m.log)
		if err != nil {
			return m, err
		}
		m.repo = repo
		m.log.Info("journal opened", zap.String("path", m.initState.DBPath))
	}

	m.initState = InitState{}
	return m, nil
}
