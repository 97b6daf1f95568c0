package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/stricto/internal/brain"
	"github.com/alexanderramin/stricto/internal/cli"
	"github.com/alexanderramin/stricto/internal/db"
	"github.com/alexanderramin/stricto/internal/remote"
	"github.com/alexanderramin/stricto/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.stricto/stricto.db
	dbPath := os.Getenv("STRICTO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".stricto", "stricto.db")
	}

	userID := os.Getenv("STRICTO_USER")
	if userID == "" {
		userID = "local"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Remote document store (optional, enabled by STRICTO_SYNC_URL)
	var remoteStore remote.Store
	syncCfg := remote.LoadConfig()
	if syncCfg.Enabled {
		remoteStore = remote.NewStore(syncCfg)
	}

	store := service.NewStore(database, remoteStore, service.LogSyncObserver{})

	// Task generator client
	brainCfg := brain.LoadConfig()
	var observer brain.Observer = brain.NoopObserver{}
	if brainCfg.LogCalls {
		observer = brain.NewLogObserver(os.Stderr)
	}
	brainClient := brain.NewClient(brainCfg, observer)

	app := &cli.App{
		Profile:    service.NewProfileService(store),
		Protocol:   service.NewProtocolService(store, brainClient),
		Completion: service.NewCompletionService(store),
		Status:     service.NewStatusService(store),
		Leave:      service.NewLeaveService(store),
		Backup:     service.NewBackupService(store),
		UserID:     userID,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
