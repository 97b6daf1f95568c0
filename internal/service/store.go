package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/db"
	"github.com/alexanderramin/stricto/internal/domain"
	"github.com/alexanderramin/stricto/internal/remote"
	"github.com/alexanderramin/stricto/internal/repository"
)

// Store bundles the local cache, the optional remote document store, and the
// unit of work shared by all services. The remote document is authoritative
// on load; the local sqlite cache carries the app through outages.
type Store struct {
	profiles repository.ProfileRepo
	tasks    repository.TaskRepo
	history  repository.HistoryRepo
	uow      db.UnitOfWork
	remote   remote.Store // nil when sync is disabled
	observer SyncObserver
}

// NewStore wires a Store over an open database. remoteStore may be nil.
func NewStore(conn *sql.DB, remoteStore remote.Store, observer SyncObserver) *Store {
	if observer == nil {
		observer = NoopSyncObserver{}
	}
	return &Store{
		profiles: repository.NewSQLiteProfileRepo(conn),
		tasks:    repository.NewSQLiteTaskRepo(conn),
		history:  repository.NewSQLiteHistoryRepo(conn),
		uow:      db.NewSQLiteUnitOfWork(conn),
		remote:   remoteStore,
		observer: observer,
	}
}

// LoadProfile fetches the user's DNA, preferring the remote document and
// refreshing the local cache from it. A missing remote document or an
// unreachable store falls back to the cache; only a profile that exists
// nowhere is an error.
func (s *Store) LoadProfile(ctx context.Context, userID string) (*domain.DNA, error) {
	if s.remote != nil {
		doc, err := s.remote.FetchDocument(ctx, userID)
		switch {
		case err == nil && doc.DNA(userID) == nil:
			// document exists but holds no profile section yet
		case err == nil:
			if err := s.refreshCache(ctx, userID, doc); err != nil {
				return nil, fmt.Errorf("refreshing cache: %w", err)
			}
			return doc.DNA(userID), nil
		case errors.Is(err, remote.ErrNoDocument):
			// first run on this account, try the cache
		default:
			s.observer.PersistenceDegraded("fetch_document", err)
		}
	}

	dna, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.ProtocolError{
			Code:    app.ErrProfileMissing,
			Message: "no profile found, run profile setup first",
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return dna, nil
}

// refreshCache replaces the local copies of profile, tasks, and history with
// the remote document's contents in one transaction.
func (s *Store) refreshCache(ctx context.Context, userID string, doc *remote.Document) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txHistory := repository.NewSQLiteHistoryRepo(tx)

		if err := txProfiles.Upsert(ctx, doc.DNA(userID)); err != nil {
			return fmt.Errorf("caching profile: %w", err)
		}
		if err := txTasks.ReplaceAll(ctx, userID, doc.TaskList()); err != nil {
			return fmt.Errorf("caching tasks: %w", err)
		}
		if err := txHistory.ReplaceAll(ctx, userID, doc.HistoryMap()); err != nil {
			return fmt.Errorf("caching history: %w", err)
		}
		return nil
	})
}

// SaveProfile writes the DNA locally and mirrors it remotely best-effort.
func (s *Store) SaveProfile(ctx context.Context, dna *domain.DNA) error {
	if err := s.profiles.Upsert(ctx, dna); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	if s.remote != nil {
		if err := s.remote.SaveProfile(ctx, dna); err != nil {
			s.observer.PersistenceDegraded("save_profile", err)
		}
	}
	return nil
}

// SaveTasks replaces the local task list and mirrors it best-effort.
func (s *Store) SaveTasks(ctx context.Context, userID string, tasks []domain.Task) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTaskRepo(tx).ReplaceAll(ctx, userID, tasks)
	})
	if err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	if s.remote != nil {
		if err := s.remote.SaveTasks(ctx, userID, tasks); err != nil {
			s.observer.PersistenceDegraded("save_tasks", err)
		}
	}
	return nil
}

// ReplaceHistory swaps the whole local calendar and mirrors it best-effort.
func (s *Store) ReplaceHistory(ctx context.Context, userID string, h domain.History) error {
	if err := s.history.ReplaceAll(ctx, userID, h); err != nil {
		return fmt.Errorf("replacing history: %w", err)
	}
	if s.remote != nil {
		if err := s.remote.SaveHistory(ctx, userID, h); err != nil {
			s.observer.PersistenceDegraded("save_history", err)
		}
	}
	return nil
}

// SaveHistoryDays merges day records into the local history and mirrors the
// full calendar best-effort.
func (s *Store) SaveHistoryDays(ctx context.Context, userID string, days domain.History) error {
	if err := s.history.UpsertDays(ctx, userID, days); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	if s.remote != nil {
		full, err := s.history.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("reading history for sync: %w", err)
		}
		if err := s.remote.SaveHistory(ctx, userID, full); err != nil {
			s.observer.PersistenceDegraded("save_history", err)
		}
	}
	return nil
}
