package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/importer"
	"github.com/alexanderramin/stricto/internal/repository"
)

type backupService struct {
	store *Store
}

func NewBackupService(store *Store) BackupService {
	return &backupService{store: store}
}

func (s *backupService) Export(ctx context.Context, userID, path string) error {
	dna, err := s.store.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &app.ProtocolError{Code: app.ErrProfileMissing, Message: "no profile found, nothing to export"}
	}
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	tasks, err := s.store.tasks.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("listing tasks: %w", err)
	}
	h, err := s.store.history.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	return importer.WriteBackupSchema(path, importer.FromDomain(dna, tasks, h))
}

func (s *backupService) Import(ctx context.Context, userID, path string) (*BackupResult, error) {
	schema, err := importer.LoadBackupSchema(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateBackupSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid backup: %w", errors.Join(errs...))
	}

	dna, tasks, h := importer.ToDomain(schema, userID)

	if err := s.store.SaveProfile(ctx, dna); err != nil {
		return nil, err
	}
	if err := s.store.SaveTasks(ctx, userID, tasks); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceHistory(ctx, userID, h); err != nil {
		return nil, err
	}

	return &BackupResult{TaskCount: len(tasks), HistoryDays: len(h)}, nil
}
