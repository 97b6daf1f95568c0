package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/stricto/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProfileRepo is the local cache of the user's DNA document.
type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.DNA, error)
	Upsert(ctx context.Context, dna *domain.DNA) error
}

// TaskRepo holds the current day's protocol. The list is only ever replaced
// wholesale by a protocol run; individual tasks change only their completed
// flag.
type TaskRepo interface {
	List(ctx context.Context, userID string) ([]domain.Task, error)
	GetByID(ctx context.Context, userID, taskID string) (*domain.Task, error)
	ReplaceAll(ctx context.Context, userID string, tasks []domain.Task) error
	SetCompleted(ctx context.Context, userID, taskID string, completed bool) error
}

// HistoryRepo is the local cache of the study history calendar.
type HistoryRepo interface {
	Get(ctx context.Context, userID string) (domain.History, error)
	UpsertDays(ctx context.Context, userID string, days domain.History) error
	ReplaceAll(ctx context.Context, userID string, h domain.History) error
}
