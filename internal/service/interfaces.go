package service

import (
	"context"

	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/domain"
)

type ProfileService interface {
	// Get loads the profile, remote-first with cache fallback.
	Get(ctx context.Context, userID string) (*domain.DNA, error)
	// Save persists the profile locally and mirrors it remotely best-effort.
	Save(ctx context.Context, dna *domain.DNA) error
}

type ProtocolService interface {
	// Initiate runs the daily protocol and replaces the task list.
	Initiate(ctx context.Context, req app.ProtocolRequest) (*app.ProtocolResponse, error)
	// Tasks returns the current protocol in stored order.
	Tasks(ctx context.Context, userID string) ([]domain.Task, error)
}

type CompletionService interface {
	Complete(ctx context.Context, req app.CompleteRequest) (*app.CompleteResponse, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error)
}

// BackupResult summarizes what a backup import restored.
type BackupResult struct {
	TaskCount   int
	HistoryDays int
}

type BackupService interface {
	// Export writes the full user record to a JSON backup file.
	Export(ctx context.Context, userID, path string) error
	// Import validates a backup file and replaces the local record with it.
	Import(ctx context.Context, userID, path string) (*BackupResult, error)
}

type LeaveService interface {
	// ApplyLeave marks the coming days as leave and returns the number of
	// days recorded.
	ApplyLeave(ctx context.Context, req app.LeaveRequest) (int, error)
}
