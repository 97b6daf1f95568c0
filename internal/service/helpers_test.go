package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/stricto/internal/brain"
	"github.com/alexanderramin/stricto/internal/domain"
	"github.com/alexanderramin/stricto/internal/remote"
	"github.com/alexanderramin/stricto/internal/repository"
	"github.com/alexanderramin/stricto/internal/testutil"
)

// fakeRemote is an in-memory remote.Store.
type fakeRemote struct {
	mu           sync.Mutex
	doc          *remote.Document
	fetchErr     error
	saveErr      error
	profileSaves []*domain.DNA
	taskSaves    [][]domain.Task
	historySaves []domain.History
}

func (f *fakeRemote) FetchDocument(_ context.Context, _ string) (*remote.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.doc == nil {
		return nil, remote.ErrNoDocument
	}
	return f.doc, nil
}

func (f *fakeRemote) SaveProfile(_ context.Context, dna *domain.DNA) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.profileSaves = append(f.profileSaves, dna)
	return nil
}

func (f *fakeRemote) SaveTasks(_ context.Context, _ string, tasks []domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.taskSaves = append(f.taskSaves, tasks)
	return nil
}

func (f *fakeRemote) SaveHistory(_ context.Context, _ string, h domain.History) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.historySaves = append(f.historySaves, h)
	return nil
}

// fakeBrain serves canned candidates per subject.
type fakeBrain struct {
	mu        sync.Mutex
	responses map[string][]brain.Candidate
	err       error
}

func (f *fakeBrain) GenerateTasks(_ context.Context, req brain.TaskRequest) ([]brain.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.responses[req.Subject], nil
}

// captureObserver records degradation events.
type captureObserver struct {
	mu  sync.Mutex
	ops []string
}

func (c *captureObserver) PersistenceDegraded(op string, _ error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
}

func (c *captureObserver) seen() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.ops...)
}

func seedProfile(t *testing.T, conn *sql.DB, dna *domain.DNA) {
	t.Helper()
	require.NoError(t, repository.NewSQLiteProfileRepo(conn).Upsert(context.Background(), dna))
}

func seedTasks(t *testing.T, conn *sql.DB, userID string, tasks []domain.Task) {
	t.Helper()
	require.NoError(t, repository.NewSQLiteTaskRepo(conn).ReplaceAll(context.Background(), userID, tasks))
}

func seedHistory(t *testing.T, conn *sql.DB, userID string, h domain.History) {
	t.Helper()
	require.NoError(t, repository.NewSQLiteHistoryRepo(conn).ReplaceAll(context.Background(), userID, h))
}

func newTestStore(t *testing.T, remoteStore remote.Store, observer SyncObserver) (*Store, *sql.DB) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	return NewStore(conn, remoteStore, observer), conn
}
