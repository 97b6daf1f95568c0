package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/domain"
	"github.com/alexanderramin/stricto/internal/repository"
	"github.com/alexanderramin/stricto/internal/testutil"
)

func TestBackupExportImportRoundTrip(t *testing.T) {
	store, conn := newTestStore(t, nil, nil)
	dna := testutil.NewDNA("u1", testutil.WithGamification(domain.Gamification{
		Points:              150,
		Badges:              []string{"task_10"},
		TotalTasksCompleted: 14,
	}))
	seedProfile(t, conn, dna)
	seedTasks(t, conn, "u1", []domain.Task{
		testutil.NewTask("Percentages Drill", domain.SubjectMath),
		testutil.NewTask("Polity Revision", domain.SubjectGA, testutil.Completed()),
	})
	seedHistory(t, conn, "u1", domain.History{
		"2026-08-30": {Status: domain.DayFull, Percent: 100},
	})

	svc := NewBackupService(store)
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, svc.Export(context.Background(), "u1", path))

	// Restore into a fresh database.
	store2, conn2 := newTestStore(t, nil, nil)
	svc2 := NewBackupService(store2)

	result, err := svc2.Import(context.Background(), "u1", path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TaskCount)
	assert.Equal(t, 1, result.HistoryDays)

	restored, err := repository.NewSQLiteProfileRepo(conn2).Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 150, restored.Gamification.Points)
	assert.Equal(t, []string{"task_10"}, restored.Gamification.Badges)

	tasks, err := repository.NewSQLiteTaskRepo(conn2).List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[1].Completed)
}

func TestBackupExportWithoutProfile(t *testing.T) {
	store, _ := newTestStore(t, nil, nil)
	svc := NewBackupService(store)

	err := svc.Export(context.Background(), "ghost", filepath.Join(t.TempDir(), "x.json"))

	var perr *app.ProtocolError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, app.ErrProfileMissing, perr.Code)
}

func TestBackupImportRejectsInvalidFile(t *testing.T) {
	store, _ := newTestStore(t, nil, nil)
	svc := NewBackupService(store)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks":[{"id":"","title":"","duration":0}]}`), 0o644))

	_, err := svc.Import(context.Background(), "u1", path)
	assert.ErrorContains(t, err, "invalid backup")
}
