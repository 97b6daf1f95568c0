package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/brain"
	"github.com/alexanderramin/stricto/internal/domain"
	"github.com/alexanderramin/stricto/internal/repository"
	"github.com/alexanderramin/stricto/internal/testutil"
)

func protocolFixture() map[string][]brain.Candidate {
	return map[string][]brain.Candidate{
		"MATH":      {{Task: "Percentages Set A", Duration: "1.00 Hrs", Priority: "high"}},
		"REASONING": {{Task: "Seating Arrangement", Duration: "0.50 Hrs"}},
		"ENGLISH":   {{Task: "Cloze Test Practice", Duration: "0.50 Hrs"}},
		"GA":        {{Task: "Polity Revision", Duration: "1.00 Hrs"}},
	}
}

func TestInitiateGeneratesAndPersists(t *testing.T) {
	store, conn := newTestStore(t, nil, nil)
	seedProfile(t, conn, testutil.NewDNA("u1"))

	svc := NewProtocolService(store, &fakeBrain{responses: protocolFixture()})
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	resp, err := svc.Initiate(context.Background(), app.ProtocolRequest{UserID: "u1", Now: &now})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 4)
	assert.False(t, resp.NoNewDirectives())

	// Weak math leads, strong english trails.
	assert.Equal(t, "Percentages Set A", resp.Tasks[0].Title)
	assert.Equal(t, "Cloze Test Practice", resp.Tasks[3].Title)

	stored, err := repository.NewSQLiteTaskRepo(conn).List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, stored, 4)
	assert.Equal(t, resp.Tasks[0].Title, stored[0].Title)
	assert.Equal(t, 60, stored[0].Duration)
}

func TestInitiateMirrorsTasksRemotely(t *testing.T) {
	fr := &fakeRemote{}
	store, conn := newTestStore(t, fr, nil)
	seedProfile(t, conn, testutil.NewDNA("u1"))

	svc := NewProtocolService(store, &fakeBrain{responses: protocolFixture()})

	_, err := svc.Initiate(context.Background(), app.ProtocolRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, fr.taskSaves, 1)
	assert.Len(t, fr.taskSaves[0], 4)
}

func TestInitiateIncompleteProfile(t *testing.T) {
	store, conn := newTestStore(t, nil, nil)
	dna := testutil.NewDNA("u1")
	dna.Goal.Exam = ""
	seedProfile(t, conn, dna)

	svc := NewProtocolService(store, &fakeBrain{responses: protocolFixture()})

	_, err := svc.Initiate(context.Background(), app.ProtocolRequest{UserID: "u1"})

	var perr *app.ProtocolError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, app.ErrProfileIncomplete, perr.Code)
}

func TestInitiateMissingProfile(t *testing.T) {
	store, _ := newTestStore(t, nil, nil)
	svc := NewProtocolService(store, &fakeBrain{responses: protocolFixture()})

	_, err := svc.Initiate(context.Background(), app.ProtocolRequest{UserID: "ghost"})

	var perr *app.ProtocolError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, app.ErrProfileMissing, perr.Code)
}

func TestInitiateEmptyRunKeepsPreviousTasks(t *testing.T) {
	store, conn := newTestStore(t, nil, nil)
	seedProfile(t, conn, testutil.NewDNA("u1"))
	previous := []domain.Task{testutil.NewTask("Yesterday's Mock", domain.SubjectMath)}
	seedTasks(t, conn, "u1", previous)

	svc := NewProtocolService(store, &fakeBrain{responses: map[string][]brain.Candidate{}})

	resp, err := svc.Initiate(context.Background(), app.ProtocolRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, resp.NoNewDirectives())

	stored, err := repository.NewSQLiteTaskRepo(conn).List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Yesterday's Mock", stored[0].Title)
}

func TestInitiateGeneratorDownReportsFailedSubjects(t *testing.T) {
	store, conn := newTestStore(t, nil, nil)
	seedProfile(t, conn, testutil.NewDNA("u1"))

	svc := NewProtocolService(store, &fakeBrain{err: errors.New("connection refused")})

	resp, err := svc.Initiate(context.Background(), app.ProtocolRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, resp.NoNewDirectives())
	assert.Len(t, resp.FailedSubjects, len(domain.CanonicalSubjects))
}

func TestTasksListsStoredOrder(t *testing.T) {
	store, conn := newTestStore(t, nil, nil)
	seedTasks(t, conn, "u1", []domain.Task{
		testutil.NewTask("First", domain.SubjectMath),
		testutil.NewTask("Second", domain.SubjectGA),
	})

	svc := NewProtocolService(store, &fakeBrain{})
	tasks, err := svc.Tasks(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Title)
	assert.Equal(t, "Second", tasks[1].Title)
}
