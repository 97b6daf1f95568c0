package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/stricto/internal/domain"
)

func testStoreConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	return cfg
}

func TestStore_FetchDocument_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"userDNA": {
				"goal": {"exam": "SSC CGL", "date": "2026-12-31", "stage": "Prelims"},
				"level": "repeater",
				"subjects": {"weak": ["MATH"], "average": [], "strong": ["ENGLISH"]},
				"schedule": {"hours": 6, "chronotype": "night"},
				"gamification": {"points": 120, "badges": ["task_10"], "totalTasksCompleted": 14}
			},
			"tasks": [
				{"id": "t1", "title": "Percentages Drill", "category": "MATH",
				 "duration": 60, "priority": "high", "completed": false,
				 "created": "2026-08-30T09:00:00Z"}
			],
			"history": {
				"2026-08-30": {"status": "full", "percent": 100}
			}
		}`))
	}))
	defer srv.Close()

	store := NewStore(testStoreConfig(srv.URL))
	doc, err := store.FetchDocument(context.Background(), "u1")
	require.NoError(t, err)

	dna := doc.DNA("u1")
	require.NotNil(t, dna)
	assert.Equal(t, "u1", dna.UserID)
	assert.Equal(t, "SSC CGL", dna.Goal.Exam)
	assert.Equal(t, []string{"MATH"}, dna.Subjects.Weak)
	assert.Equal(t, 120, dna.Gamification.Points)

	tasks := doc.TaskList()
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, domain.SubjectMath, tasks[0].Category)

	h := doc.HistoryMap()
	assert.Equal(t, domain.DayFull, h["2026-08-30"].Status)
}

func TestStore_FetchDocument_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store := NewStore(testStoreConfig(srv.URL))
	_, err := store.FetchDocument(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestStore_FetchDocument_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	store := NewStore(testStoreConfig(srv.URL))
	_, err := store.FetchDocument(context.Background(), "u1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoDocument)
	assert.Contains(t, err.Error(), "status 500")
}

func TestStore_FetchDocument_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	store := NewStore(testStoreConfig(srv.URL))
	_, err := store.FetchDocument(context.Background(), "u1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding document")
}

func TestStore_FetchDocument_Unavailable(t *testing.T) {
	store := NewStore(testStoreConfig("http://127.0.0.1:1")) // nothing listening
	_, err := store.FetchDocument(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestStore_FetchDocument_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testStoreConfig(srv.URL)
	cfg.TimeoutMs = 50

	store := NewStore(cfg)
	_, err := store.FetchDocument(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestStore_SaveProfile_PatchesProfileSection(t *testing.T) {
	var received Document
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1", r.URL.Path)
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	dna := &domain.DNA{
		UserID: "u1",
		Goal:   domain.Goal{Exam: "SSC CGL", Date: "2026-12-31", Stage: domain.StagePrelims},
		Level:  domain.LevelRepeater,
	}

	store := NewStore(testStoreConfig(srv.URL))
	require.NoError(t, store.SaveProfile(context.Background(), dna))

	// Only the profile section travels; tasks and history stay untouched.
	require.NotNil(t, received.UserDNA)
	assert.Equal(t, "SSC CGL", received.UserDNA.Goal.Exam)
	assert.Nil(t, received.Tasks)
	assert.Nil(t, received.History)
}

func TestStore_SaveTasks_PatchesTaskSection(t *testing.T) {
	var received Document
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	task := domain.NewTask("Percentages Drill", domain.SubjectMath, 60, domain.PriorityHigh, nil, time.Now())

	store := NewStore(testStoreConfig(srv.URL))
	require.NoError(t, store.SaveTasks(context.Background(), "u1", []domain.Task{task}))

	require.Len(t, received.Tasks, 1)
	assert.Equal(t, task.ID, received.Tasks[0].ID)
	assert.Equal(t, "high", received.Tasks[0].Priority)
	assert.Nil(t, received.UserDNA)
}

func TestStore_SaveHistory_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	h := domain.History{"2026-08-31": {Status: domain.DayFull, Percent: 100}}

	store := NewStore(testStoreConfig(srv.URL))
	err := store.SaveHistory(context.Background(), "u1", h)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestStore_SaveHistory_Unavailable(t *testing.T) {
	store := NewStore(testStoreConfig("http://127.0.0.1:1"))
	err := store.SaveHistory(context.Background(), "u1", domain.History{})

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
