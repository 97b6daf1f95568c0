package brain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 0
	return cfg
}

func examDate(s string) *string { return &s }

func TestClient_GenerateTasks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-daily-task", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req TaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "MATH", req.Subject)
		assert.Equal(t, "weak", req.Level)
		require.NotNil(t, req.ExamDate)
		assert.Equal(t, "2026-12-31", *req.ExamDate)
		assert.Equal(t, 80, req.SyllabusCompleted)

		resp := TaskResponse{Tasks: []Candidate{
			{Task: "Percentages Drill", Duration: "1.00 Hrs", Priority: "high"},
			{Task: "Mensuration Basics", Duration: "0.50 Hrs", TopicID: "m-12"},
		}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	tasks, err := client.GenerateTasks(context.Background(), TaskRequest{
		Subject:           "MATH",
		Level:             "weak",
		ExamStage:         "Prelims",
		ExamDate:          examDate("2026-12-31"),
		UserType:          "repeater",
		SyllabusCompleted: 80,
		DailyHours:        6,
	})

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Percentages Drill", tasks[0].Task)
	assert.Equal(t, "m-12", tasks[1].TopicID)
}

func TestClient_GenerateTasks_Rejected_NoRetry(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		json.NewEncoder(w).Encode(TaskResponse{Error: "unknown subject"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2

	client := NewClient(cfg, NoopObserver{})
	_, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "BOGUS"})

	assert.ErrorIs(t, err, ErrBrainRejected)
	assert.Contains(t, err.Error(), "unknown subject")
	// A rejection is authoritative, so no second attempt is made.
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_GenerateTasks_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "MATH"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_GenerateTasks_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "MATH"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestClient_GenerateTasks_RetryOnTransientError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(TaskResponse{Tasks: []Candidate{{Task: "ok", Duration: "0.50 Hrs"}}})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewClient(cfg, NoopObserver{})
	tasks, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "MATH"})

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_GenerateTasks_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening

	client := NewClient(cfg, NoopObserver{})
	_, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "MATH"})

	assert.ErrorIs(t, err, ErrBrainUnavailable)
}

func TestClient_GenerateTasks_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewClient(cfg, NoopObserver{})
	_, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "MATH"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TaskResponse{Tasks: []Candidate{
			{Task: "a", Duration: "1.00 Hrs"},
			{Task: "b", Duration: "1.00 Hrs"},
		}})
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}

	client := NewClient(testConfig(srv.URL), obs)
	_, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "GA"})

	require.NoError(t, err)
	assert.Equal(t, "GA", captured.Subject)
	assert.Equal(t, 2, captured.TaskCount)
	assert.True(t, captured.Success)
	assert.GreaterOrEqual(t, captured.LatencyMs, int64(0))
}

func TestClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	client := NewClient(cfg, obs)

	_, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "MATH"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

func TestClient_ObserverRejectedErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TaskResponse{Error: "nope"})
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	client := NewClient(testConfig(srv.URL), obs)

	_, err := client.GenerateTasks(context.Background(), TaskRequest{Subject: "MATH"})

	assert.ErrorIs(t, err, ErrBrainRejected)
	assert.Equal(t, "REJECTED", captured.ErrorCode)
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(e CallEvent) { o.fn(e) }
