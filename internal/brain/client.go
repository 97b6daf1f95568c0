package brain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// TaskRequest holds the per-subject parameters sent to the generation server.
type TaskRequest struct {
	Subject           string  `json:"subject"`
	Level             string  `json:"level"` // weak | average | strong
	ExamStage         string  `json:"examStage"`
	ExamDate          *string `json:"examDate"` // YYYY-MM-DD, nil when unknown
	UserType          string  `json:"userType"` // beginner | repeater
	SyllabusCompleted int     `json:"syllabusCompleted"`
	DailyHours        int     `json:"dailyHours"`
}

// Candidate is one task suggestion returned by the server. Duration arrives
// as a string of the form "1.50 Hrs"; topic fields are optional.
type Candidate struct {
	Task     string `json:"task"`
	Duration string `json:"duration"`
	Priority string `json:"priority,omitempty"`
	Type     string `json:"type,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Topic    string `json:"topic,omitempty"`
	SubTopic string `json:"sub_topic,omitempty"`
	TopicID  string `json:"topic_id,omitempty"`
}

// TaskResponse is the JSON body returned by POST /get-daily-task.
type TaskResponse struct {
	Tasks []Candidate `json:"tasks"`
	Note  string      `json:"note,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Client provides access to the remote task-generation service.
type Client interface {
	// GenerateTasks requests candidate tasks for one subject.
	GenerateTasks(ctx context.Context, req TaskRequest) ([]Candidate, error)
}

// httpClient implements Client against the brain server's HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to the configured brain server.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) GenerateTasks(ctx context.Context, req TaskRequest) ([]Candidate, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, req)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Subject:   req.Subject,
				LatencyMs: latency,
				TaskCount: len(resp.Tasks),
				Success:   true,
			})
			return resp.Tasks, nil
		}
		lastErr = err

		// A rejection is authoritative; only transport failures retry.
		if errors.Is(err, ErrBrainRejected) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	var finalErr error
	switch {
	case ctx.Err() != nil:
		finalErr = ErrTimeout
	case errors.Is(lastErr, ErrBrainRejected):
		finalErr = lastErr
	case isConnectionError(lastErr):
		finalErr = ErrBrainUnavailable
	default:
		finalErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}

	c.observer.OnCallComplete(CallEvent{
		Subject:   req.Subject,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(finalErr),
	})
	return nil, finalErr
}

func (c *httpClient) doRequest(ctx context.Context, req TaskRequest) (*TaskResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/get-daily-task"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brain returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp TaskResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrBrainRejected, resp.Error)
	}

	return &resp, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	return false
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrBrainUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBrainRejected):
		return "REJECTED"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}
