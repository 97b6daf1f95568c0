package remote

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

	"github.com/alexanderramin/stricto/internal/domain"
)

var (
	// ErrStoreUnavailable indicates the document store is unreachable.
	ErrStoreUnavailable = errors.New("remote store unavailable")

	// ErrNoDocument indicates the user has no stored document yet.
	ErrNoDocument = errors.New("no remote document")
)

// Store is the remote profile document store. All writes are partial updates
// of the user's document; readers get the whole document.
type Store interface {
	FetchDocument(ctx context.Context, userID string) (*Document, error)
	SaveProfile(ctx context.Context, dna *domain.DNA) error
	SaveTasks(ctx context.Context, userID string, tasks []domain.Task) error
	SaveHistory(ctx context.Context, userID string, h domain.History) error
}

// httpStore implements Store against a document-store HTTP API:
// GET /users/{id} returns the document, PATCH /users/{id} merges fields.
type httpStore struct {
	cfg  Config
	http *http.Client
}

// NewStore creates a Store for the configured endpoint.
func NewStore(cfg Config) Store {
	return &httpStore{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

func (s *httpStore) FetchDocument(ctx context.Context, userID string) (*Document, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userURL(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, wrapTransportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoDocument
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store returned status %d: %s", resp.StatusCode, string(body))
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}

func (s *httpStore) SaveProfile(ctx context.Context, dna *domain.DNA) error {
	return s.patch(ctx, dna.UserID, Document{UserDNA: dnaToDoc(dna)})
}

func (s *httpStore) SaveTasks(ctx context.Context, userID string, tasks []domain.Task) error {
	return s.patch(ctx, userID, Document{Tasks: tasksToDoc(tasks)})
}

func (s *httpStore) SaveHistory(ctx context.Context, userID string, h domain.History) error {
	return s.patch(ctx, userID, Document{History: historyToDoc(h)})
}

func (s *httpStore) patch(ctx context.Context, userID string, doc Document) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.userURL(userID), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return wrapTransportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("store returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (s *httpStore) userURL(userID string) string {
	return s.cfg.Endpoint + "/users/" + userID
}

func (s *httpStore) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutMs)*time.Millisecond)
}

func wrapTransportErr(err error) error {
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: timeout", ErrStoreUnavailable)
	}
	return err
}
