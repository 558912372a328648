package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/tinytelemetry/slides/internal/model"
)

// StatusResponse is the wire shape of GET /api/sessions/:id.
type StatusResponse struct {
	SessionID string `json:"session_id"`
	Active    bool   `json:"active"`
	FileName  string `json:"file_name"`
	WordCount int    `json:"word_count"`
	PageCount int    `json:"page_count"`
}

// Remote is a document session owned by the generation service. It caches
// the last status it fetched; Refresh updates the cache.
type Remote struct {
	baseURL    string
	id         string
	httpClient *http.Client

	mu   sync.RWMutex
	last StatusResponse
}

// NewRemote creates a remote session for id on the service at baseURL.
func NewRemote(baseURL, id string, httpClient *http.Client) *Remote {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: model.DefaultRequestTimeout}
	}
	return &Remote{
		baseURL:    strings.TrimRight(baseURL, "/"),
		id:         strings.TrimSpace(id),
		httpClient: httpClient,
	}
}

// Refresh fetches the session status. On error the session becomes inactive.
func (r *Remote) Refresh(ctx context.Context) error {
	status, err := r.fetch(ctx)
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.last = StatusResponse{SessionID: r.id}
		return err
	}
	r.last = status
	return nil
}

func (r *Remote) fetch(ctx context.Context) (StatusResponse, error) {
	var status StatusResponse
	if r.id == "" {
		return status, model.PreconditionError("no session id configured", model.ErrNoDocument)
	}

	endpoint := r.baseURL + "/api/sessions/" + url.PathEscape(r.id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return status, model.TransportError("build session request", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return status, model.TransportError("fetch session", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return status, model.PreconditionError("session not found", model.ErrNoDocument)
	}
	if resp.StatusCode != http.StatusOK {
		return status, model.ServiceError(fmt.Sprintf("session status %d", resp.StatusCode), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return status, model.ServiceError("decode session", err)
	}
	return status, nil
}

// Active reports the cached activity flag.
func (r *Remote) Active() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last.Active
}

// Info returns the cached metadata.
func (r *Remote) Info() model.DocumentInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id := r.last.SessionID
	if id == "" {
		id = r.id
	}
	return model.DocumentInfo{
		SessionID: id,
		FileName:  r.last.FileName,
		WordCount: r.last.WordCount,
		PageCount: r.last.PageCount,
	}
}
