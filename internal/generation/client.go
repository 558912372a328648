package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/tinytelemetry/slides/internal/model"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 16 << 20

// Client issues generation requests to the generation service.
// At most one request is outstanding at a time; a concurrent call fails fast.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
	inflight   *semaphore.Weighted
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/")
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, model.ConfigError(fmt.Sprintf("invalid server url %q", baseURL), err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: model.DefaultRequestTimeout}
	}
	return &Client{
		base:       base,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "generation").Logger(),
		inflight:   semaphore.NewWeighted(1),
	}, nil
}

// Generate performs one generation call. It never returns an error: every
// failure is folded into a Failure outcome with a user-facing message.
func (c *Client) Generate(ctx context.Context, req model.GenerationRequest) model.Outcome {
	if !c.inflight.TryAcquire(1) {
		c.logger.Warn().Str("session_id", req.SessionID).Msg("generation rejected: request in flight")
		return model.Failed(model.ErrGenerationInFlight.Error())
	}
	defer c.inflight.Release(1)

	start := time.Now()
	resp, err := c.post(ctx, req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("session_id", req.SessionID).
			Dur("elapsed", time.Since(start)).
			Msg("generation failed")
		return model.Failed(diagnosticOf(err))
	}

	outcome := toOutcome(resp, c.base)
	evt := c.logger.Info()
	if !outcome.OK() {
		evt = c.logger.Warn()
	}
	evt.Str("session_id", req.SessionID).
		Int("max_slides", req.MaxSlides).
		Bool("topic_set", req.Topic != "").
		Bool("ok", outcome.OK()).
		Bool("fallback", outcome.UsedFallback).
		Int("slides", outcome.Deck.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("generation finished")
	return outcome
}

// InFlight reports whether a request is currently outstanding.
func (c *Client) InFlight() bool {
	if c.inflight.TryAcquire(1) {
		c.inflight.Release(1)
		return false
	}
	return true
}

func (c *Client) post(ctx context.Context, req model.GenerationRequest) (*Response, error) {
	body, err := json.Marshal(toWire(req))
	if err != nil {
		return nil, model.TransportError("marshal request", err)
	}

	endpoint := c.base.ResolveReference(&url.URL{Path: strings.TrimPrefix(GeneratePath, "/")})
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, model.TransportError("build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, model.TransportError("send request", err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, model.TransportError("read response", err)
	}

	var resp Response
	decodeErr := json.Unmarshal(data, &resp)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		msg := ""
		if decodeErr == nil {
			msg = resp.diagnostic()
		}
		return nil, model.ServiceError(msg, fmt.Errorf("status %d", httpResp.StatusCode))
	}
	if decodeErr != nil {
		return nil, model.ServiceError("", fmt.Errorf("decode response: %w", decodeErr))
	}
	return &resp, nil
}

// diagnosticOf picks the user-facing message for a failed call. Only
// service-supplied messages are surfaced; transport detail stays in the log.
func diagnosticOf(err error) string {
	var de *model.DomainError
	if errors.As(err, &de) && de.Type == model.ErrorTypeService && de.Message != "" {
		return de.Message
	}
	return model.GenericFailureMessage
}
