package support

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/letybo/ordering/internal/config"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/httpclient"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/sentry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunStatus is the lifecycle state of an assistant run
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusExpired        RunStatus = "expired"
)

// IsPending reports whether the run may still produce a reply
func (s RunStatus) IsPending() bool {
	return s == RunStatusQueued || s == RunStatusInProgress
}

// Client talks to a thread/run style assistant API
type Client interface {
	CreateThread(ctx context.Context) (string, error)
	AddMessage(ctx context.Context, threadID, text string) error
	CreateRun(ctx context.Context, threadID string) (string, error)
	GetRunStatus(ctx context.Context, threadID, runID string) (RunStatus, error)
	WaitForRun(ctx context.Context, threadID, runID string) (RunStatus, error)
	LatestMessage(ctx context.Context, threadID string) (string, error)
}

type assistantClient struct {
	cfg    config.SupportConfig
	http   httpclient.Client
	sentry *sentry.Service
	logger *logger.Logger

	keyMu  sync.Mutex
	apiKey string
}

func NewClient(cfg *config.Configuration, logger *logger.Logger, sentry *sentry.Service) Client {
	return NewClientWithHTTP(cfg.Support, httpclient.NewDefaultClient(httpclient.ClientConfig{
		Timeout:  cfg.Support.Timeout,
		RetryMax: cfg.Support.RetryMax,
	}, logger), logger, sentry)
}

// NewClientWithHTTP lets tests point the client at a fake transport
func NewClientWithHTTP(cfg config.SupportConfig, transport httpclient.Client, logger *logger.Logger, sentry *sentry.Service) Client {
	return &assistantClient{
		cfg:    cfg,
		http:   transport,
		sentry: sentry,
		logger: logger,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}
}

type keyEnvelope struct {
	Body string `json:"body"`
}

type keyPayload struct {
	Data struct {
		OpenAIAPIKey string `json:"OPENAI_API_KEY"`
	} `json:"data"`
}

// key returns the configured key, fetching it from the key endpoint on first
// use. A failed fetch is retried on the next call.
func (c *assistantClient) key(ctx context.Context) (string, error) {
	c.keyMu.Lock()
	defer c.keyMu.Unlock()

	if c.apiKey != "" {
		return c.apiKey, nil
	}
	if c.cfg.KeyEndpoint == "" {
		return "", ierr.NewError("no api key configured").
			WithHint("Support chat is not configured").
			Mark(ierr.ErrSystem)
	}

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.cfg.KeyEndpoint,
	})
	if err != nil {
		return "", ierr.WithError(err).
			WithMessage("fetching api key").
			WithHint("Support chat is temporarily unavailable").
			Mark(ierr.ErrHTTPClient)
	}

	var envelope keyEnvelope
	var payload keyPayload
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return "", c.keyError(err)
	}
	if err := json.Unmarshal([]byte(envelope.Body), &payload); err != nil {
		return "", c.keyError(err)
	}

	key := strings.TrimSpace(payload.Data.OpenAIAPIKey)
	if key == "" {
		return "", c.keyError(errors.New("API key not found in response"))
	}

	c.apiKey = key
	c.logger.Infow("fetched support api key", "endpoint", c.cfg.KeyEndpoint)
	return key, nil
}

func (c *assistantClient) keyError(err error) error {
	return ierr.WithError(err).
		WithMessage("parsing api key response").
		WithHint("Support chat is temporarily unavailable").
		Mark(ierr.ErrHTTPClient)
}

// do sends one authenticated request and decodes the JSON reply into out
func (c *assistantClient) do(ctx context.Context, operation, method, path string, body, out interface{}) (err error) {
	span, ctx := c.sentry.StartSupportSpan(ctx, operation, map[string]interface{}{"path": path})
	defer func() { sentry.FinishSpan(span, err) }()

	key, err := c.key(ctx)
	if err != nil {
		return err
	}

	// threads, messages and runs are created by POST; a retried create could
	// start a second run on the thread
	req := &httpclient.Request{
		Method: method,
		URL:    strings.TrimRight(c.cfg.BaseURL, "/") + path,
		Headers: map[string]string{
			"Authorization": "Bearer " + key,
			"OpenAI-Beta":   "assistants=v2",
		},
		NoRetry: method != http.MethodGet,
	}
	if body != nil {
		if req.Body, err = json.Marshal(body); err != nil {
			return ierr.WithError(err).Mark(ierr.ErrSystem)
		}
	}

	resp, err := c.http.Send(ctx, req)
	if err != nil {
		return ierr.WithError(err).
			WithMessagef("assistant %s", operation).
			WithHint("Support chat is temporarily unavailable").
			Mark(ierr.ErrHTTPClient)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return ierr.WithError(err).
			WithMessagef("decoding assistant %s response", operation).
			WithHint("Support chat returned an unexpected response").
			Mark(ierr.ErrHTTPClient)
	}
	return nil
}

type objectResponse struct {
	ID     string    `json:"id"`
	Status RunStatus `json:"status"`
}

func (c *assistantClient) CreateThread(ctx context.Context) (string, error) {
	var out objectResponse
	if err := c.do(ctx, "thread.create", http.MethodPost, "/threads", map[string]any{}, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *assistantClient) AddMessage(ctx context.Context, threadID, text string) error {
	body := map[string]any{
		"role":    "user",
		"content": text,
	}
	return c.do(ctx, "message.create", http.MethodPost, "/threads/"+threadID+"/messages", body, nil)
}

func (c *assistantClient) CreateRun(ctx context.Context, threadID string) (string, error) {
	var out objectResponse
	body := map[string]any{"assistant_id": c.cfg.AssistantID}
	if err := c.do(ctx, "run.create", http.MethodPost, "/threads/"+threadID+"/runs", body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *assistantClient) GetRunStatus(ctx context.Context, threadID, runID string) (RunStatus, error) {
	var out objectResponse
	if err := c.do(ctx, "run.get", http.MethodGet, "/threads/"+threadID+"/runs/"+runID, nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

var errRunPending = errors.New("run pending")

// WaitForRun polls every poll interval while the run is queued or in
// progress, giving up after max wait. It returns the terminal status.
func (c *assistantClient) WaitForRun(ctx context.Context, threadID, runID string) (RunStatus, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.MaxWait)
	defer cancel()

	var status RunStatus
	op := func() error {
		s, err := c.GetRunStatus(waitCtx, threadID, runID)
		if err != nil {
			return backoff.Permanent(err)
		}
		status = s
		if s.IsPending() {
			return errRunPending
		}
		return nil
	}

	policy := backoff.WithContext(backoff.NewConstantBackOff(c.pollInterval()), waitCtx)
	err := backoff.Retry(op, policy)
	if err == nil {
		return status, nil
	}
	if ctx.Err() == nil && waitCtx.Err() != nil {
		return status, ierr.NewError("assistant run timed out").
			WithHintf("The assistant did not reply within %s", c.cfg.MaxWait).
			WithReportableDetails(map[string]any{
				"run_id": runID,
				"status": status,
			}).
			Mark(ierr.ErrHTTPClient)
	}
	return status, err
}

func (c *assistantClient) pollInterval() time.Duration {
	if c.cfg.PollInterval <= 0 {
		return time.Second
	}
	return c.cfg.PollInterval
}

type messageList struct {
	Data []struct {
		Content []struct {
			Text struct {
				Value string `json:"value"`
			} `json:"text"`
		} `json:"content"`
	} `json:"data"`
}

// LatestMessage returns the text of the newest message on the thread
func (c *assistantClient) LatestMessage(ctx context.Context, threadID string) (string, error) {
	var out messageList
	if err := c.do(ctx, "message.list", http.MethodGet, "/threads/"+threadID+"/messages", nil, &out); err != nil {
		return "", err
	}
	if len(out.Data) == 0 || len(out.Data[0].Content) == 0 || out.Data[0].Content[0].Text.Value == "" {
		return "", ierr.NewError("No response from assistant").
			WithHint("No response from assistant").
			Mark(ierr.ErrHTTPClient)
	}
	return out.Data[0].Content[0].Text.Value, nil
}
