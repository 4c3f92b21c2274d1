package support

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/letybo/ordering/internal/config"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/httpclient"
	"github.com/letybo/ordering/internal/logger"
	"github.com/stretchr/testify/suite"
)

// fakeAssistant serves the subset of the assistant API the client uses
type fakeAssistant struct {
	t *testing.T

	mu       sync.Mutex
	statuses []RunStatus
	reply    string
	messages []string

	keyCalls    int32
	runCalls    int32
	runFailures int32
	srv         *httptest.Server
}

func newFakeAssistant(t *testing.T, statuses ...RunStatus) *fakeAssistant {
	f := &fakeAssistant{t: t, statuses: statuses, reply: "We ship within 2 business days."}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /key", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.keyCalls, 1)
		writeJSON(w, map[string]string{"body": `{"data":{"OPENAI_API_KEY":"  sk-test \n"}}`})
	})
	mux.HandleFunc("POST /v1/threads", func(w http.ResponseWriter, r *http.Request) {
		f.checkHeaders(r)
		writeJSON(w, map[string]string{"id": "thread_1"})
	})
	mux.HandleFunc("POST /v1/threads/thread_1/messages", func(w http.ResponseWriter, r *http.Request) {
		f.checkHeaders(r)
		var body struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.messages = append(f.messages, body.Content)
		f.mu.Unlock()
		writeJSON(w, map[string]string{"id": "msg_1"})
	})
	mux.HandleFunc("POST /v1/threads/thread_1/runs", func(w http.ResponseWriter, r *http.Request) {
		f.checkHeaders(r)
		atomic.AddInt32(&f.runCalls, 1)
		if atomic.AddInt32(&f.runFailures, -1) >= 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["assistant_id"] != "asst_test" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		writeJSON(w, map[string]string{"id": "run_1", "status": "queued"})
	})
	mux.HandleFunc("GET /v1/threads/thread_1/runs/run_1", func(w http.ResponseWriter, r *http.Request) {
		f.checkHeaders(r)
		writeJSON(w, map[string]string{"id": "run_1", "status": string(f.nextStatus())})
	})
	mux.HandleFunc("GET /v1/threads/thread_1/messages", func(w http.ResponseWriter, r *http.Request) {
		f.checkHeaders(r)
		writeJSON(w, map[string]any{
			"data": []any{
				map[string]any{"content": []any{map[string]any{"text": map[string]any{"value": f.reply}}}},
			},
		})
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAssistant) nextStatus() RunStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.statuses) == 0 {
		return RunStatusCompleted
	}
	s := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	return s
}

func (f *fakeAssistant) checkHeaders(r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer sk-test" || r.Header.Get("OpenAI-Beta") != "assistants=v2" {
		f.t.Errorf("unexpected headers: %v", r.Header)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type ClientSuite struct {
	suite.Suite
	ctx context.Context
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ClientSuite) newClient(f *fakeAssistant, mutate func(*config.SupportConfig)) Client {
	cfg := config.GetDefaultConfig().Support
	cfg.Enabled = true
	cfg.BaseURL = f.srv.URL + "/v1"
	cfg.KeyEndpoint = f.srv.URL + "/key"
	cfg.AssistantID = "asst_test"
	cfg.PollInterval = time.Millisecond
	cfg.MaxWait = time.Second
	if mutate != nil {
		mutate(&cfg)
	}

	transport := httpclient.NewDefaultClient(httpclient.ClientConfig{
		Timeout:      time.Second,
		RetryMax:     3,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
	}, logger.NewNopLogger())
	return NewClientWithHTTP(cfg, transport, logger.NewNopLogger(), nil)
}

func (s *ClientSuite) TestRoundTrip() {
	f := newFakeAssistant(s.T(), RunStatusQueued, RunStatusInProgress, RunStatusCompleted)
	c := s.newClient(f, nil)

	threadID, err := c.CreateThread(s.ctx)
	s.Require().NoError(err)
	s.Equal("thread_1", threadID)

	s.Require().NoError(c.AddMessage(s.ctx, threadID, "When do you ship?"))

	runID, err := c.CreateRun(s.ctx, threadID)
	s.Require().NoError(err)
	s.Equal("run_1", runID)

	status, err := c.WaitForRun(s.ctx, threadID, runID)
	s.Require().NoError(err)
	s.Equal(RunStatusCompleted, status)

	reply, err := c.LatestMessage(s.ctx, threadID)
	s.Require().NoError(err)
	s.Equal("We ship within 2 business days.", reply)

	s.Equal([]string{"When do you ship?"}, f.messages)
	s.EqualValues(1, atomic.LoadInt32(&f.keyCalls), "key is fetched once and cached")
}

func (s *ClientSuite) TestCreateRunIsNotRetried() {
	f := newFakeAssistant(s.T())
	f.runFailures = 1
	c := s.newClient(f, nil)

	_, err := c.CreateRun(s.ctx, "thread_1")
	s.Require().Error(err)
	s.True(ierr.IsHTTPClient(err))
	s.EqualValues(1, atomic.LoadInt32(&f.runCalls))

	// the next explicit attempt goes through
	runID, err := c.CreateRun(s.ctx, "thread_1")
	s.Require().NoError(err)
	s.Equal("run_1", runID)
}

func (s *ClientSuite) TestConfiguredKeySkipsEndpoint() {
	f := newFakeAssistant(s.T())
	c := s.newClient(f, func(cfg *config.SupportConfig) {
		cfg.APIKey = " sk-test "
	})

	_, err := c.CreateThread(s.ctx)
	s.Require().NoError(err)
	s.Zero(atomic.LoadInt32(&f.keyCalls))
}

func (s *ClientSuite) TestWaitReturnsTerminalFailure() {
	f := newFakeAssistant(s.T(), RunStatusInProgress, RunStatusFailed)
	c := s.newClient(f, nil)

	status, err := c.WaitForRun(s.ctx, "thread_1", "run_1")
	s.Require().NoError(err)
	s.Equal(RunStatusFailed, status)
	s.False(status.IsPending())
}

func (s *ClientSuite) TestWaitTimesOut() {
	f := newFakeAssistant(s.T(), RunStatusInProgress)
	c := s.newClient(f, func(cfg *config.SupportConfig) {
		cfg.MaxWait = 20 * time.Millisecond
	})

	status, err := c.WaitForRun(s.ctx, "thread_1", "run_1")
	s.Require().Error(err)
	s.True(ierr.IsHTTPClient(err))
	s.Equal(RunStatusInProgress, status)
}

func (s *ClientSuite) TestMissingKeyConfiguration() {
	f := newFakeAssistant(s.T())
	c := s.newClient(f, func(cfg *config.SupportConfig) {
		cfg.KeyEndpoint = ""
	})

	_, err := c.CreateThread(s.ctx)
	s.Require().Error(err)
	s.True(ierr.Is(err, ierr.ErrSystem))
}

func (s *ClientSuite) TestUpstreamErrorIsMarked() {
	f := newFakeAssistant(s.T())
	c := s.newClient(f, func(cfg *config.SupportConfig) {
		cfg.AssistantID = "asst_other"
	})

	_, err := c.CreateRun(s.ctx, "thread_1")
	s.Require().Error(err)
	s.True(ierr.IsHTTPClient(err))
}
