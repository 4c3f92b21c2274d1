package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/letybo/ordering/internal/api/dto"
	"github.com/letybo/ordering/internal/cache"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/support"
	"github.com/letybo/ordering/internal/types"
)

type SupportService interface {
	StartConversation(ctx context.Context) (*dto.StartConversationResponse, error)
	SendMessage(ctx context.Context, conversationID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

type supportService struct {
	ServiceParams
}

func NewSupportService(params ServiceParams) SupportService {
	return &supportService{ServiceParams: params}
}

func conversationKey(id string) string {
	return cache.GenerateKey(cache.PrefixConversation, id)
}

func (s *supportService) StartConversation(ctx context.Context) (*dto.StartConversationResponse, error) {
	if err := s.checkEnabled(); err != nil {
		return nil, err
	}

	conv := support.NewConversation(types.GetUserIDOrDefault(ctx), s.Config.Support.SendsPerMinute)
	s.Cache.Set(ctx, conversationKey(conv.ID), conv, s.Config.Support.SessionTTL)

	s.Logger.WithContext(ctx).Debugw("started support conversation", "conversation_id", conv.ID)
	return &dto.StartConversationResponse{
		ID:        conv.ID,
		Greeting:  support.Greeting,
		CreatedAt: conv.CreatedAt,
	}, nil
}

// SendMessage posts the message to the conversation's thread and waits for
// the assistant's reply. One message per conversation is in flight at a time.
func (s *supportService) SendMessage(ctx context.Context, conversationID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if err := s.checkEnabled(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ierr.NewError("empty message").
			WithHint("Message must not be blank").
			Mark(ierr.ErrValidation)
	}

	conv, err := s.conversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if !conv.TryLock() {
		return nil, runInProgressError(conversationID)
	}
	defer conv.Unlock()

	if !conv.AllowSend() {
		return nil, ierr.NewError("support send rate exceeded").
			WithHintf("You can send up to %d messages per minute", s.Config.Support.SendsPerMinute).
			Mark(ierr.ErrRateLimited)
	}

	log := s.Logger.WithContext(ctx).With("conversation_id", conversationID)

	if conv.ThreadID == "" {
		threadID, err := s.SupportClient.CreateThread(ctx)
		if err != nil {
			return nil, err
		}
		conv.ThreadID = threadID
		log.Debugw("created support thread", "thread_id", threadID)
	} else if conv.LastRunID != "" {
		status, err := s.SupportClient.GetRunStatus(ctx, conv.ThreadID, conv.LastRunID)
		if err != nil {
			return nil, err
		}
		if status.IsPending() {
			return nil, runInProgressError(conversationID)
		}
	}

	if err := s.SupportClient.AddMessage(ctx, conv.ThreadID, text); err != nil {
		return nil, err
	}

	start := time.Now()
	runID, err := s.SupportClient.CreateRun(ctx, conv.ThreadID)
	if err != nil {
		return nil, err
	}
	conv.LastRunID = runID

	status, err := s.SupportClient.WaitForRun(ctx, conv.ThreadID, runID)
	s.Metrics.SupportRunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.Metrics.SupportRuns.WithLabelValues("error").Inc()
		log.Errorw("assistant run did not finish", "run_id", runID, "status", status, "error", err)
		return nil, err
	}
	s.Metrics.SupportRuns.WithLabelValues(string(status)).Inc()

	if status != support.RunStatusCompleted {
		log.Warnw("assistant run failed", "run_id", runID, "status", status)
		msg := fmt.Sprintf("Assistant run failed with status: %s", status)
		return nil, ierr.NewError(msg).
			WithHint(msg).
			WithReportableDetails(map[string]any{
				"run_id": runID,
				"status": status,
			}).
			Mark(ierr.ErrHTTPClient)
	}

	reply, err := s.SupportClient.LatestMessage(ctx, conv.ThreadID)
	if err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		ConversationID: conversationID,
		Reply:          reply,
	}, nil
}

// conversation returns the cached conversation when it belongs to the caller
func (s *supportService) conversation(ctx context.Context, id string) (*support.Conversation, error) {
	v, ok := s.Cache.Get(ctx, conversationKey(id))
	conv, isConv := v.(*support.Conversation)
	if !ok || !isConv || conv.UserID != types.GetUserIDOrDefault(ctx) {
		return nil, ierr.NewError("conversation not found").
			WithHintf("Conversation %s does not exist or has expired", id).
			Mark(ierr.ErrNotFound)
	}
	return conv, nil
}

func (s *supportService) checkEnabled() error {
	if s.Config.Support.Enabled && s.SupportClient != nil {
		return nil
	}
	return ierr.NewError("support chat disabled").
		WithHint("Support chat is not available").
		Mark(ierr.ErrInvalidOperation)
}

func runInProgressError(conversationID string) error {
	return ierr.NewError("previous run still in progress").
		WithHint(support.ErrMsgRunInProgress).
		WithReportableDetails(map[string]any{
			"conversation_id": conversationID,
		}).
		Mark(ierr.ErrInvalidOperation)
}
