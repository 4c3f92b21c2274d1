package support

import (
	"sync"
	"time"

	"github.com/letybo/ordering/internal/types"
	"golang.org/x/time/rate"
)

// Greeting opens every conversation
const Greeting = "Hello! How can I assist you today?"

// ErrMsgRunInProgress is returned while the previous message is unanswered
const ErrMsgRunInProgress = "A previous request is still being processed. Please wait."

// Conversation maps one support chat to one upstream thread. The thread is
// created on the first message. Lock guards ThreadID and LastRunID.
type Conversation struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	mu        sync.Mutex
	limiter   *rate.Limiter
	ThreadID  string
	LastRunID string
}

// NewConversation allows sendsPerMinute messages per minute with a burst of
// the same size
func NewConversation(userID string, sendsPerMinute int) *Conversation {
	if sendsPerMinute <= 0 {
		sendsPerMinute = 1
	}
	return &Conversation{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONVERSATION),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(sendsPerMinute)), sendsPerMinute),
	}
}

// TryLock claims the conversation for one send
func (c *Conversation) TryLock() bool {
	return c.mu.TryLock()
}

func (c *Conversation) Unlock() {
	c.mu.Unlock()
}

// AllowSend consumes one token from the send limiter
func (c *Conversation) AllowSend() bool {
	return c.limiter.Allow()
}
