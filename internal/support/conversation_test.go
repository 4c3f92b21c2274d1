package support

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationLimiter(t *testing.T) {
	c := NewConversation("user-1", 2)
	assert.True(t, strings.HasPrefix(c.ID, "conv_"))

	assert.True(t, c.AllowSend())
	assert.True(t, c.AllowSend())
	assert.False(t, c.AllowSend())
}

func TestConversationSingleSend(t *testing.T) {
	c := NewConversation("user-1", 10)

	assert.True(t, c.TryLock())
	assert.False(t, c.TryLock())
	c.Unlock()
	assert.True(t, c.TryLock())
	c.Unlock()
}
