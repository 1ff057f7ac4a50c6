package agent

import (
	"sync"

	"github.com/mediguide/mediguide/internal/platform/llm"
)

// defaultMaxTurns bounds how many messages one conversation retains. Older
// messages are dropped from the front once the window is full.
const defaultMaxTurns = 40

// Memory keeps per-conversation message history in process. Conversations
// are keyed by the caller-chosen chat id.
type Memory struct {
	mu       sync.Mutex
	maxTurns int
	chats    map[string][]llm.Message
}

func NewMemory(maxTurns int) *Memory {
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	return &Memory{maxTurns: maxTurns, chats: map[string][]llm.Message{}}
}

// History returns a copy of the conversation so callers can append to it
// without holding the lock.
func (m *Memory) History(chatID string) []llm.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.chats[chatID]
	out := make([]llm.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Append records messages for the conversation, trimming the oldest entries
// beyond the window. The cut never lands inside a tool exchange: a tool
// reply without the assistant message that requested it is rejected by
// strict chat endpoints, so trimming advances past any leading tool
// messages.
func (m *Memory) Append(chatID string, msgs ...llm.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append(m.chats[chatID], msgs...)
	if len(all) > m.maxTurns {
		cut := len(all) - m.maxTurns
		for cut < len(all) && all[cut].Role == llm.RoleTool {
			cut++
		}
		all = all[cut:]
	}
	m.chats[chatID] = all
}

// Reset drops the conversation.
func (m *Memory) Reset(chatID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.chats, chatID)
}
