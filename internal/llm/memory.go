package llm

import (
	"strings"
	"sync"
)

// Turn is one question and answer exchanged with the agent.
type Turn struct {
	Input  string
	Output string
}

// ConversationMemory is an append-only transcript shared by every review run
// on the same agent. It is never cleared; build a new agent for isolation.
type ConversationMemory struct {
	mu    sync.Mutex
	turns []Turn
}

func NewConversationMemory() *ConversationMemory {
	return &ConversationMemory{}
}

// Save records a completed exchange.
func (m *ConversationMemory) Save(input, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, Turn{Input: input, Output: output})
}

// Turns returns a copy of the recorded exchanges, oldest first.
func (m *ConversationMemory) Turns() []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Turn(nil), m.turns...)
}

func (m *ConversationMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}

// String renders the transcript as alternating Human / AI lines.
func (m *ConversationMemory) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sb strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Human: ")
		sb.WriteString(t.Input)
		sb.WriteString("\nAI: ")
		sb.WriteString(t.Output)
	}
	return sb.String()
}
