package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/assistant/core/protocol"
)

type memorySession struct {
	id        string
	welcome   string
	responder Responder
	messages  []protocol.Message
	seq       uint64
	mu        sync.RWMutex
}

// NewMemorySession creates a Session backed by an in-memory slice, seeded
// with one assistant message carrying welcome. The session is assigned a
// unique UUIDv7 identifier.
func NewMemorySession(welcome string, r Responder) Session {
	s := &memorySession{
		id:        uuid.Must(uuid.NewV7()).String(),
		welcome:   welcome,
		responder: r,
	}
	s.messages = []protocol.Message{s.next(protocol.RoleAssistant, welcome)}
	return s
}

func (s *memorySession) ID() string {
	return s.id
}

func (s *memorySession) Messages() []protocol.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]protocol.Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

func (s *memorySession) Submit(text string) (Exchange, bool) {
	if strings.TrimSpace(text) == "" {
		return Exchange{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ex := Exchange{Request: s.next(protocol.RoleUser, text)}
	ex.Reply = s.next(protocol.RoleAssistant, s.responder.Respond(text))
	s.messages = append(s.messages, ex.Request, ex.Reply)
	return ex, true
}

func (s *memorySession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []protocol.Message{s.next(protocol.RoleAssistant, s.welcome)}
}

func (s *memorySession) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// next builds a message with the following sequence number. Callers hold
// the write lock, except during construction.
func (s *memorySession) next(role protocol.Role, content string) protocol.Message {
	s.seq++
	msg := protocol.NewMessage(role, content)
	msg.Sequence = s.seq
	return msg
}
