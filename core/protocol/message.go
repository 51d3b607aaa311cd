// Package protocol defines the conversation data model shared by the session,
// the dispatcher, and the hosting surfaces.
package protocol

import "github.com/google/uuid"

// Role identifies the sender of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// Message represents a single authored turn in a conversation.
//
// Messages are values: a session stores its own copy and hands out copies,
// so Content can never change after the message is appended. Sequence is
// assigned by the owning session on append and increases monotonically for
// the lifetime of that session.
type Message struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Content  string `json:"content"`
	Sequence uint64 `json:"sequence"`
}

// NewMessage creates a Message with the given role and content and a fresh
// UUIDv7 identifier. Sequence is left zero until a session appends it.
//
// Example:
//
//	msg := protocol.NewMessage(protocol.RoleUser, "/explain this loop")
func NewMessage(role Role, content string) Message {
	return Message{
		ID:      uuid.Must(uuid.NewV7()).String(),
		Role:    role,
		Content: content,
	}
}

// IsUser reports whether the message was authored by the user.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}
