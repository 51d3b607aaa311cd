// Package session holds the ordered conversation of one assistant surface.
//
// A session is never empty. It starts with a single assistant welcome, and
// each accepted submission appends the user message together with its reply
// in one step, so no caller ever observes a user message without its answer.
package session

import (
	"github.com/tailored-agentic-units/assistant/core/protocol"
	"github.com/tailored-agentic-units/assistant/core/segment"
)

// Responder produces the assistant reply for a user input. It must always
// return text and must not block.
type Responder interface {
	Respond(input string) string
}

// Session holds an ordered sequence of conversation messages. Implementations
// must be safe for concurrent use.
type Session interface {
	// ID returns the unique session identifier.
	ID() string
	// Messages returns a defensive copy of the conversation in insertion order.
	Messages() []protocol.Message
	// Submit appends text and its reply. Blank input is ignored and reported
	// with ok false.
	Submit(text string) (ex Exchange, ok bool)
	// Reset discards the conversation and starts over with a fresh welcome.
	Reset()
	// Len returns the number of messages.
	Len() int
}

// Exchange is the pair of messages appended by one accepted submission.
type Exchange struct {
	Request protocol.Message
	Reply   protocol.Message
}

// Rendered is a message with its content split into display segments.
type Rendered struct {
	Message  protocol.Message
	Segments []segment.Segment
}

// Render parses every message of s in order. Segments are recomputed on
// each call.
func Render(s Session) []Rendered {
	msgs := s.Messages()
	out := make([]Rendered, len(msgs))
	for i, msg := range msgs {
		out[i] = Rendered{
			Message:  msg,
			Segments: segment.Parse(msg.Content),
		}
	}
	return out
}
