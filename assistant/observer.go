package assistant

import "github.com/tailored-agentic-units/assistant/observability"

// Assistant event types emitted over the life of a conversation.
const (
	EventCreate  observability.EventType = "assistant.create"
	EventSubmit  observability.EventType = "assistant.submit"
	EventIgnored observability.EventType = "assistant.ignored"
	EventReply   observability.EventType = "assistant.reply"
	EventReset   observability.EventType = "assistant.reset"
)
