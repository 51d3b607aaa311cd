package assistant

// Suggestion is a quick-action chip. Choosing one pre-fills the input with
// Command; it never submits.
type Suggestion struct {
	Label   string
	Command string
}

// Suggestions returns the full-page quick actions in display order.
func Suggestions() []Suggestion {
	return []Suggestion{
		{Label: "📝 Explain this code", Command: "/explain"},
		{Label: "🐛 Find bugs", Command: "/review"},
		{Label: "✅ Write tests", Command: "/test"},
		{Label: "⚡ Optimize performance", Command: "/optimize"},
	}
}

// Shortcuts returns the command hints shown under the conversation. Not all
// of them have a dedicated reply.
func Shortcuts() []string {
	return []string{"/explain", "/review", "/test", "/fix", "/optimize"}
}
