package tui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/tailored-agentic-units/assistant/core/segment"
	"github.com/tailored-agentic-units/assistant/session"
)

const minWrapWidth = 20

// renderer turns parsed messages into styled terminal text for one width.
type renderer struct {
	width int
	md    *glamour.TermRenderer
}

func newRenderer(width int) *renderer {
	r := &renderer{width: width}
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, minWrapWidth)),
	)
	if err == nil {
		r.md = md
	}
	return r
}

func (r *renderer) conversation(msgs []session.Rendered) string {
	blocks := make([]string, len(msgs))
	for i, m := range msgs {
		blocks[i] = r.message(m)
	}
	return strings.Join(blocks, "\n\n")
}

func (r *renderer) message(m session.Rendered) string {
	label := assistantStyle.Render("Assistant")
	if m.Message.IsUser() {
		label = userStyle.Render("You")
	}

	parts := make([]string, 0, len(m.Segments)+1)
	parts = append(parts, label)
	for _, seg := range m.Segments {
		switch seg.Kind {
		case segment.Code:
			parts = append(parts, r.code(seg.Text))
		default:
			parts = append(parts, r.prose(seg.Text))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// prose renders markdown, falling back to the raw text if glamour fails or
// panics on unusual input.
func (r *renderer) prose(text string) (out string) {
	if r.md == nil {
		return text
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = text
		}
	}()

	rendered, err := r.md.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(rendered, "\n")
}

func (r *renderer) code(text string) string {
	return codeBlockStyle.
		MaxWidth(max(r.width, minWrapWidth)).
		Render(highlightCode(text))
}

// highlightCode applies syntax highlighting to a code segment. The segment
// text is shown as-is, including any language tag on its first line.
func highlightCode(code string) string {
	lexer := chroma.Coalesce(codeLexer(code))

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// codeLexer picks a lexer from a leading language tag such as "go", then by
// content analysis, then the plain fallback.
func codeLexer(code string) chroma.Lexer {
	if tag, _, ok := strings.Cut(code, "\n"); ok {
		tag = strings.TrimSpace(tag)
		if tag != "" && !strings.ContainsAny(tag, " \t") {
			if l := lexers.Get(tag); l != nil {
				return l
			}
		}
	}

	if l := lexers.Analyse(code); l != nil {
		return l
	}
	return lexers.Fallback
}
