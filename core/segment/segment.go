// Package segment splits message text into prose and fenced-code spans for
// rendering. Segments are a view-layer projection: they are derived from a
// message on demand and never stored.
package segment

import "strings"

// Fence is the delimiter that opens and closes a code span.
const Fence = "```"

// Kind classifies a segment.
type Kind int

const (
	Prose Kind = iota
	Code
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Prose:
		return "prose"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is one renderable span of a message.
type Segment struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Parse splits text on every Fence. Parts at even split index are prose and
// parts at odd split index are code.
//
// Prose keeps its text as written but is dropped when it is blank. Code is
// trimmed of surrounding whitespace and is always emitted, so an intentionally
// empty fence still renders. No language tag is recognized after an opening
// fence; it stays part of the code text.
//
// An unterminated fence renders as code: with an odd number of fences the
// trailing part sits at an odd index and is classified Code like any other.
//
// Parse never fails. Text without fences yields a single Prose segment, or
// none when the text is blank.
func Parse(text string) []Segment {
	parts := strings.Split(text, Fence)
	segments := make([]Segment, 0, len(parts))

	for i, part := range parts {
		if i%2 == 0 {
			if strings.TrimSpace(part) == "" {
				continue
			}
			segments = append(segments, Segment{Kind: Prose, Text: part})
			continue
		}
		segments = append(segments, Segment{Kind: Code, Text: strings.TrimSpace(part)})
	}

	return segments
}

// Join renders segments back into fenced text. Code segments are wrapped in
// fences on their own lines; prose is emitted verbatim. The result parses
// back into the same kinds, though whitespace around prose may differ.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		switch s.Kind {
		case Code:
			b.WriteString(Fence)
			b.WriteByte('\n')
			b.WriteString(s.Text)
			b.WriteByte('\n')
			b.WriteString(Fence)
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// HasCode reports whether any segment is code.
func HasCode(segments []Segment) bool {
	for _, s := range segments {
		if s.Kind == Code {
			return true
		}
	}
	return false
}
