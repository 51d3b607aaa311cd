package dispatch

import (
	"strings"
	"text/template"
)

// Reply produces the reply text for an input that matched a rule.
type Reply func(input string) string

// Rule pairs a named predicate with the reply it selects.
type Rule struct {
	Name  string
	Match Predicate
	Reply Reply
}

// Static returns a Reply that ignores the input and always yields text.
func Static(text string) Reply {
	return func(string) string { return text }
}

// Template compiles a text/template whose data is {{.Input}}, the user's
// input inserted verbatim. If executing the template fails the raw template
// text is returned instead, so the reply is never empty.
func Template(text string) (Reply, error) {
	tmpl, err := template.New("reply").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, err
	}

	return func(input string) string {
		var b strings.Builder
		if err := tmpl.Execute(&b, struct{ Input string }{Input: input}); err != nil {
			return text
		}
		return b.String()
	}, nil
}
