// Package dispatch maps user input to canned reply text through an ordered
// rule table.
//
// Rules are evaluated top to bottom and the first rule whose predicate
// matches decides the reply; no later rule is evaluated. When nothing
// matches, the fallback reply is used. A Dispatcher is immutable after New
// and reads nothing but its argument, so it is safe for concurrent use.
//
//	d, err := dispatch.Canonical(cat)
//	reply := d.Respond("/review my handler")
package dispatch

import (
	"fmt"
	"strings"
)

// RouteDefault is the route reported when no rule matches.
const RouteDefault = "default"

// Dispatcher evaluates an ordered rule table.
type Dispatcher struct {
	rules    []Rule
	fallback Reply
}

// New creates a Dispatcher from a fallback reply and rules in evaluation
// order. Rule names must be non-empty and unique, and every rule needs both
// a predicate and a reply.
func New(fallback Reply, rules ...Rule) (*Dispatcher, error) {
	if fallback == nil {
		return nil, ErrNoFallback
	}

	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return nil, ErrEmptyName
		}
		if r.Name == RouteDefault || seen[r.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, r.Name)
		}
		if r.Match == nil || r.Reply == nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRule, r.Name)
		}
		seen[r.Name] = true
	}

	return &Dispatcher{
		rules:    append([]Rule(nil), rules...),
		fallback: fallback,
	}, nil
}

// Route returns the name of the first rule matching input, or RouteDefault.
func (d *Dispatcher) Route(input string) string {
	if r, ok := d.match(input); ok {
		return r.Name
	}
	return RouteDefault
}

// Respond returns the reply for input. It never fails and never returns
// blank text: a rule whose reply comes out blank defers to the fallback.
func (d *Dispatcher) Respond(input string) string {
	if r, ok := d.match(input); ok {
		if reply := r.Reply(input); strings.TrimSpace(reply) != "" {
			return reply
		}
	}
	return d.fallback(input)
}

// Rules returns the rule names in evaluation order.
func (d *Dispatcher) Rules() []string {
	names := make([]string, len(d.rules))
	for i, r := range d.rules {
		names[i] = r.Name
	}
	return names
}

func (d *Dispatcher) match(input string) (Rule, bool) {
	for _, r := range d.rules {
		if r.Match(input) {
			return r, true
		}
	}
	return Rule{}, false
}
