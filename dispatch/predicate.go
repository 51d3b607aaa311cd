package dispatch

import "strings"

// Predicate reports whether a rule applies to the raw user input.
type Predicate func(input string) bool

// Always returns a predicate that matches every input.
func Always() Predicate {
	return func(string) bool { return true }
}

// Contains returns a case-sensitive substring predicate.
//
// Example:
//
//	explain := dispatch.Contains("/explain")
func Contains(sub string) Predicate {
	return func(input string) bool {
		return strings.Contains(input, sub)
	}
}

// ContainsAny matches when the input contains at least one of subs. Each
// spelling is tested literally; no case folding is applied.
//
// Example:
//
//	kotlin := dispatch.ContainsAny("kotlin", "Kotlin")
func ContainsAny(subs ...string) Predicate {
	return func(input string) bool {
		for _, sub := range subs {
			if strings.Contains(input, sub) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(input string) bool {
		return !p(input)
	}
}

// And combines predicates with logical AND (all must be true).
func And(predicates ...Predicate) Predicate {
	return func(input string) bool {
		for _, p := range predicates {
			if !p(input) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates with logical OR (at least one must be true).
func Or(predicates ...Predicate) Predicate {
	return func(input string) bool {
		for _, p := range predicates {
			if p(input) {
				return true
			}
		}
		return false
	}
}
