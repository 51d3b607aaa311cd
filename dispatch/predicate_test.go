package dispatch_test

import (
	"testing"

	"github.com/tailored-agentic-units/assistant/dispatch"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		pred  dispatch.Predicate
		input string
		want  bool
	}{
		{"always", dispatch.Always(), "", true},
		{"contains hit", dispatch.Contains("/test"), "run /test now", true},
		{"contains miss", dispatch.Contains("/test"), "run /TEST now", false},
		{"contains any first", dispatch.ContainsAny("kotlin", "Kotlin"), "kotlin", true},
		{"contains any second", dispatch.ContainsAny("kotlin", "Kotlin"), "Kotlin", true},
		{"contains any none", dispatch.ContainsAny("kotlin", "Kotlin"), "KOTLIN", false},
		{"contains any empty list", dispatch.ContainsAny(), "x", false},
		{"not", dispatch.Not(dispatch.Contains("a")), "b", true},
		{"and all", dispatch.And(dispatch.Contains("a"), dispatch.Contains("b")), "ab", true},
		{"and one", dispatch.And(dispatch.Contains("a"), dispatch.Contains("b")), "a", false},
		{"or one", dispatch.Or(dispatch.Contains("a"), dispatch.Contains("b")), "b", true},
		{"or none", dispatch.Or(dispatch.Contains("a"), dispatch.Contains("b")), "c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.input); got != tt.want {
				t.Errorf("predicate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
