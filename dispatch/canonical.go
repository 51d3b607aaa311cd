package dispatch

import (
	"fmt"

	"github.com/tailored-agentic-units/assistant/catalog"
)

// Canonical rule names, in evaluation order.
const (
	RouteExplain = "explain"
	RouteReview  = "review"
	RouteTest    = "test"
	RouteKotlin  = "kotlin"
)

// Command prefixes recognized by the canonical rules.
const (
	CommandExplain = "/explain"
	CommandReview  = "/review"
	CommandTest    = "/test"
)

// Canonical builds the assistant's fixed rule table with reply wording taken
// from cat:
//
//  1. input contains "/explain"           -> explain guidance
//  2. input contains "/review"            -> review guidance
//  3. input contains "/test"              -> test guidance
//  4. input contains "kotlin" or "Kotlin" -> Kotlin blurb
//  5. anything else                       -> fallback echoing the input
//
// Rule 4 checks exactly those two spellings; "KOTLIN" falls through to the
// fallback.
func Canonical(cat *catalog.Catalog) (*Dispatcher, error) {
	texts := make(map[string]string, 5)
	for _, key := range []string{
		catalog.KeyReplyExplain,
		catalog.KeyReplyReview,
		catalog.KeyReplyTest,
		catalog.KeyReplyKotlin,
		catalog.KeyReplyFallback,
	} {
		text, err := cat.Text(key)
		if err != nil {
			return nil, fmt.Errorf("failed to load reply text: %w", err)
		}
		texts[key] = text
	}

	fallback, err := Template(texts[catalog.KeyReplyFallback])
	if err != nil {
		return nil, fmt.Errorf("failed to parse fallback template: %w", err)
	}

	return New(fallback,
		Rule{Name: RouteExplain, Match: Contains(CommandExplain), Reply: Static(texts[catalog.KeyReplyExplain])},
		Rule{Name: RouteReview, Match: Contains(CommandReview), Reply: Static(texts[catalog.KeyReplyReview])},
		Rule{Name: RouteTest, Match: Contains(CommandTest), Reply: Static(texts[catalog.KeyReplyTest])},
		Rule{Name: RouteKotlin, Match: ContainsAny("kotlin", "Kotlin"), Reply: Static(texts[catalog.KeyReplyKotlin])},
	)
}
