package catalog

// Well-known catalog keys.
const (
	KeyWelcome       = "welcome.md"
	KeyPanelWelcome  = "panel/welcome.md"
	KeyReplyExplain  = "replies/explain.md"
	KeyReplyReview   = "replies/review.md"
	KeyReplyTest     = "replies/test.md"
	KeyReplyKotlin   = "replies/kotlin.md"
	KeyReplyFallback = "replies/fallback.tmpl"
)

// RequiredKeys lists the keys every bootstrapped Catalog must resolve to
// non-blank text.
var RequiredKeys = []string{
	KeyWelcome,
	KeyPanelWelcome,
	KeyReplyExplain,
	KeyReplyReview,
	KeyReplyTest,
	KeyReplyKotlin,
	KeyReplyFallback,
}

// Entry is a key-value pair in the catalog namespace. Keys are /-separated
// paths and values are raw bytes.
type Entry struct {
	Key   string
	Value []byte
}
