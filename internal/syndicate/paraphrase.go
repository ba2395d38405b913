package syndicate

// Paraphraser rewrites authored override text per storefront. The interface
// exists so a rewriting service can be plugged in; the engine's own variant
// rotation is what actually differentiates copies today.
type Paraphraser interface {
	Paraphrase(text string) string
}

// NoopParaphraser passes text through unchanged.
type NoopParaphraser struct{}

func (NoopParaphraser) Paraphrase(text string) string { return text }
