package classifier

import "strings"

// Normalizer lowercases and trims content before keyword matching. Interior
// whitespace is preserved: matching is substring-based and does not need
// token boundaries.
type Normalizer struct{}

func NewNormalizer() Normalizer {
	return Normalizer{}
}

func (Normalizer) Normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}
