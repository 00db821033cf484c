package classifier

import (
	"strings"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

// Classifier maps normalized email text to a category by scanning two
// ordered keyword lists. A productive match always wins over an unproductive
// one, regardless of where either keyword appears in the text; within a
// list, the first configured keyword found as a substring decides.
type Classifier struct {
	keywords domain.Keywords
}

func New(keywords domain.Keywords) *Classifier {
	return &Classifier{keywords: keywords}
}

func (c *Classifier) Classify(normalized string) domain.Category {
	for _, keyword := range c.keywords.Productive {
		if strings.Contains(normalized, keyword) {
			return domain.CategoryProductive
		}
	}
	for _, keyword := range c.keywords.Unproductive {
		if strings.Contains(normalized, keyword) {
			return domain.CategoryUnproductive
		}
	}
	return domain.CategoryUnproductive
}
