package ports

import (
	"context"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

// TextExtractor resolves raw request input into plain email text.
type TextExtractor interface {
	Extract(ctx context.Context, input domain.RawInput) (string, error)
}

// Normalizer prepares extracted text for keyword matching.
type Normalizer interface {
	Normalize(text string) string
}

// EmailClassifier assigns a category to normalized email text. It is total:
// every string maps to exactly one category.
type EmailClassifier interface {
	Classify(normalized string) domain.Category
}

// ReplyGenerator produces a suggested reply for a classified email. The
// original, un-normalized text is passed so the model sees natural casing.
type ReplyGenerator interface {
	Generate(ctx context.Context, category domain.Category, originalText string) (string, error)
}

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
