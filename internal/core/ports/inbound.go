package ports

import (
	"context"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

// EmailProcessor is the inbound contract for the classification-and-response
// pipeline: extract, normalize, classify, generate.
type EmailProcessor interface {
	Process(ctx context.Context, input domain.RawInput) (domain.ReplyResult, error)
}

// AccountService is the inbound contract for registration and login.
type AccountService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
