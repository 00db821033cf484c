package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
	"github.com/sttve/mail-classifier-ai/internal/core/ports"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

type AccountUseCase struct {
	users ports.UserRepository
}

func NewAccountUseCase(users ports.UserRepository) *AccountUseCase {
	return &AccountUseCase{users: users}
}

func (uc *AccountUseCase) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if utf8.RuneCountInString(username) < minUsernameLength {
		return nil, domain.WrapError(domain.ErrInvalidInput, "register",
			fmt.Errorf("username must have at least %d characters", minUsernameLength))
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, domain.WrapError(domain.ErrInvalidInput, "register",
			fmt.Errorf("password must have at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login reports the same failure for an unknown username and a wrong
// password so the endpoint does not reveal which usernames exist.
func (uc *AccountUseCase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if domain.IsKind(err, domain.ErrUserNotFound) {
			return nil, domain.WrapError(domain.ErrInvalidCredentials, "login", err)
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.WrapError(domain.ErrInvalidCredentials, "login", err)
	}
	return user, nil
}
