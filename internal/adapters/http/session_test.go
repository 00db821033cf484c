package httpadapter

import (
	"testing"
	"time"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

func TestSessionRoundTrip(t *testing.T) {
	manager := NewSessionManager("test-secret", time.Hour)

	token, expiresAt, err := manager.Issue(&domain.User{ID: "u-1", Username: "maria"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	user, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if user.ID != "u-1" || user.Username != "maria" {
		t.Fatalf("unexpected session user: %+v", user)
	}
}

func TestSessionRejectsTamperedToken(t *testing.T) {
	manager := NewSessionManager("test-secret", time.Hour)

	token, _, err := manager.Issue(&domain.User{ID: "u-1", Username: "maria"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = manager.Verify(token + "x")
	if !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSessionRejectsForeignSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", time.Hour)
	verifier := NewSessionManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(&domain.User{ID: "u-1", Username: "maria"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	manager := &SessionManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, _, err := manager.Issue(&domain.User{ID: "u-1", Username: "maria"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := manager.Verify(token); !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}
