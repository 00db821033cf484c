package httpadapter

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

const sessionCookieName = "session"

type sessionContextKey struct{}

// SessionUser is the authenticated identity attached to gated requests.
type SessionUser struct {
	ID       string
	Username string
}

func sessionUserFromContext(ctx context.Context) (SessionUser, bool) {
	user, ok := ctx.Value(sessionContextKey{}).(SessionUser)
	return user, ok
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// SessionManager issues and verifies the signed tokens carried in the
// session cookie. Tokens are stateless; logout is client-side cookie
// removal.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	if secret == "" {
		// Sessions survive only until restart without a configured secret.
		buf := make([]byte, 32)
		_, _ = rand.Read(buf)
		secret = hex.EncodeToString(buf)
		slog.Warn("session_secret_generated", "reason", "SESSION_SECRET is empty, sessions will not survive restarts")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

func (m *SessionManager) Issue(user *domain.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: user.Username,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

func (m *SessionManager) Verify(tokenString string) (SessionUser, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token rejected")
		}
		return SessionUser{}, domain.WrapError(domain.ErrUnauthorized, "verify session", err)
	}
	return SessionUser{ID: claims.Subject, Username: claims.Username}, nil
}

func (m *SessionManager) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			writeError(w, domain.WrapError(domain.ErrUnauthorized, "read session cookie", err))
			return
		}

		user, err := m.Verify(cookie.Value)
		if err != nil {
			writeError(w, err)
			return
		}

		noteSessionUser(r.Context(), user.Username)
		ctx := context.WithValue(r.Context(), sessionContextKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
