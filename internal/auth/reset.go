package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"openfairdb/internal/domain"
	pkgerrors "openfairdb/pkg/errors"
)

// ResetTokenStore keeps one-shot password reset tokens in memory. Tokens
// expire and are consumed on redemption.
type ResetTokenStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]resetToken
}

type resetToken struct {
	email     domain.Email
	expiresAt time.Time
}

func NewResetTokenStore(ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{
		ttl:    ttl,
		tokens: make(map[string]resetToken),
	}
}

// Issue creates a fresh reset token for an account.
func (s *ResetTokenStore) Issue(email domain.Email) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.tokens[token] = resetToken{email: email, expiresAt: time.Now().Add(s.ttl)}
	return token
}

// Redeem consumes a token and returns the account it was issued for. A
// token can be redeemed at most once.
func (s *ResetTokenStore) Redeem(token string) (domain.Email, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid reset token")
	}
	delete(s.tokens, token)
	if time.Now().After(entry.expiresAt) {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "reset token expired")
	}
	return entry.email, nil
}
