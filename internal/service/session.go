package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tush00nka/studybud/internal/pkg/auth"
	"tush00nka/studybud/internal/repository"
)

type sessionService struct {
	tokens   *auth.TokenManager
	revoked  repository.TokenRepository
	userRepo repository.UserRepository
}

func NewSessionService(tokens *auth.TokenManager, revoked repository.TokenRepository, userRepo repository.UserRepository) SessionService {
	return &sessionService{tokens: tokens, revoked: revoked, userRepo: userRepo}
}

func (s *sessionService) Issue(userID uint) (string, error) {
	return s.tokens.GenerateToken(userID)
}

// Resolve validates a raw token, checks it has not been revoked and that its
// account still exists.
func (s *sessionService) Resolve(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.Id)
	if err != nil {
		return nil, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", ErrUnauthenticated)
	}

	if _, err := s.userRepo.FindByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}

	return claims, nil
}

func (s *sessionService) Revoke(ctx context.Context, claims *auth.Claims) error {
	return s.revoked.Revoke(ctx, claims.Id, claims.TTL())
}

func (s *sessionService) TTL() time.Duration {
	return s.tokens.TTL()
}
