package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/LuizHNR/NebuloHub-Mongo/common/logger"
	"github.com/LuizHNR/NebuloHub-Mongo/common/metrics"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

// AuthResult is returned on a successful credential exchange.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	AccountID string
	Email     string
	Role      model.Role
}

type AuthService interface {
	// Authenticate exchanges an email and secret for an access token. Unknown
	// email and wrong secret both return ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, secret string) (*AuthResult, error)
}

type authService struct {
	accounts store.AccountStore
	hasher   PasswordHasher
	tokens   *TokenIssuer
	metrics  *metrics.Metrics

	dummyMu   sync.Mutex
	dummyHash string
}

func NewAuthService(accounts store.AccountStore, hasher PasswordHasher, tokens *TokenIssuer, m *metrics.Metrics) AuthService {
	return &authService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		metrics:  m,
	}
}

func (s *authService) Authenticate(ctx context.Context, email, secret string) (*AuthResult, error) {
	sc := logger.StartSpan(ctx, "service.auth.authenticate")
	defer sc.End()
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{Component: "nebulo.service.auth"})

	all, err := s.accounts.GetAll(ctx)
	if err != nil {
		sc.RecordError(err)
		s.metrics.AuthAttempt(metrics.OutcomeError)
		slog.ErrorContext(ctx, "failed to load accounts for login", "error", err)
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	var account *model.Account
	for _, a := range all {
		if a.Email == email {
			account = a
			break
		}
	}

	if account == nil {
		// Same bcrypt cost as a real mismatch.
		_ = s.hasher.Compare(s.dummy(ctx), secret)
		s.metrics.AuthAttempt(metrics.OutcomeFailure)
		slog.InfoContext(ctx, "login rejected")
		return nil, ErrInvalidCredentials
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{AccountID: logger.Ptr(account.GetID())})

	if err := s.hasher.Compare(account.Secret, secret); err != nil {
		s.metrics.AuthAttempt(metrics.OutcomeFailure)
		slog.InfoContext(ctx, "login rejected")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(account)
	if err != nil {
		sc.RecordError(err)
		s.metrics.AuthAttempt(metrics.OutcomeError)
		slog.ErrorContext(ctx, "failed to issue token", "error", err)
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.metrics.AuthAttempt(metrics.OutcomeSuccess)
	slog.InfoContext(ctx, "login succeeded")

	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		AccountID: account.GetID(),
		Email:     account.Email,
		Role:      account.Role,
	}, nil
}

// dummy returns a hash to compare against when no account matches. A failed
// Hash is logged and retried on the next call; until then the comparison runs
// against an empty hash and still rejects.
func (s *authService) dummy(ctx context.Context) string {
	s.dummyMu.Lock()
	defer s.dummyMu.Unlock()

	if s.dummyHash != "" {
		return s.dummyHash
	}
	hash, err := s.hasher.Hash("nebulo-dummy-secret")
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash dummy secret", "error", err)
		return ""
	}
	s.dummyHash = hash
	return hash
}
