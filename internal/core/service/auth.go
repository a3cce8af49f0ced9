// Package service provides the domain services for TodoVault.
//
// AuthService handles credential verification and token verification;
// TodoService owns the todo-list operations. Both sit between the HTTP
// handlers and the storage layer and speak domain errors only.
package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/yndnr/todovault-go/internal/core/domain"
	"github.com/yndnr/todovault-go/pkg/cmap"
	"github.com/yndnr/todovault-go/pkg/token"
)

// DefaultLoginRateLimit is the default number of login attempts
// allowed per second for a single client IP.
const DefaultLoginRateLimit = 5

// UserRepository defines the storage interface for credential lookups.
type UserRepository interface {
	// GetByUsername retrieves a user by exact username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// AuthService verifies credentials, issues tokens, and verifies the
// bearer tokens on incoming requests.
type AuthService struct {
	users        UserRepository
	signer       *token.Signer
	rateLimiters *RateLimiterRegistry
	loginLimit   int
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	// LoginRateLimit is the number of login attempts per second
	// allowed for a single client IP (default: 5). Zero or negative
	// disables login throttling.
	LoginRateLimit int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserRepository, signer *token.Signer, config *AuthServiceConfig) *AuthService {
	loginLimit := DefaultLoginRateLimit
	if config != nil {
		loginLimit = config.LoginRateLimit
	}

	return &AuthService{
		users:        users,
		signer:       signer,
		rateLimiters: NewRateLimiterRegistry(),
		loginLimit:   loginLimit,
	}
}

// LoginRequest contains parameters for a login attempt.
type LoginRequest struct {
	Username string
	Password string
	ClientIP string
}

// LoginResponse contains the issued token and the authenticated user.
type LoginResponse struct {
	Token     string
	User      domain.PublicUser
	ExpiresAt time.Time
}

// Login verifies a username/password pair and issues a signed token.
//
// An unknown username and a wrong password produce the identical
// error, so a caller cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if s.loginLimit > 0 && req.ClientIP != "" {
		limiter := s.rateLimiters.GetOrCreate(req.ClientIP, s.loginLimit)
		if !limiter.Allow() {
			return nil, domain.ErrRateLimited
		}
	}

	if req.Username == "" || req.Password == "" {
		return nil, domain.ErrCredentialsRequired
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.ErrInternalServer.WithCause(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	raw, expiresAt, err := s.signer.Sign(user.ID, user.Username)
	if err != nil {
		return nil, domain.ErrInternalServer.WithCause(err)
	}

	return &LoginResponse{
		Token:     raw,
		User:      *user.Public(),
		ExpiresAt: expiresAt,
	}, nil
}

// VerifyHeader extracts and verifies the bearer token from an
// Authorization header value.
//
// A missing or non-Bearer header yields ErrTokenMissing; a present but
// unverifiable token (bad signature, expired, malformed) yields
// ErrTokenInvalid.
func (s *AuthService) VerifyHeader(header string) (*domain.Identity, error) {
	if header == "" {
		return nil, domain.ErrTokenMissing
	}

	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, domain.ErrTokenMissing
	}

	claims, err := s.signer.Parse(raw)
	if err != nil {
		return nil, domain.ErrTokenInvalid.WithCause(err)
	}

	return &domain.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}

// TokenTTL reports the lifetime of newly issued tokens.
func (s *AuthService) TokenTTL() time.Duration {
	return s.signer.TTL()
}

// sweepInterval is the number of limiter inserts between idle sweeps.
const sweepInterval = 1024

// limiterMaxIdle is how long a client limiter may sit unused before a
// sweep reclaims it.
const limiterMaxIdle = 10 * time.Minute

// limiterEntry pairs a limiter with its last use time so idle clients
// can be swept.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiterRegistry manages per-client rate limiters. Idle entries
// are swept periodically so the registry does not grow without bound.
type RateLimiterRegistry struct {
	entries *cmap.Map[*limiterEntry]
	inserts atomic.Int64
}

// NewRateLimiterRegistry creates a new RateLimiterRegistry.
func NewRateLimiterRegistry() *RateLimiterRegistry {
	return &RateLimiterRegistry{
		entries: cmap.New[*limiterEntry](),
	}
}

// GetOrCreate retrieves an existing rate limiter or creates a new one.
func (r *RateLimiterRegistry) GetOrCreate(key string, limit int) *rate.Limiter {
	now := time.Now().UnixNano()

	if entry, ok := r.entries.Get(key); ok {
		entry.lastSeen.Store(now)
		return entry.limiter
	}

	fresh := &limiterEntry{
		limiter: rate.NewLimiter(rate.Limit(limit), limit),
	}
	fresh.lastSeen.Store(now)

	entry, loaded := r.entries.GetOrSet(key, fresh)
	if loaded {
		entry.lastSeen.Store(now)
		return entry.limiter
	}

	if r.inserts.Add(1)%sweepInterval == 0 {
		r.Sweep(limiterMaxIdle)
	}
	return entry.limiter
}

// Sweep removes limiters unused for longer than maxIdle and reports
// how many were removed.
func (r *RateLimiterRegistry) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle).UnixNano()

	var stale []string
	r.entries.Range(func(key string, entry *limiterEntry) bool {
		if entry.lastSeen.Load() < cutoff {
			stale = append(stale, key)
		}
		return true
	})

	for _, key := range stale {
		r.entries.Delete(key)
	}
	return len(stale)
}

// Delete removes the rate limiter for a key.
func (r *RateLimiterRegistry) Delete(key string) {
	r.entries.Delete(key)
}

// Len returns the number of tracked clients.
func (r *RateLimiterRegistry) Len() int {
	return r.entries.Count()
}

// Clear removes all rate limiters.
func (r *RateLimiterRegistry) Clear() {
	r.entries.Clear()
}
