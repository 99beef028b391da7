package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/sessionstore"
	"inventory-rest-api/pkg/apierror"
	"inventory-rest-api/pkg/uid"
)

// DefaultTokenTTL is the session lifetime when none is configured.
const DefaultTokenTTL = 1 * time.Hour

// sessionClaims is the JWT payload of a session token.
type sessionClaims struct {
	UserID int64      `json:"userId"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenConfig configures a TokenService.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	secret  []byte
	ttl     time.Duration
	issuer  string
	revoked sessionstore.Store
	now     func() time.Time
}

// NewTokenService creates a new token service. revoked may be nil, in which
// case logout cannot invalidate a token before it expires.
func NewTokenService(cfg TokenConfig, revoked sessionstore.Store) *TokenService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret:  []byte(cfg.Secret),
		ttl:     ttl,
		issuer:  cfg.Issuer,
		revoked: revoked,
		now:     time.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a new session token for the user.
func (s *TokenService) Issue(user *model.User) (string, *model.Identity, error) {
	now := s.now().Truncate(time.Second)
	identity := &model.Identity{
		UserID:    user.ID,
		Role:      user.Role,
		TokenID:   uid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	claims := sessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        identity.TokenID,
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(identity.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(identity.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, identity, nil
}

// VerifySession checks the token's signature, expiry and revocation status.
// Every rejection is reported as 401.
func (s *TokenService) VerifySession(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, apierror.Unauthorized("Authentication required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apierror.Unauthorized("Session expired")
		}
		return nil, apierror.Unauthorized("Invalid token")
	}

	if claims.UserID <= 0 || !claims.Role.Valid() || claims.ID == "" {
		return nil, apierror.Unauthorized("Invalid token")
	}

	if s.revoked != nil {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			return nil, apierror.Unauthorized("Session has been logged out")
		}
	}

	identity := &model.Identity{
		UserID:    claims.UserID,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}

// Revoke invalidates the identity's token for the rest of its lifetime.
func (s *TokenService) Revoke(ctx context.Context, identity *model.Identity) error {
	if s.revoked == nil || identity == nil || identity.TokenID == "" {
		return nil
	}
	return s.revoked.Revoke(ctx, identity.TokenID, identity.ExpiresAt.Sub(s.now()))
}
