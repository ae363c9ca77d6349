// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"cepcache/config"
	"cepcache/internal/domain/service"
	"cepcache/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrSecretMissing is returned when tokens are required but no signing secret is configured.
var ErrSecretMissing = errors.New("jwt secret must be provided")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A secret is mandatory only while the API guard is enabled.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		return nil, ErrSecretMissing
	}

	return &jwtService{
		secret: []byte(cfg.Auth.Secret),
		issuer: cfg.Auth.Issuer,
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed access token for subject carrying scopes.
func (s *jwtService) GenerateToken(subject string, scopes []string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretMissing
	}
	if subject == "" {
		return "", errors.New("token subject must be provided")
	}

	now := s.now()
	claims := service.Claims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses tokenString, checking signature, expiry and issuer.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrSecretMissing
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// TokenTTL returns the configured lifetime of issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
