// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"todoapp/config"
	"todoapp/internal/domain/entity"
	"todoapp/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewJWTService is the constructor for jwtService. A missing secret, issuer,
// audience or validity window is a startup precondition failure, not a
// per-request error, so construction fails and the process never serves.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	switch {
	case cfg.JWT.Secret == "":
		return nil, errors.New("jwt secret must be provided")
	case cfg.JWT.Issuer == "":
		return nil, errors.New("jwt issuer must be provided")
	case cfg.JWT.Audience == "":
		return nil, errors.New("jwt audience must be provided")
	case cfg.JWT.ExpiresIn <= 0:
		return nil, errors.New("jwt validity window must be positive")
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		ttl:      cfg.JWT.ExpiresIn,
	}, nil
}

// Generate creates a signed HS256 token for the given user.
func (s *jwtService) Generate(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks a token's signature, validity window, issuer and audience.
// jwt/v5 verifies exp and nbf as part of parsing; issuer, audience and the
// signing method are pinned through parser options.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
