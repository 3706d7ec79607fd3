package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/recipe-box/internal/domain"
)

// UserClaim is the identity snapshot embedded in a token. FullName is a
// pointer so refreshed tokens can omit the field entirely while login
// tokens carry it even when empty.
type UserClaim struct {
	ID       string  `json:"id,omitempty"`
	Username string  `json:"username"`
	FullName *string `json:"fullname,omitempty"`
}

// Claims is the full signed payload of an auth token.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// TokenService mints and validates stateless bearer tokens. Tokens are
// signed HS256 with a single process-wide secret; validation rejects any
// other algorithm.
type TokenService struct {
	users  *UserService
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new TokenService. expiry is the lifetime of
// newly minted tokens.
func NewTokenService(users *UserService, secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		users:  users,
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Login verifies credentials and returns a signed token string. Unknown
// username and wrong password fail identically with
// domain.ErrInvalidCredentials so the response never reveals which check
// failed.
func (s *TokenService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.users.VerifyPassword(user, password) {
		return "", domain.ErrInvalidCredentials
	}

	fullName := user.FullName
	claim := UserClaim{
		ID:       user.ID,
		Username: user.Username,
		FullName: &fullName,
	}
	return s.mint(claim, user.Username)
}

// Refresh validates an existing token and mints a fresh one. The new
// token's user claim carries the username only; the id and full name from
// the original claim are dropped. The new expiry is a full lifetime from
// now.
func (s *TokenService) Refresh(raw string) (string, error) {
	claims, err := s.Validate(raw)
	if err != nil {
		return "", err
	}

	username := claims.User.Username
	if username == "" {
		username = claims.Subject
	}
	return s.mint(UserClaim{Username: username}, claims.Subject)
}

// Validate parses and verifies a token string: structural shape, HS256
// signature under the process secret, and a mandatory unexpired exp claim.
// Every failure collapses to domain.ErrUnauthorized; the distinguishing
// detail goes to the debug log only.
func (s *TokenService) Validate(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		slog.Debug("token rejected", "error", err)
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

func (s *TokenService) mint(claim UserClaim, subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		User: claim,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
