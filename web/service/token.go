package service

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"userhub/database/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token failure kinds. Handlers use the error message as the envelope
// message and StatusCode for the HTTP status.
var (
	ErrTokenAbsent  = errors.New("token_absent")
	ErrTokenInvalid = errors.New("token_invalid")
	ErrTokenExpired = errors.New("token_expired")
	ErrUserNotFound = errors.New("user_not_found")
)

// TokenService mints and verifies stateless HS256 session tokens bound to a
// user id. Nothing is persisted server-side; verification is pure signature
// and expiry checking.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue mints a signed token carrying the user's id and a fresh expiry.
func (s *TokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   strconv.Itoa(user.Id),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature and expiry and returns the owning user id.
func (s *TokenService) Parse(tokenString string) (int, error) {
	if tokenString == "" {
		return 0, ErrTokenAbsent
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, ErrTokenInvalid
	}
	return id, nil
}

// Refresh issues a replacement token with a renewed expiry for an already
// verified user. The old token stays valid until its own expiry; there is
// no server-side revocation in this design.
func (s *TokenService) Refresh(user *model.User) (string, error) {
	return s.Issue(user)
}

// StatusCode maps a token failure kind to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTokenAbsent), errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
