package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/motorlot/motorlot/config"
)

var (
	ErrInvalidKey   = errors.New("invalid api key")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokensOff    = errors.New("token exchange disabled")
)

// Service verifies the process-wide master API key and optionally exchanges
// it for short-lived HS256 tokens so clients do not have to ship the master
// key on every request.
type Service struct {
	cfg *config.AuthConfig
}

func NewService(cfg *config.AuthConfig) *Service {
	return &Service{cfg: cfg}
}

// VerifyAPIKey checks a presented bearer value against the master key. When
// a bcrypt hash is provisioned it wins over the plain value; the plain
// comparison is constant-time.
func (s *Service) VerifyAPIKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if s.cfg.MasterKeyHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.MasterKeyHash), []byte(key)); err != nil {
			return ErrInvalidKey
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.MasterKey)) != 1 {
		return ErrInvalidKey
	}
	return nil
}

// TokensEnabled reports whether the exchange endpoint can issue JWTs.
func (s *Service) TokensEnabled() bool {
	return s.cfg.JWTSecret != ""
}

// IssueToken returns a signed token and its lifetime.
func (s *Service) IssueToken() (string, time.Duration, error) {
	if !s.TokensEnabled() {
		return "", 0, ErrTokensOff
	}

	ttl := s.cfg.TokenTTL
	claims := jwt.RegisteredClaims{
		Subject:   "api-client",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, ttl, nil
}

// ValidateToken checks signature, method and expiry of an issued token.
func (s *Service) ValidateToken(tokenString string) error {
	if !s.TokensEnabled() {
		return ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
