package oauthstate

import (
	"errors"
	"time"

	"psych-portal-api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// stateTTL bounds how long a login round-trip may take.
const stateTTL = 10 * time.Minute

var ErrInvalidState = errors.New("invalid or expired oauth state")

type Claims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// Service issues and verifies the signed `state` parameter carried through
// the Google authorization round-trip. The signature ties the callback to a
// login this server actually started.
type Service struct {
	secret []byte
}

func NewService(cfg config.SessionConfig) *Service {
	return &Service{secret: []byte(cfg.Secret)}
}

// Generate returns a fresh signed state token.
func (s *Service) Generate() (string, error) {
	now := time.Now()
	claims := Claims{
		Nonce: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry of a state token from the callback.
func (s *Service) Verify(state string) error {
	token, err := jwt.ParseWithClaims(state, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidState
	}
	return nil
}
