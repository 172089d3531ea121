package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/homevista/realtor-api/internal/models"
)

// Signer issues the identity tokens handed out on signup and signin: HS256,
// carrying the user's numeric id and display name, valid for a fixed TTL.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Signer) Sign(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
