package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// DefaultTokenTTL is deliberately short: the token is meant to be
// exchanged for the cookie-backed session immediately, not held as a
// long-lived bearer credential.
const DefaultTokenTTL = 10 * time.Second

// Issuer signs short-lived session tokens binding a user identifier.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the identifier, or an empty string
// when the identifier itself is empty. Callers check for the empty
// token rather than an error in that case.
func (i *Issuer) Issue(userID string) (string, error) {
	if userID == "" {
		return "", nil
	}

	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Decode returns the user identifier bound by a valid token.
func (i *Issuer) Decode(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	id, _ := claims["userId"].(string)
	if id == "" {
		return "", errors.New("token carries no user id")
	}
	return id, nil
}
