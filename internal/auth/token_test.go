package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestIssueEmbedsUserAndExpiry(t *testing.T) {
	issuer := NewIssuer("secretTesting", 0)

	before := time.Now()
	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a non-empty token")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secretTesting"), nil
	}); err != nil {
		t.Fatalf("token does not verify: %v", err)
	}

	if claims["userId"] != "user-123" {
		t.Fatalf("unexpected userId claim %v", claims["userId"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing or wrong type: %v", claims["exp"])
	}
	want := before.Add(DefaultTokenTTL).Unix()
	if int64(exp) < want || int64(exp) > want+2 {
		t.Fatalf("expected expiry near %d, got %d", want, int64(exp))
	}
}

func TestIssueEmptyUserID(t *testing.T) {
	issuer := NewIssuer("secretTesting", 0)

	token, err := issuer.Issue("")
	if err != nil {
		t.Fatalf("empty user id must not be an error, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected an empty token, got %q", token)
	}
}

func TestIssueHonorsConfiguredTTL(t *testing.T) {
	issuer := NewIssuer("secretTesting", time.Minute)

	before := time.Now()
	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secretTesting"), nil
	}); err != nil {
		t.Fatalf("token does not verify: %v", err)
	}

	exp := int64(claims["exp"].(float64))
	want := before.Add(time.Minute).Unix()
	if exp < want || exp > want+2 {
		t.Fatalf("expected expiry near %d, got %d", want, exp)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	issuer := NewIssuer("secretTesting", 0)

	token, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	id, err := issuer.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if id != "user-42" {
		t.Fatalf("expected user-42, got %q", id)
	}
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	token, err := NewIssuer("secretTesting", 0).Issue("user-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewIssuer("otherSecret", 0).Decode(token); err == nil {
		t.Fatalf("expected decode to reject a token signed with another secret")
	}
}

func TestDecodeRejectsExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"userId": "user-42",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secretTesting"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := NewIssuer("secretTesting", 0).Decode(token); err == nil {
		t.Fatalf("expected decode to reject an expired token")
	}
}
