package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("alice@example.com", "abc123", secret)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims.EmailID != "alice@example.com" {
		t.Fatalf("email mismatch: got %q", claims.EmailID)
	}
	if claims.UserID != "abc123" {
		t.Fatalf("user id mismatch: got %q", claims.UserID)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		EmailID: "a@b.c",
		UserID:  "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tok, err := expired.SignedString(secret)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = VerifyToken(tok, secret)
	if err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("a@b.c", "u2", []byte("right-secret"))
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = VerifyToken(tok, []byte("wrong-secret"))
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("a@b.c", "u3", secret)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// Flip the last byte of the signature.
	b := []byte(tok)
	if b[len(b)-1] == 'A' {
		b[len(b)-1] = 'B'
	} else {
		b[len(b)-1] = 'A'
	}

	_, err = VerifyToken(string(b), secret)
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("not.a.jwt", []byte("k"))
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyToken_RejectsOtherAlgorithm(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	other := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{
		UserID: "u4",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := other.SignedString(secret)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = VerifyToken(tok, secret)
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for HS384 token, got %v", err)
	}
}
