package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	username := "alice"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, username, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != username {
		t.Errorf("expected subject %q, got %q", username, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", 0, "key"},
		{"empty key", "iss", "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	username := "bob"
	key := "secret-key"
	duration := time.Minute * 5

	genToken, err := GenerateJWTToken(issuer, username, duration, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Username != username {
		t.Errorf("expected username %q, got %q", username, parsedToken.Username)
	}
	if parsedToken.Subject != username {
		t.Errorf("expected subject claim %q, got %q", username, parsedToken.Subject)
	}

	// the identity the auth layer reads must survive the round trip
	gotUsername, err := parsedToken.GetUsername()
	if err != nil {
		t.Fatalf("GetUsername on a valid parsed token: %v", err)
	}
	if gotUsername != username {
		t.Errorf("expected GetUsername %q, got %q", username, gotUsername)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "alice", time.Minute, "right-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "iss")
	if err == nil {
		t.Error("expected signature verification to fail with wrong key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("right-issuer", "alice", time.Minute, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "other-issuer")
	if err == nil {
		t.Error("expected issuer check to fail")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "alice", time.Millisecond, "key")

	time.Sleep(5 * time.Millisecond)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss")
	if err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "alice", time.Minute, "key")

	// Flip one character in each of the three token segments in turn: any
	// modification must invalidate the token.
	parts := strings.Split(genToken.SignedString, ".")
	if len(parts) != 3 {
		t.Fatalf("expected compact JWS with 3 segments, got %d", len(parts))
	}

	for i := range parts {
		tampered := make([]string, 3)
		copy(tampered, parts)

		segment := []byte(tampered[i])
		if segment[0] == 'A' {
			segment[0] = 'B'
		} else {
			segment[0] = 'A'
		}
		tampered[i] = string(segment)

		_, err := ValidateAndParseJWTToken(strings.Join(tampered, "."), "key", "iss")
		if err == nil {
			t.Errorf("expected tampered segment %d to be rejected", i)
		}
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := ValidateAndParseJWTToken(raw, "key", "iss"); err == nil {
			t.Errorf("expected malformed token %q to be rejected", raw)
		}
	}
}
