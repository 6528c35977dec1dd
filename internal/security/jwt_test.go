package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenService(t *testing.T, now time.Time) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret-0123456789abcdef")
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	return svc.WithClock(func() time.Time { return now })
}

func TestNewTokenServiceRejectsEmptySecret(t *testing.T) {
	if _, err := NewTokenService("   "); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestTokenServiceIssueVerifyRoundTrip(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, issuedAt)

	token, err := svc.Issue(Identity{AdminID: 7, Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, offset := range []time.Duration{0, time.Hour, TokenTTL - time.Second} {
		identity, errVerify := svc.WithClock(func() time.Time { return issuedAt.Add(offset) }).Verify(token)
		if errVerify != nil {
			t.Fatalf("verify at +%s: %v", offset, errVerify)
		}
		if identity.AdminID != 7 || identity.Username != "alice" {
			t.Fatalf("unexpected identity at +%s: %+v", offset, identity)
		}
	}
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, issuedAt)

	token, err := svc.Issue(Identity{AdminID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, offset := range []time.Duration{TokenTTL + time.Second, 30 * 24 * time.Hour} {
		_, errVerify := svc.WithClock(func() time.Time { return issuedAt.Add(offset) }).Verify(token)
		if !errors.Is(errVerify, ErrExpiredToken) {
			t.Fatalf("expected ErrExpiredToken at +%s, got %v", offset, errVerify)
		}
	}
}

func TestTokenServiceRejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Now().UTC())

	token, err := svc.Issue(Identity{AdminID: 3, Username: "bob"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for i := 0; i < len(token); i++ {
		// The final character of a base64url segment may only carry padding bits.
		if i+1 == len(token) || token[i+1] == '.' {
			continue
		}
		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}
		tampered := token[:i] + string(replacement) + token[i+1:]
		if _, errVerify := svc.Verify(tampered); errVerify == nil {
			t.Fatalf("tampered token at byte %d verified", i)
		}
	}
}

func TestTokenServiceRejectsForeignSecret(t *testing.T) {
	now := time.Now().UTC()
	svc := newTestTokenService(t, now)
	other, err := NewTokenService("another-secret")
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}

	token, err := other.Issue(Identity{AdminID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, errVerify := svc.Verify(token); !errors.Is(errVerify, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", errVerify)
	}
}

func TestTokenServiceRejectsMalformedAndUnsignedTokens(t *testing.T) {
	now := time.Now().UTC()
	svc := newTestTokenService(t, now)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, AdminClaims{
		AdminID:  1,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	noneToken, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	cases := []string{"", "not-a-token", "a.b.c", strings.Repeat("x", 200), noneToken}
	for _, tc := range cases {
		if _, errVerify := svc.Verify(tc); !errors.Is(errVerify, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tc, errVerify)
		}
	}
}

func TestTokenServiceRejectsTokenWithoutExpiry(t *testing.T) {
	svc := newTestTokenService(t, time.Now().UTC())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{AdminID: 1, Username: "admin"})
	signed, err := token.SignedString(svc.secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, errVerify := svc.Verify(signed); !errors.Is(errVerify, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", errVerify)
	}
}
