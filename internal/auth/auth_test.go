package auth

import (
	"context"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("REQDIG_AUTH_SECRET", "test-secret")
	ResetSecretForTests()

	token, err := GenerateToken("user-2", "Carlos Oliveira", "Supervisor", 10*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseAndValidate(token)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if claims.Subject != "user-2" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Name != "Carlos Oliveira" {
		t.Fatalf("unexpected name: %s", claims.Name)
	}
	if claims.Role != "Supervisor" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestGenerateTokenValidation(t *testing.T) {
	t.Setenv("REQDIG_AUTH_SECRET", "test-secret")
	ResetSecretForTests()

	if _, err := GenerateToken("", "x", "Supervisor", time.Minute); err == nil {
		t.Fatal("expected error for empty user id")
	}
	if _, err := GenerateToken("u", "x", "", time.Minute); err == nil {
		t.Fatal("expected error for empty role")
	}
	if _, err := GenerateToken("u", "x", "Supervisor", 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Setenv("REQDIG_AUTH_SECRET", "test-secret")
	ResetSecretForTests()

	token, err := GenerateToken("user-1", "João Silva", "Colaborador", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := ParseAndValidate(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Setenv("REQDIG_AUTH_SECRET", "test-secret")
	ResetSecretForTests()

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseAndValidate(token); err != ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	if _, ok := PrincipalFromContext(ctx); ok {
		t.Fatal("expected no principal on empty context")
	}

	ctx = ContextWithPrincipal(ctx, Principal{UserID: "user-7", Name: "Ana", Role: "Técnico de Segurança"})
	p, ok := PrincipalFromContext(ctx)
	if !ok || p.UserID != "user-7" {
		t.Fatalf("unexpected principal: %+v ok=%v", p, ok)
	}
	id, ok := UserIDFromContext(ctx)
	if !ok || id != "user-7" {
		t.Fatalf("unexpected user id: %s ok=%v", id, ok)
	}
	if !HasRole(ctx, "Técnico de Segurança") {
		t.Fatal("expected role match")
	}
	if HasRole(ctx, "Supervisor") {
		t.Fatal("unexpected role match")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("epi2024")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := VerifyPassword(hash, "epi2024"); err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if err := VerifyPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
