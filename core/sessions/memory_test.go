package sessions

import (
	"context"
	"strings"
	"testing"
)

func TestMemoryCreateResolve(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	token, err := s.Create(ctx, 7)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	if len(token) != TokenLength {
		t.Fatalf("expected token of length %d, got %d", TokenLength, len(token))
	}

	userID, ok, err := s.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolving session: %v", err)
	}
	if !ok {
		t.Fatal("issued token did not resolve")
	}
	if userID != 7 {
		t.Fatalf("expected user 7, got %d", userID)
	}
}

func TestMemoryResolveAbsent(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	for _, token := range []string{"", "never-issued"} {
		userID, ok, err := s.Resolve(ctx, token)
		if err != nil {
			t.Fatalf("resolving %q: %v", token, err)
		}
		if ok {
			t.Fatalf("token %q resolved to user %d, expected no user", token, userID)
		}
	}
}

func TestMemoryTokensAreDistinct(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := s.Create(ctx, 1)
		if err != nil {
			t.Fatalf("creating session: %v", err)
		}
		if seen[token] {
			t.Fatalf("token %q issued twice", token)
		}
		seen[token] = true

		if strings.ContainsAny(token, " \t\n;=") {
			t.Fatalf("token %q contains characters unsafe for a cookie value", token)
		}
	}
}
