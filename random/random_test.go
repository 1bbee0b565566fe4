package random

import (
	"strings"
	"testing"
)

func TestToken(t *testing.T) {
	tok, err := Token(32)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	if len(tok) != 32 {
		t.Fatalf("expected 32 characters, got %d", len(tok))
	}
	for _, c := range tok {
		if !strings.ContainsRune(charset, c) {
			t.Fatalf("token contains %q, outside the charset", c)
		}
	}
}

func TestTokensDiffer(t *testing.T) {
	a, err := Token(32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Token(32)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two generated tokens are identical")
	}
}
