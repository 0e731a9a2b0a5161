package redis

import (
	"strings"
	"testing"
)

func TestKey_NeverEmbedsToken(t *testing.T) {
	const token = "eyJhbGciOiJIUzI1NiJ9.payload.signature"

	k := key(token)
	if strings.Contains(k, token) {
		t.Fatalf("key embeds the plaintext token: %q", k)
	}
	if !strings.HasPrefix(k, "refresh_token:") {
		t.Fatalf("unexpected key prefix: %q", k)
	}
	// sha256 hex digest
	if len(k) != len("refresh_token:")+64 {
		t.Fatalf("unexpected key length: %d", len(k))
	}
}

func TestKey_Deterministic(t *testing.T) {
	if key("a") != key("a") {
		t.Fatalf("key not deterministic")
	}
	if key("a") == key("b") {
		t.Fatalf("distinct tokens collide")
	}
}
