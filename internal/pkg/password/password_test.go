package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("john123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "john123" {
		t.Fatalf("hash equals plaintext")
	}

	if !Verify("john123", hash) {
		t.Fatalf("expected password to verify")
	}
	if Verify("wrong", hash) {
		t.Fatalf("expected mismatch to fail")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct salts for identical passwords")
	}
}
