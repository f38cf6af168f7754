package auth

import "testing"

func TestHashPassword_SamePasswordDifferentHashes(t *testing.T) {
	t.Parallel()

	const pw = "pw123456"

	h1, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same password, got identical strings")
	}
	if !CheckPassword(pw, h1) {
		t.Fatalf("CheckPassword failed against first hash")
	}
	if !CheckPassword(pw, h2) {
		t.Fatalf("CheckPassword failed against second hash")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("battery staple", h) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestCheckPassword_MalformedHashFailsClosed(t *testing.T) {
	t.Parallel()

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$broken"} {
		if CheckPassword("anything", hash) {
			t.Fatalf("expected false for malformed hash %q", hash)
		}
	}
}
