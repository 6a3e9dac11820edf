package password

import "testing"

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	salt, hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if salt == "" || hash == "" {
		t.Fatalf("empty salt or hash: salt=%q hash=%q", salt, hash)
	}

	if !Verify("correct horse battery staple", salt, hash) {
		t.Fatal("expected Verify to succeed for the original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	salt, hash, err := Hash("p1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if Verify("p2", salt, hash) {
		t.Fatal("expected Verify to fail for a different password")
	}
}

func TestVerify_WrongSalt(t *testing.T) {
	t.Parallel()

	_, hash, err := Hash("p1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	otherSalt, _, err := Hash("p1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if Verify("p1", otherSalt, hash) {
		t.Fatal("expected Verify to fail with a mismatched salt")
	}
}

func TestHash_SaltIsRandom(t *testing.T) {
	t.Parallel()

	salt1, hash1, err := Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	salt2, hash2, err := Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if salt1 == salt2 {
		t.Fatal("expected different salts for two Hash calls")
	}
	if hash1 == hash2 {
		t.Fatal("expected different hashes under different salts")
	}
}
