package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("pa55word!")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if hash == "pa55word!" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !Verify("pa55word!", hash) {
		t.Fatal("expected matching password to verify")
	}

	if Verify("wrong", hash) {
		t.Fatal("expected mismatched password to fail")
	}
}

func TestVerify_NotAHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatal("expected verification against garbage to fail")
	}
}
