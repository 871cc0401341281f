package cipher_test

import (
	"errors"
	"testing"

	"timetracker/pkg/cipher"
)

func TestSealOpenRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		plaintext  string
		passphrase string
	}{
		{name: "ascii", plaintext: `{"tasks":[],"dailyReviews":[]}`, passphrase: "passwordA"},
		{name: "empty plaintext", plaintext: "", passphrase: "k"},
		{name: "multibyte", plaintext: "今日の振り返り ✓", passphrase: "パスワード123"},
		{name: "passphrase longer than text", plaintext: "hi", passphrase: "a-very-long-passphrase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := cipher.Seal(tt.plaintext, tt.passphrase)
			if err != nil {
				t.Fatalf("Seal: %v", err)
			}
			got, err := cipher.Open(blob, tt.passphrase)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if got != tt.plaintext {
				t.Errorf("expected %q, got %q", tt.plaintext, got)
			}
		})
	}
}

func TestSealIsDeterministic(t *testing.T) {
	a, _ := cipher.Seal("same input", "secret-pass")
	b, _ := cipher.Seal("same input", "secret-pass")
	if a != b {
		t.Fatalf("expected identical blobs, got %q and %q", a, b)
	}
}

func TestSealKnownVector(t *testing.T) {
	// 'A'(0x41)^'a'(0x61)=0x20, 'B'(0x42)^'b'(0x62)=0x20 → "ICA="
	blob, err := cipher.Seal("AB", "ab")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if blob != "ICA=" {
		t.Errorf("expected ICA=, got %s", blob)
	}
}

func TestOpenWrongPassphrase(t *testing.T) {
	plaintext := `{"tasks":[{"id":1,"name":"Draft report"}],"dailyReviews":[]}`
	blob, _ := cipher.Seal(plaintext, "passwordA")

	got, err := cipher.Open(blob, "passwordB")
	if err == nil && got == plaintext {
		t.Fatal("wrong passphrase must not reproduce the plaintext")
	}
	if err != nil && !errors.Is(err, cipher.ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name       string
		blob       string
		passphrase string
	}{
		{name: "not base64", blob: "%%%not-base64%%%", passphrase: "key"},
		{name: "empty passphrase", blob: "ICA=", passphrase: ""},
		{name: "invalid utf8 after xor", blob: "/w==", passphrase: "\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cipher.Open(tt.blob, tt.passphrase)
			if !errors.Is(err, cipher.ErrDecrypt) {
				t.Fatalf("expected ErrDecrypt, got %v", err)
			}
		})
	}
}

func TestSealEmptyPassphrase(t *testing.T) {
	if _, err := cipher.Seal("x", ""); !errors.Is(err, cipher.ErrEmptyPassphrase) {
		t.Fatalf("expected ErrEmptyPassphrase, got %v", err)
	}
}
