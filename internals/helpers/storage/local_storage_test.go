package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bukti Transfer.jpg", "bukti-transfer"},
		{"../../etc/passwd", "passwd"},
		{"foto kost (depan)!.png", "foto-kost-depan"},
		{"....", "file"},
		{"", "file"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := generateUniqueFilename("bukti.jpg")
	b := generateUniqueFilename("bukti.jpg")
	if a == b {
		t.Error("dua panggilan harus menghasilkan nama berbeda")
	}
	if !strings.HasSuffix(a, ".webp") {
		t.Errorf("hasil harus .webp, got %q", a)
	}
	if !strings.HasPrefix(a, "bukti-") {
		t.Errorf("slug asli harus dipertahankan, got %q", a)
	}
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	s := &LocalStorage{Root: t.TempDir(), BaseURL: "https://api.kostku.id"}

	key := "payment_proofs/bukti-123-abcd.webp"
	url := s.PublicURL(key)
	got, err := ExtractKeyFromPublicURL(url)
	if err != nil {
		t.Fatalf("ExtractKeyFromPublicURL error: %v", err)
	}
	if got != key {
		t.Errorf("key = %q, want %q", got, key)
	}

	if _, err := ExtractKeyFromPublicURL("https://api.kostku.id/lain/file.webp"); err == nil {
		t.Error("URL di luar /uploads harus error")
	}
}

func TestPublicURLEmptyKey(t *testing.T) {
	s := &LocalStorage{BaseURL: "https://api.kostku.id"}
	if got := s.PublicURL(""); got != "" {
		t.Errorf("PublicURL(\"\") = %q, want \"\"", got)
	}
}

func TestMoveToPermanentAndDelete(t *testing.T) {
	root := t.TempDir()
	s := &LocalStorage{Root: root, BaseURL: "http://localhost:3000"}

	tempKey := TempDirName + "/contoh-1-abcd.webp"
	if err := s.writeFile(tempKey, []byte("data")); err != nil {
		t.Fatal(err)
	}

	key, err := s.MoveToPermanent(tempKey, "payment_proofs")
	if err != nil {
		t.Fatalf("MoveToPermanent error: %v", err)
	}
	if key != "payment_proofs/contoh-1-abcd.webp" {
		t.Errorf("key = %q", key)
	}
	if _, err := os.Stat(filepath.Join(root, "payment_proofs", "contoh-1-abcd.webp")); err != nil {
		t.Errorf("file permanen tidak ada: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, TempDirName, "contoh-1-abcd.webp")); !os.IsNotExist(err) {
		t.Error("file tmp harus sudah pindah")
	}

	// bukan file tmp → ditolak
	if _, err := s.MoveToPermanent("payment_proofs/contoh-1-abcd.webp", "lain"); err == nil {
		t.Error("memindahkan non-tmp harus error")
	}

	// Delete idempotent
	if err := s.Delete(key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := s.Delete(key); err != nil {
		t.Errorf("Delete kedua kali harus tetap nil: %v", err)
	}
}
