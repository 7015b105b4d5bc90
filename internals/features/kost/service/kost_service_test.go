package service

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kost Putri Melati", "kost-putri-melati"},
		{"Kost Putra Bahagia 2", "kost-putra-bahagia-2"},
		{"  Kost   Banyak   Spasi  ", "kost-banyak-spasi"},
		{"Kost (Dekat Kampus!)", "kost-dekat-kampus"},
		{"KOST HURUF BESAR", "kost-huruf-besar"},
	}
	for _, tt := range tests {
		if got := GenerateSlug(tt.in); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseStringArrayForm(t *testing.T) {
	got, err := ParseStringArrayForm(`["wifi","kamar mandi dalam"]`, "facilities")
	if err != nil {
		t.Fatalf("ParseStringArrayForm error: %v", err)
	}
	if len(got) != 2 || got[0] != "wifi" || got[1] != "kamar mandi dalam" {
		t.Errorf("hasil = %v", got)
	}

	// kosong = slice kosong, bukan error
	got, err = ParseStringArrayForm("", "facilities")
	if err != nil || len(got) != 0 {
		t.Errorf("string kosong: got %v err %v", got, err)
	}

	if _, err := ParseStringArrayForm(`{"bukan":"array"}`, "facilities"); err == nil {
		t.Error("JSON bukan array harus ditolak")
	}
	if _, err := ParseStringArrayForm(`wifi,ac`, "facilities"); err == nil {
		t.Error("string biasa harus ditolak")
	}
}
