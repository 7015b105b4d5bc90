package dbtime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("2025-03-01")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 1 {
		t.Errorf("Parse hasil salah: %v", d)
	}

	// timestamp Postgres ikut jam → tetap bisa diparse
	d2 := Date{}
	if err := d2.Scan("2025-03-01 00:00:00"); err != nil {
		t.Fatalf("Scan string panjang error: %v", err)
	}
	if !d2.Time.Equal(d.Time) {
		t.Errorf("Scan = %v, want %v", d2, d)
	}

	if _, err := Parse("01-03-2025"); err == nil {
		t.Error("format selain YYYY-MM-DD harus ditolak")
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"bulan biasa", "2025-02-01", 1, "2025-03-01"},
		{"enam bulan", "2025-01-15", 6, "2025-07-15"},
		{"akhir januari overflow", "2025-01-31", 1, "2025-03-03"},
		{"tahun kabisat", "2024-01-31", 1, "2024-03-02"},
		{"lintas tahun", "2025-11-10", 3, "2026-02-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := Parse(tt.start)
			if err != nil {
				t.Fatal(err)
			}
			got := start.AddMonths(tt.months)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("AddMonths(%d) = %s, want %s", tt.months, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d, _ := Parse("2025-08-17")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-08-17"` {
		t.Errorf("MarshalJSON = %s, want \"2025-08-17\"", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Time.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	// zero value → null
	b, _ = json.Marshal(Date{})
	if string(b) != "null" {
		t.Errorf("zero Marshal = %s, want null", b)
	}
}

func TestValue(t *testing.T) {
	d, _ := Parse("2025-05-20")
	v, err := d.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "2025-05-20" {
		t.Errorf("Value = %v, want 2025-05-20", v)
	}

	v, _ = Date{}.Value()
	if v != nil {
		t.Errorf("zero Value = %v, want nil", v)
	}
}
