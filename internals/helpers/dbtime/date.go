package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date adalah tipe kolom DATE (tanpa jam & zona).
// Serialisasi JSON selalu "YYYY-MM-DD".
type Date struct{ time.Time }

// From: bikin Date dari time.Time (buang jam & zona).
func From(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today: tanggal hari ini (UTC).
func Today() Date { return From(time.Now().UTC()) }

// Parse: bikin Date dari string "YYYY-MM-DD".
func Parse(s string) (Date, error) {
	var d Date
	return d, d.parse(s)
}

// AddMonths menambah n bulan kalender (bukan 30 hari tetap).
func (d Date) AddMonths(n int) Date {
	return From(d.Time.AddDate(0, n, 0))
}

// Scan: terima time.Time atau string "YYYY-MM-DD".
func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = From(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dbtime: unsupported Scan type %T", v)
	}
}

func (d Date) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(s)
}

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(s)
	// kolom DATE dari Postgres bisa ikut membawa jam 00:00:00
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("dbtime: format tanggal harus YYYY-MM-DD: %w", err)
	}
	*d = From(t)
	return nil
}

func (Date) GormDataType() string { return "date" }
