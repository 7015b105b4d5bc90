package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	resModel "kostku_backend/internals/features/reservations/model"
	"kostku_backend/internals/helpers/dbtime"
)

func mustDate(t *testing.T, s string) dbtime.Date {
	t.Helper()
	d, err := dbtime.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("bukan *fiber.Error: %v", err)
	}
	return fe.Code
}

func strPtr(s string) *string { return &s }

func TestComputeCheckOut(t *testing.T) {
	tests := []struct {
		name    string
		checkIn string
		months  int
		want    string
	}{
		{"satu bulan", "2025-06-01", 1, "2025-07-01"},
		{"enam bulan", "2025-06-15", 6, "2025-12-15"},
		{"akhir bulan overflow", "2025-01-31", 1, "2025-03-03"},
		{"lintas tahun", "2025-10-01", 4, "2026-02-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCheckOut(mustDate(t, tt.checkIn), tt.months)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("ComputeCheckOut = %s, want %s", got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestComputeTotal(t *testing.T) {
	// Rupiah int64: 1.500.000 × 6 = 9.000.000 tanpa pembulatan
	if got := ComputeTotal(1_500_000, 6); got != 9_000_000 {
		t.Errorf("ComputeTotal = %d, want 9000000", got)
	}
	if got := ComputeTotal(750_000, 1); got != 750_000 {
		t.Errorf("ComputeTotal = %d, want 750000", got)
	}
}

func TestValidateDuration(t *testing.T) {
	if err := ValidateDuration(1); err != nil {
		t.Errorf("durasi 1 harus valid: %v", err)
	}
	if err := ValidateDuration(0); err == nil {
		t.Error("durasi 0 harus ditolak")
	} else if fiberCode(t, err) != fiber.StatusBadRequest {
		t.Error("durasi invalid harus 400")
	}
}

func TestValidateDecision(t *testing.T) {
	// dari PENDING boleh ke APPROVED/REJECTED
	if err := ValidateDecision(resModel.StatusPending, resModel.StatusApproved); err != nil {
		t.Errorf("PENDING → APPROVED harus boleh: %v", err)
	}
	if err := ValidateDecision(resModel.StatusPending, resModel.StatusRejected); err != nil {
		t.Errorf("PENDING → REJECTED harus boleh: %v", err)
	}

	// keputusan bersifat final
	if err := ValidateDecision(resModel.StatusApproved, resModel.StatusRejected); err == nil {
		t.Error("APPROVED sudah final, tidak boleh diubah")
	}
	if err := ValidateDecision(resModel.StatusRejected, resModel.StatusApproved); err == nil {
		t.Error("REJECTED sudah final, tidak boleh diubah")
	}

	// target selain APPROVED/REJECTED ditolak
	if err := ValidateDecision(resModel.StatusPending, "SELESAI"); err == nil {
		t.Error("status tujuan tak dikenal harus ditolak")
	}
}

func TestEnsureDecisionApplied(t *testing.T) {
	if err := EnsureDecisionApplied(1); err != nil {
		t.Errorf("1 baris ter-update harus sukses: %v", err)
	}

	// request kedua yang kalah balapan kena 400, bukan sukses diam-diam
	err := EnsureDecisionApplied(0)
	if err == nil {
		t.Fatal("0 baris harus error")
	}
	if fiberCode(t, err) != fiber.StatusBadRequest {
		t.Errorf("keputusan ganda harus 400, got %d", fiberCode(t, err))
	}
}

func TestEnsureExtensionApplied(t *testing.T) {
	if err := EnsureExtensionApplied(1); err != nil {
		t.Errorf("1 baris ter-update harus sukses: %v", err)
	}

	err := EnsureExtensionApplied(0)
	if err == nil {
		t.Fatal("0 baris harus error")
	}
	if fiberCode(t, err) != fiber.StatusConflict {
		t.Errorf("status berubah di tengah jalan harus 409, got %d", fiberCode(t, err))
	}
}

func TestValidateExtendable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	checkIn := mustDate(t, "2025-06-01")
	futureOut := mustDate(t, "2025-09-01")
	pastOut := mustDate(t, "2025-06-01")

	ok := &resModel.ReservationModel{
		ReservationStatus:   resModel.StatusApproved,
		ReservationCheckIn:  checkIn,
		ReservationCheckOut: &futureOut,
	}
	if err := ValidateExtendable(ok, now); err != nil {
		t.Errorf("reservasi aktif harus bisa diperpanjang: %v", err)
	}

	pending := &resModel.ReservationModel{
		ReservationStatus:  resModel.StatusPending,
		ReservationCheckIn: checkIn,
	}
	if err := ValidateExtendable(pending, now); err == nil {
		t.Error("PENDING tidak boleh diperpanjang")
	}

	expired := &resModel.ReservationModel{
		ReservationStatus:   resModel.StatusApproved,
		ReservationCheckIn:  checkIn,
		ReservationCheckOut: &pastOut,
	}
	if err := ValidateExtendable(expired, now); err == nil {
		t.Error("masa sewa habis tidak boleh diperpanjang")
	}

	// check_out nil → pakai check_in sebagai batas
	noOut := &resModel.ReservationModel{
		ReservationStatus:  resModel.StatusApproved,
		ReservationCheckIn: mustDate(t, "2025-01-01"),
	}
	if err := ValidateExtendable(noOut, now); err == nil {
		t.Error("check_in lampau tanpa check_out harus ditolak")
	}
}

func TestComputeExtension(t *testing.T) {
	out := mustDate(t, "2025-09-01")
	r := &resModel.ReservationModel{
		ReservationCheckIn:        mustDate(t, "2025-06-01"),
		ReservationCheckOut:       &out,
		ReservationDurationMonths: 3,
		ReservationTotalPrice:     4_500_000, // 3 × 1.5jt harga lama
	}

	// Harga final kost sekarang sudah naik ke 2jt
	ext := ComputeExtension(r, 2_000_000, 2)

	if got := ext.NewCheckOut.Format("2006-01-02"); got != "2025-11-01" {
		t.Errorf("NewCheckOut = %s, want 2025-11-01", got)
	}
	if ext.AdditionalFee != 4_000_000 {
		t.Errorf("AdditionalFee = %d, want 4000000 (pakai harga sekarang)", ext.AdditionalFee)
	}
	if ext.NewTotal != 8_500_000 {
		t.Errorf("NewTotal = %d, want 8500000", ext.NewTotal)
	}
	if ext.NewDuration != 5 {
		t.Errorf("NewDuration = %d, want 5", ext.NewDuration)
	}
}

func TestPartitionReservations(t *testing.T) {
	today := mustDate(t, "2025-06-10")
	futureIn := mustDate(t, "2025-07-01")
	pastIn := mustDate(t, "2025-05-01")
	futureOut := mustDate(t, "2025-08-01")
	pastOut := mustDate(t, "2025-06-01")

	list := []resModel.ReservationModel{
		// upcoming: PENDING
		{ReservationStatus: resModel.StatusPending, ReservationCheckIn: futureIn},
		// upcoming: APPROVED tapi check_in masih depan
		{ReservationStatus: resModel.StatusApproved, ReservationCheckIn: futureIn, ReservationCheckOut: &futureOut},
		// active: APPROVED, periode jalan
		{ReservationStatus: resModel.StatusApproved, ReservationCheckIn: pastIn, ReservationCheckOut: &futureOut},
		// history: REJECTED
		{ReservationStatus: resModel.StatusRejected, ReservationCheckIn: pastIn},
		// history: sudah KELUAR
		{ReservationStatus: resModel.StatusApproved, ReservationCheckIn: pastIn,
			ReservationCheckOut: &futureOut, ReservationOccupancy: strPtr(resModel.OccupancyKeluar)},
		// history: check_out lewat
		{ReservationStatus: resModel.StatusApproved, ReservationCheckIn: pastIn, ReservationCheckOut: &pastOut},
	}

	p := PartitionReservations(list, today)
	if len(p.Upcoming) != 2 {
		t.Errorf("Upcoming = %d, want 2", len(p.Upcoming))
	}
	if len(p.Active) != 1 {
		t.Errorf("Active = %d, want 1", len(p.Active))
	}
	if len(p.History) != 3 {
		t.Errorf("History = %d, want 3", len(p.History))
	}
}

func TestAvailableRooms(t *testing.T) {
	if got := AvailableRooms(10, 4); got != 6 {
		t.Errorf("AvailableRooms = %d, want 6", got)
	}
	if got := AvailableRooms(10, 10); got != 0 {
		t.Errorf("penuh harus 0, got %d", got)
	}
	// okupansi NULL dihitung konservatif bisa melebihi total sesaat
	if got := AvailableRooms(10, 12); got != 0 {
		t.Errorf("tidak boleh negatif, got %d", got)
	}
}
