package service

import (
	"time"

	"github.com/gofiber/fiber/v2"

	resModel "kostku_backend/internals/features/reservations/model"
	"kostku_backend/internals/helpers/dbtime"
)

/* =========================================================
   Logika murni reservasi (tanpa DB) — dipakai service & test
========================================================= */

// ComputeCheckOut: check_out = check_in + n bulan kalender.
// 31 Jan + 1 bulan = 3 Mar (non-leap) mengikuti aritmetika time.AddDate.
func ComputeCheckOut(checkIn dbtime.Date, months int) dbtime.Date {
	return checkIn.AddMonths(months)
}

// ComputeTotal: total = harga final per bulan × durasi. Rupiah int64,
// tidak ada floating point.
func ComputeTotal(finalMonthlyPrice int64, months int) int64 {
	return finalMonthlyPrice * int64(months)
}

// ValidateDuration: durasi minimal 1 bulan.
func ValidateDuration(months int) error {
	if months < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Durasi sewa minimal 1 bulan")
	}
	return nil
}

// ValidateDecision memastikan transisi status dari PENDING saja.
func ValidateDecision(current, next string) error {
	if next != resModel.StatusApproved && next != resModel.StatusRejected {
		return fiber.NewError(fiber.StatusBadRequest, "Status harus APPROVED atau REJECTED")
	}
	if current != resModel.StatusPending {
		return fiber.NewError(fiber.StatusBadRequest, "Reservasi sudah divalidasi dan tidak bisa diubah")
	}
	return nil
}

// ValidateExtendable: hanya reservasi APPROVED yang periodenya belum
// berakhir yang bisa diperpanjang.
func ValidateExtendable(r *resModel.ReservationModel, now time.Time) error {
	if r.ReservationStatus != resModel.StatusApproved {
		return fiber.NewError(fiber.StatusBadRequest, "Hanya reservasi APPROVED yang bisa diperpanjang")
	}
	end := r.ReservationCheckIn.Time
	if r.ReservationCheckOut != nil {
		end = r.ReservationCheckOut.Time
	}
	if !end.After(now) {
		return fiber.NewError(fiber.StatusBadRequest, "Masa sewa sudah berakhir, buat reservasi baru")
	}
	return nil
}

// EnsureDecisionApplied menerjemahkan hasil UPDATE berpagar status
// PENDING: 0 baris berarti reservasi sudah keburu diputuskan request
// lain — percobaan kedua adalah error, bukan no-op.
func EnsureDecisionApplied(rowsAffected int64) error {
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Reservasi sudah divalidasi dan tidak bisa diubah")
	}
	return nil
}

// EnsureExtensionApplied: pagar APPROVED pada UPDATE perpanjangan.
func EnsureExtensionApplied(rowsAffected int64) error {
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Status reservasi berubah, perpanjangan dibatalkan")
	}
	return nil
}

// ExtendResult: hasil perhitungan perpanjangan tanpa menyentuh DB.
type ExtendResult struct {
	NewCheckOut   dbtime.Date
	AdditionalFee int64
	NewTotal      int64
	NewDuration   int
}

// ComputeExtension memakai harga final kost SAAT INI, bukan snapshot
// saat reservasi dibuat.
func ComputeExtension(r *resModel.ReservationModel, currentFinalPrice int64, addMonths int) ExtendResult {
	base := r.ReservationCheckIn
	if r.ReservationCheckOut != nil {
		base = *r.ReservationCheckOut
	}
	additional := ComputeTotal(currentFinalPrice, addMonths)
	return ExtendResult{
		NewCheckOut:   base.AddMonths(addMonths),
		AdditionalFee: additional,
		NewTotal:      r.ReservationTotalPrice + additional,
		NewDuration:   r.ReservationDurationMonths + addMonths,
	}
}

// DashboardPartition: pembagian reservasi penghuni untuk dashboard.
type DashboardPartition struct {
	Upcoming []resModel.ReservationModel
	Active   []resModel.ReservationModel
	History  []resModel.ReservationModel
}

// PartitionReservations membagi reservasi ke upcoming/active/history:
//   - history : REJECTED, atau occupancy KELUAR, atau check_out lewat
//   - active  : APPROVED dan periode sedang berjalan
//   - upcoming: PENDING, atau APPROVED yang check_in-nya masih di depan
func PartitionReservations(list []resModel.ReservationModel, today dbtime.Date) DashboardPartition {
	var p DashboardPartition
	for _, r := range list {
		switch {
		case r.ReservationStatus == resModel.StatusRejected:
			p.History = append(p.History, r)
		case r.ReservationOccupancy != nil && *r.ReservationOccupancy == resModel.OccupancyKeluar:
			p.History = append(p.History, r)
		case r.ReservationCheckOut != nil && !r.ReservationCheckOut.Time.After(today.Time):
			p.History = append(p.History, r)
		case r.ReservationStatus == resModel.StatusApproved && !r.ReservationCheckIn.Time.After(today.Time):
			p.Active = append(p.Active, r)
		default:
			p.Upcoming = append(p.Upcoming, r)
		}
	}
	return p
}

// AvailableRooms: kamar tersisa = total − terisi, tidak pernah negatif.
func AvailableRooms(totalRooms int, occupied int64) int {
	avail := totalRooms - int(occupied)
	if avail < 0 {
		return 0
	}
	return avail
}
