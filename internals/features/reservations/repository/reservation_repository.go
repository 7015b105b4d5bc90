package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	resModel "kostku_backend/internals/features/reservations/model"
)

func FindByID(db *gorm.DB, id uuid.UUID) (*resModel.ReservationModel, error) {
	var r resModel.ReservationModel
	if err := db.First(&r, "reservation_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

/* =========================================================
   🔄 Occupancy sweep — dua bulk UPDATE kondisional, idempotent.
   Aman dijalankan paralel: kondisi WHERE memastikan baris yang
   sudah disweep tidak berubah lagi.
========================================================= */

// SweepOccupancy menandai reservasi APPROVED yang periodenya sedang
// berjalan sebagai AKTIF, dan yang sudah lewat check_out sebagai KELUAR.
func SweepOccupancy(db *gorm.DB) error {
	// Aktifkan: periode berjalan, belum AKTIF
	if err := db.Exec(`
		UPDATE reservations
		SET reservation_occupancy = ?
		WHERE reservation_status = ?
		  AND reservation_deleted_at IS NULL
		  AND reservation_check_in <= CURRENT_DATE
		  AND (reservation_check_out IS NULL OR reservation_check_out > CURRENT_DATE)
		  AND (reservation_occupancy IS NULL OR reservation_occupancy <> ?)
	`, resModel.OccupancyAktif, resModel.StatusApproved, resModel.OccupancyAktif).Error; err != nil {
		return err
	}

	// Keluarkan: check_out sudah lewat
	return db.Exec(`
		UPDATE reservations
		SET reservation_occupancy = ?
		WHERE reservation_status = ?
		  AND reservation_deleted_at IS NULL
		  AND reservation_check_out IS NOT NULL
		  AND reservation_check_out <= CURRENT_DATE
		  AND (reservation_occupancy IS NULL OR reservation_occupancy <> ?)
	`, resModel.OccupancyKeluar, resModel.StatusApproved, resModel.OccupancyKeluar).Error
}

/* =========================================================
   📊 Hitung okupansi
   Reservasi APPROVED dengan occupancy NULL tetap dihitung
   menempati kamar (konservatif, mencegah overbooking).
========================================================= */

func CountOccupied(db *gorm.DB, kostID uuid.UUID) (int64, error) {
	var n int64
	err := db.Model(&resModel.ReservationModel{}).
		Where("reservation_kost_id = ?", kostID).
		Where("reservation_status = ?", resModel.StatusApproved).
		Where("(reservation_occupancy IS NULL OR reservation_occupancy = ?)", resModel.OccupancyAktif).
		Where("(reservation_check_out IS NULL OR reservation_check_out > CURRENT_DATE)").
		Count(&n).Error
	return n, err
}

// CountOccupiedBulk: satu query GROUP BY untuk listing banyak kost.
func CountOccupiedBulk(db *gorm.DB, kostIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	result := make(map[uuid.UUID]int64, len(kostIDs))
	if len(kostIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		KostID uuid.UUID `gorm:"column:kost_id"`
		Total  int64     `gorm:"column:total"`
	}
	err := db.Model(&resModel.ReservationModel{}).
		Select("reservation_kost_id AS kost_id, COUNT(*) AS total").
		Where("reservation_kost_id IN ?", kostIDs).
		Where("reservation_status = ?", resModel.StatusApproved).
		Where("(reservation_occupancy IS NULL OR reservation_occupancy = ?)", resModel.OccupancyAktif).
		Where("(reservation_check_out IS NULL OR reservation_check_out > CURRENT_DATE)").
		Group("reservation_kost_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.KostID] = row.Total
	}
	return result, nil
}

// HasActiveReservation: penghuni masih punya reservasi aktif
// (PENDING atau APPROVED yang belum keluar) di kost tersebut.
func HasActiveReservation(db *gorm.DB, kostID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := db.Raw(`
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE reservation_kost_id = ?
			  AND reservation_user_id = ?
			  AND reservation_deleted_at IS NULL
			  AND (
			    reservation_status = ?
			    OR (reservation_status = ?
			        AND (reservation_occupancy IS NULL OR reservation_occupancy = ?))
			  )
		)
	`, kostID, userID,
		resModel.StatusPending, resModel.StatusApproved, resModel.OccupancyAktif).
		Scan(&exists).Error
	return exists, err
}

// HasActiveStay: penghuni berstatus APPROVED+AKTIF di kost (syarat pesan
// katering/laundry).
func HasActiveStay(db *gorm.DB, kostID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := db.Raw(`
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE reservation_kost_id = ?
			  AND reservation_user_id = ?
			  AND reservation_deleted_at IS NULL
			  AND reservation_status = ?
			  AND reservation_occupancy = ?
		)
	`, kostID, userID, resModel.StatusApproved, resModel.OccupancyAktif).
		Scan(&exists).Error
	return exists, err
}

func ListByUser(db *gorm.DB, userID uuid.UUID) ([]resModel.ReservationModel, error) {
	var list []resModel.ReservationModel
	err := db.Where("reservation_user_id = ?", userID).
		Order("reservation_created_at DESC").
		Find(&list).Error
	return list, err
}

func ListByKost(db *gorm.DB, kostID uuid.UUID, status string, limit, offset int) ([]resModel.ReservationModel, int64, error) {
	q := db.Model(&resModel.ReservationModel{}).
		Where("reservation_kost_id = ?", kostID)
	if status != "" {
		q = q.Where("reservation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []resModel.ReservationModel
	err := q.Order("reservation_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, total, err
}
