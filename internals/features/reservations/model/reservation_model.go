package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/helpers/dbtime"
)

// Status reservasi (sekali diputuskan, final)
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Occupancy penghuni terhadap kamar. NULL = sudah disetujui tapi belum
// ditandai aktif oleh sweep (tetap dihitung menempati kamar).
const (
	OccupancyAktif  = "AKTIF"
	OccupancyKeluar = "KELUAR"
)

const DefaultRejectionReason = "Ditolak oleh pengelola"

type ReservationModel struct {
	ReservationID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"reservation_id"`
	ReservationKostID uuid.UUID `gorm:"type:uuid;not null;index" json:"reservation_kost_id"`
	ReservationUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"reservation_user_id"`

	ReservationCheckIn        dbtime.Date  `gorm:"type:date;not null" json:"reservation_check_in"`
	ReservationDurationMonths int          `gorm:"not null" json:"reservation_duration_months"`
	ReservationCheckOut       *dbtime.Date `gorm:"type:date" json:"reservation_check_out"`

	// Rupiah (int64, tanpa pecahan)
	ReservationTotalPrice int64 `gorm:"not null" json:"reservation_total_price"`
	ReservationDeposit    int64 `gorm:"default:0" json:"reservation_deposit"`

	ReservationPaymentMethod string `gorm:"type:varchar(50)" json:"reservation_payment_method"`
	ReservationPaymentProof  string `gorm:"type:text" json:"reservation_payment_proof"`
	ReservationNote          string `gorm:"type:text" json:"reservation_note"`

	ReservationStatus          string  `gorm:"type:varchar(20);default:'PENDING';index" json:"reservation_status"`
	ReservationOccupancy       *string `gorm:"type:varchar(20);index" json:"reservation_occupancy"`
	ReservationRejectionReason *string `gorm:"type:text" json:"reservation_rejection_reason,omitempty"`

	ReservationValidatedBy *uuid.UUID `gorm:"type:uuid" json:"reservation_validated_by,omitempty"`
	ReservationValidatedAt *time.Time `gorm:"type:timestamptz" json:"reservation_validated_at,omitempty"`

	ReservationCreatedAt time.Time      `gorm:"autoCreateTime" json:"reservation_created_at"`
	ReservationUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"reservation_updated_at"`
	ReservationDeletedAt gorm.DeletedAt `gorm:"column:reservation_deleted_at" json:"reservation_deleted_at,omitempty"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}

// IsDecided: status sudah final (APPROVED/REJECTED).
func (r *ReservationModel) IsDecided() bool {
	return r.ReservationStatus != StatusPending
}
