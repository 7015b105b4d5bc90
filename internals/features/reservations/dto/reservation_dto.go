package dto

import (
	"time"

	"github.com/google/uuid"

	resModel "kostku_backend/internals/features/reservations/model"
	"kostku_backend/internals/helpers/dbtime"
)

// Form-data create (file payment_proof dikirim terpisah)
type CreateReservationRequest struct {
	KostID         string `form:"kost_id" validate:"required,uuid"`
	CheckIn        string `form:"check_in" validate:"required,datetime=2006-01-02"`
	DurationMonths int    `form:"duration_months" validate:"required,gte=1"`
	PaymentMethod  string `form:"payment_method" validate:"required,max=50"`
	Note           string `form:"note" validate:"omitempty,max=500"`
}

type UpdateReservationStatusRequest struct {
	Status          string  `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	RejectionReason *string `json:"rejection_reason" validate:"omitempty,max=500"`
}

type ExtendReservationRequest struct {
	AddMonths     int    `form:"add_months" validate:"required,gte=1"`
	PaymentMethod string `form:"payment_method" validate:"required,max=50"`
	Note          string `form:"note" validate:"omitempty,max=500"`
}

type ReservationResponse struct {
	ReservationID   uuid.UUID    `json:"reservation_id"`
	KostID          uuid.UUID    `json:"kost_id"`
	KostName        string       `json:"kost_name,omitempty"`
	UserID          uuid.UUID    `json:"user_id"`
	CheckIn         dbtime.Date  `json:"check_in"`
	CheckOut        *dbtime.Date `json:"check_out,omitempty"`
	DurationMonths  int          `json:"duration_months"`
	TotalPrice      int64        `json:"total_price"`
	Deposit         int64        `json:"deposit"`
	PaymentMethod   string       `json:"payment_method"`
	PaymentProofURL string       `json:"payment_proof_url,omitempty"`
	Note            string       `json:"note,omitempty"`
	Status          string       `json:"status"`
	Occupancy       *string      `json:"occupancy"`
	RejectionReason *string      `json:"rejection_reason,omitempty"`
	ValidatedBy     *uuid.UUID   `json:"validated_by,omitempty"`
	ValidatedAt     *time.Time   `json:"validated_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// ToReservationResponse: proofURL sudah berupa URL publik hasil resolve.
func ToReservationResponse(r *resModel.ReservationModel, kostName, proofURL string) ReservationResponse {
	return ReservationResponse{
		ReservationID:   r.ReservationID,
		KostID:          r.ReservationKostID,
		KostName:        kostName,
		UserID:          r.ReservationUserID,
		CheckIn:         r.ReservationCheckIn,
		CheckOut:        r.ReservationCheckOut,
		DurationMonths:  r.ReservationDurationMonths,
		TotalPrice:      r.ReservationTotalPrice,
		Deposit:         r.ReservationDeposit,
		PaymentMethod:   r.ReservationPaymentMethod,
		PaymentProofURL: proofURL,
		Note:            r.ReservationNote,
		Status:          r.ReservationStatus,
		Occupancy:       r.ReservationOccupancy,
		RejectionReason: r.ReservationRejectionReason,
		ValidatedBy:     r.ReservationValidatedBy,
		ValidatedAt:     r.ReservationValidatedAt,
		CreatedAt:       r.ReservationCreatedAt,
	}
}
