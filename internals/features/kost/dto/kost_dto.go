package dto

import (
	"time"

	"github.com/google/uuid"

	kostModel "kostku_backend/internals/features/kost/model"
)

// Form-data create/update; facilities & rules dikirim sebagai string
// JSON array di dalam form (pola yang sama dengan rekening_info).
type CreateKostRequest struct {
	Name              string `form:"name" validate:"required,min=3,max=100"`
	Description       string `form:"description" validate:"omitempty,max=2000"`
	Address           string `form:"address" validate:"required,max=500"`
	City              string `form:"city" validate:"required,max=100"`
	GenderPolicy      string `form:"gender_policy" validate:"omitempty,oneof=putra putri campur"`
	TotalRooms        int    `form:"total_rooms" validate:"required,gte=1"`
	MonthlyPrice      int64  `form:"monthly_price" validate:"required,gt=0"`
	FinalMonthlyPrice int64  `form:"final_monthly_price" validate:"omitempty,gt=0"`
	Deposit           int64  `form:"deposit" validate:"omitempty,gte=0"`
	Facilities        string `form:"facilities" validate:"omitempty"`
	Rules             string `form:"rules" validate:"omitempty"`
}

type UpdateKostRequest struct {
	Name              *string `form:"name" validate:"omitempty,min=3,max=100"`
	Description       *string `form:"description" validate:"omitempty,max=2000"`
	Address           *string `form:"address" validate:"omitempty,max=500"`
	City              *string `form:"city" validate:"omitempty,max=100"`
	GenderPolicy      *string `form:"gender_policy" validate:"omitempty,oneof=putra putri campur"`
	TotalRooms        *int    `form:"total_rooms" validate:"omitempty,gte=1"`
	MonthlyPrice      *int64  `form:"monthly_price" validate:"omitempty,gt=0"`
	FinalMonthlyPrice *int64  `form:"final_monthly_price" validate:"omitempty,gt=0"`
	Deposit           *int64  `form:"deposit" validate:"omitempty,gte=0"`
	Facilities        *string `form:"facilities" validate:"omitempty"`
	Rules             *string `form:"rules" validate:"omitempty"`
}

type KostResponse struct {
	KostID            uuid.UUID `json:"kost_id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description,omitempty"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	GenderPolicy      string    `json:"gender_policy"`
	TotalRooms        int       `json:"total_rooms"`
	AvailableRooms    int       `json:"available_rooms"`
	MonthlyPrice      int64     `json:"monthly_price"`
	FinalMonthlyPrice int64     `json:"final_monthly_price"`
	Deposit           int64     `json:"deposit"`
	Facilities        []string  `json:"facilities"`
	Rules             []string  `json:"rules"`
	PhotoURLs         []string  `json:"photo_urls"`
	IsApproved        bool      `json:"is_approved"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToKostResponse(k *kostModel.KostModel, availableRooms int) KostResponse {
	return KostResponse{
		KostID:            k.KostID,
		OwnerID:           k.KostOwnerID,
		Name:              k.KostName,
		Slug:              k.KostSlug,
		Description:       k.KostDescription,
		Address:           k.KostAddress,
		City:              k.KostCity,
		GenderPolicy:      k.KostGenderPolicy,
		TotalRooms:        k.KostTotalRooms,
		AvailableRooms:    availableRooms,
		MonthlyPrice:      k.KostMonthlyPrice,
		FinalMonthlyPrice: k.KostFinalMonthlyPrice,
		Deposit:           k.KostDeposit,
		Facilities:        k.KostFacilities,
		Rules:             k.KostRules,
		PhotoURLs:         k.KostPhotoURLs,
		IsApproved:        k.KostIsApproved,
		CreatedAt:         k.KostCreatedAt,
	}
}
