package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Kebijakan gender penghuni kost
const (
	GenderPolicyPutra  = "putra"
	GenderPolicyPutri  = "putri"
	GenderPolicyCampur = "campur"
)

type KostModel struct {
	KostID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"kost_id"`
	KostOwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"kost_owner_id"`
	KostName        string    `gorm:"type:varchar(100);not null" json:"kost_name"`
	KostSlug        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"kost_slug"`
	KostDescription string    `gorm:"type:text" json:"kost_description"`
	KostAddress     string    `gorm:"type:text;not null" json:"kost_address"`
	KostCity        string    `gorm:"type:varchar(100);not null;index" json:"kost_city"`

	KostGenderPolicy string `gorm:"type:varchar(10);default:'campur'" json:"kost_gender_policy"`

	KostTotalRooms int `gorm:"not null" json:"kost_total_rooms"`

	// Harga dalam rupiah (int64, tanpa pecahan)
	KostMonthlyPrice      int64 `gorm:"not null" json:"kost_monthly_price"`
	KostFinalMonthlyPrice int64 `gorm:"not null" json:"kost_final_monthly_price"`
	KostDeposit           int64 `gorm:"default:0" json:"kost_deposit"`

	KostFacilities pq.StringArray `gorm:"type:text[]" json:"kost_facilities"`
	KostRules      pq.StringArray `gorm:"type:text[]" json:"kost_rules"`
	KostPhotoURLs  pq.StringArray `gorm:"type:text[]" json:"kost_photo_urls"`

	// Kost baru harus di-approve admin dulu sebelum bisa menerima reservasi
	KostIsApproved bool `gorm:"default:false;index" json:"kost_is_approved"`

	KostCreatedAt time.Time      `gorm:"autoCreateTime" json:"kost_created_at"`
	KostUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"kost_updated_at"`
	KostDeletedAt gorm.DeletedAt `gorm:"column:kost_deleted_at" json:"kost_deleted_at,omitempty"`
}

func (KostModel) TableName() string {
	return "kosts"
}
