package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LaundryModel: penyedia laundry, terikat ke satu kost.
type LaundryModel struct {
	LaundryID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"laundry_id"`
	LaundryKostID uuid.UUID `gorm:"type:uuid;not null;index" json:"laundry_kost_id"`
	LaundryName   string    `gorm:"type:varchar(100);not null" json:"laundry_name"`

	LaundryIsActive bool `gorm:"default:true;index" json:"laundry_is_active"`

	LaundryQrisImageURL string         `gorm:"type:text" json:"laundry_qris_image_url"`
	LaundryRekeningInfo datatypes.JSON `gorm:"type:jsonb" json:"laundry_rekening_info"`

	LaundryCreatedAt time.Time      `gorm:"autoCreateTime" json:"laundry_created_at"`
	LaundryUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"laundry_updated_at"`
	LaundryDeletedAt gorm.DeletedAt `gorm:"column:laundry_deleted_at" json:"laundry_deleted_at,omitempty"`
}

func (LaundryModel) TableName() string { return "laundries" }

// LaundryPriceModel: daftar harga layanan, satuan mengacu ke master
// laundry_service_units (per-kg, per-potong, dst).
type LaundryPriceModel struct {
	LaundryPriceID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"laundry_price_id"`
	LaundryPriceLaundryID uuid.UUID `gorm:"type:uuid;not null;index" json:"laundry_price_laundry_id"`

	LaundryPriceServiceName string    `gorm:"type:varchar(100);not null" json:"laundry_price_service_name"`
	LaundryPriceUnitID      uuid.UUID `gorm:"type:uuid;not null" json:"laundry_price_unit_id"`

	// Rupiah int64 per satuan
	LaundryPricePrice int64 `gorm:"not null" json:"laundry_price_price"`

	LaundryPriceIsAvailable bool `gorm:"default:true" json:"laundry_price_is_available"`

	LaundryPriceCreatedAt time.Time      `gorm:"autoCreateTime" json:"laundry_price_created_at"`
	LaundryPriceUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"laundry_price_updated_at"`
	LaundryPriceDeletedAt gorm.DeletedAt `gorm:"column:laundry_price_deleted_at" json:"laundry_price_deleted_at,omitempty"`
}

func (LaundryPriceModel) TableName() string { return "laundry_prices" }
