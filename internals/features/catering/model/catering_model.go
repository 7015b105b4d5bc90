package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CateringModel: penyedia katering, terikat ke satu kost.
type CateringModel struct {
	CateringID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"catering_id"`
	CateringKostID uuid.UUID `gorm:"type:uuid;not null;index" json:"catering_kost_id"`
	CateringName   string    `gorm:"type:varchar(100);not null" json:"catering_name"`

	CateringIsActive bool `gorm:"default:true;index" json:"catering_is_active"`

	// Info pembayaran: QRIS + rekening (JSON bebas: bank, no_rek, atas_nama)
	CateringQrisImageURL string         `gorm:"type:text" json:"catering_qris_image_url"`
	CateringRekeningInfo datatypes.JSON `gorm:"type:jsonb" json:"catering_rekening_info"`

	CateringCreatedAt time.Time      `gorm:"autoCreateTime" json:"catering_created_at"`
	CateringUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"catering_updated_at"`
	CateringDeletedAt gorm.DeletedAt `gorm:"column:catering_deleted_at" json:"catering_deleted_at,omitempty"`
}

func (CateringModel) TableName() string { return "caterings" }

type CateringMenuModel struct {
	CateringMenuID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"catering_menu_id"`
	CateringMenuCateringID uuid.UUID `gorm:"type:uuid;not null;index" json:"catering_menu_catering_id"`
	CateringMenuName       string    `gorm:"type:varchar(100);not null" json:"catering_menu_name"`

	// Rupiah int64
	CateringMenuPrice int64 `gorm:"not null" json:"catering_menu_price"`

	CateringMenuPhotoURL    string `gorm:"type:text" json:"catering_menu_photo_url"`
	CateringMenuIsAvailable bool   `gorm:"default:true" json:"catering_menu_is_available"`

	CateringMenuCreatedAt time.Time      `gorm:"autoCreateTime" json:"catering_menu_created_at"`
	CateringMenuUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"catering_menu_updated_at"`
	CateringMenuDeletedAt gorm.DeletedAt `gorm:"column:catering_menu_deleted_at" json:"catering_menu_deleted_at,omitempty"`
}

func (CateringMenuModel) TableName() string { return "catering_menus" }
