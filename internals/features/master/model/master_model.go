package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Data referensi (read-mostly), dikelola admin.

type FacilityTypeModel struct {
	FacilityTypeID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"facility_type_id"`
	FacilityTypeName      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"facility_type_name"`
	FacilityTypeCreatedAt time.Time      `gorm:"autoCreateTime" json:"facility_type_created_at"`
	FacilityTypeUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"facility_type_updated_at"`
	FacilityTypeDeletedAt gorm.DeletedAt `gorm:"column:facility_type_deleted_at" json:"facility_type_deleted_at,omitempty"`
}

func (FacilityTypeModel) TableName() string { return "facility_types" }

type RoomTypeModel struct {
	RoomTypeID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"room_type_id"`
	RoomTypeName      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"room_type_name"`
	RoomTypeCreatedAt time.Time      `gorm:"autoCreateTime" json:"room_type_created_at"`
	RoomTypeUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"room_type_updated_at"`
	RoomTypeDeletedAt gorm.DeletedAt `gorm:"column:room_type_deleted_at" json:"room_type_deleted_at,omitempty"`
}

func (RoomTypeModel) TableName() string { return "room_types" }

type KostRuleModel struct {
	KostRuleID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"kost_rule_id"`
	KostRuleName      string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"kost_rule_name"`
	KostRuleCreatedAt time.Time      `gorm:"autoCreateTime" json:"kost_rule_created_at"`
	KostRuleUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"kost_rule_updated_at"`
	KostRuleDeletedAt gorm.DeletedAt `gorm:"column:kost_rule_deleted_at" json:"kost_rule_deleted_at,omitempty"`
}

func (KostRuleModel) TableName() string { return "kost_rules" }

// Satuan layanan laundry, contoh: per-kg, per-potong.
// Direferensikan daftar harga laundry.
type LaundryServiceUnitModel struct {
	ServiceUnitID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"service_unit_id"`
	ServiceUnitName      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"service_unit_name"`
	ServiceUnitCreatedAt time.Time      `gorm:"autoCreateTime" json:"service_unit_created_at"`
	ServiceUnitUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"service_unit_updated_at"`
	ServiceUnitDeletedAt gorm.DeletedAt `gorm:"column:service_unit_deleted_at" json:"service_unit_deleted_at,omitempty"`
}

func (LaundryServiceUnitModel) TableName() string { return "laundry_service_units" }
