package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status pesanan katering. Maju searah, tidak pernah mundur.
// DIBATALKAN hanya dari PENDING.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusDiterima   = "DITERIMA"
	OrderStatusDiproses   = "DIPROSES"
	OrderStatusSelesai    = "SELESAI"
	OrderStatusDibatalkan = "DIBATALKAN"
)

// Status verifikasi pembayaran, independen dari status pesanan.
const (
	PaymentUnverified = "BELUM_DIVERIFIKASI"
	PaymentVerified   = "TERVERIFIKASI"
	PaymentRejected   = "DITOLAK"
)

type CateringOrderModel struct {
	CateringOrderID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"catering_order_id"`
	CateringOrderCateringID uuid.UUID `gorm:"type:uuid;not null;index" json:"catering_order_catering_id"`
	CateringOrderKostID     uuid.UUID `gorm:"type:uuid;not null;index" json:"catering_order_kost_id"`
	CateringOrderUserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"catering_order_user_id"`

	CateringOrderTotalPrice int64  `gorm:"not null" json:"catering_order_total_price"`
	CateringOrderStatus     string `gorm:"type:varchar(20);default:'PENDING';index" json:"catering_order_status"`
	CateringOrderNote       string `gorm:"type:text" json:"catering_order_note"`

	CateringOrderCreatedAt time.Time      `gorm:"autoCreateTime" json:"catering_order_created_at"`
	CateringOrderUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"catering_order_updated_at"`
	CateringOrderDeletedAt gorm.DeletedAt `gorm:"column:catering_order_deleted_at" json:"catering_order_deleted_at,omitempty"`

	Items   []CateringOrderItemModel `gorm:"foreignKey:CateringOrderItemOrderID;references:CateringOrderID" json:"items,omitempty"`
	Payment *CateringPaymentModel    `gorm:"foreignKey:CateringPaymentOrderID;references:CateringOrderID" json:"payment,omitempty"`
}

func (CateringOrderModel) TableName() string { return "catering_orders" }

type CateringOrderItemModel struct {
	CateringOrderItemID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"catering_order_item_id"`
	CateringOrderItemOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"catering_order_item_order_id"`
	CateringOrderItemMenuID  uuid.UUID `gorm:"type:uuid;not null" json:"catering_order_item_menu_id"`

	CateringOrderItemMenuName string `gorm:"type:varchar(100);not null" json:"catering_order_item_menu_name"`

	// Harga satuan disalin dari menu saat pesan, bukan join saat baca
	CateringOrderItemUnitPrice int64 `gorm:"not null" json:"catering_order_item_unit_price"`
	CateringOrderItemQuantity  int   `gorm:"not null" json:"catering_order_item_quantity"`
	CateringOrderItemSubtotal  int64 `gorm:"not null" json:"catering_order_item_subtotal"`

	CateringOrderItemCreatedAt time.Time `gorm:"autoCreateTime" json:"catering_order_item_created_at"`
}

func (CateringOrderItemModel) TableName() string { return "catering_order_items" }

type CateringPaymentModel struct {
	CateringPaymentID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"catering_payment_id"`
	CateringPaymentOrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"catering_payment_order_id"`

	CateringPaymentAmount int64  `gorm:"not null" json:"catering_payment_amount"`
	CateringPaymentMethod string `gorm:"type:varchar(50);not null" json:"catering_payment_method"`
	CateringPaymentProof  string `gorm:"type:text;not null" json:"catering_payment_proof"`
	CateringPaymentStatus string `gorm:"type:varchar(30);default:'BELUM_DIVERIFIKASI'" json:"catering_payment_status"`

	CateringPaymentCreatedAt time.Time `gorm:"autoCreateTime" json:"catering_payment_created_at"`
	CateringPaymentUpdatedAt time.Time `gorm:"autoUpdateTime" json:"catering_payment_updated_at"`
}

func (CateringPaymentModel) TableName() string { return "catering_payments" }
