package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status pesanan laundry. Seperti katering ditambah DIAMBIL di ujung.
// DIBATALKAN boleh dari PENDING atau DITERIMA (sebelum cucian diproses).
const (
	OrderStatusPending    = "PENDING"
	OrderStatusDiterima   = "DITERIMA"
	OrderStatusDiproses   = "DIPROSES"
	OrderStatusSelesai    = "SELESAI"
	OrderStatusDiambil    = "DIAMBIL"
	OrderStatusDibatalkan = "DIBATALKAN"
)

const (
	PaymentUnverified = "BELUM_DIVERIFIKASI"
	PaymentVerified   = "TERVERIFIKASI"
	PaymentRejected   = "DITOLAK"
)

type LaundryOrderModel struct {
	LaundryOrderID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"laundry_order_id"`
	LaundryOrderLaundryID uuid.UUID `gorm:"type:uuid;not null;index" json:"laundry_order_laundry_id"`
	LaundryOrderKostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"laundry_order_kost_id"`
	LaundryOrderUserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"laundry_order_user_id"`

	LaundryOrderTotalPrice int64  `gorm:"not null" json:"laundry_order_total_price"`
	LaundryOrderStatus     string `gorm:"type:varchar(20);default:'PENDING';index" json:"laundry_order_status"`
	LaundryOrderNote       string `gorm:"type:text" json:"laundry_order_note"`

	LaundryOrderCreatedAt time.Time      `gorm:"autoCreateTime" json:"laundry_order_created_at"`
	LaundryOrderUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"laundry_order_updated_at"`
	LaundryOrderDeletedAt gorm.DeletedAt `gorm:"column:laundry_order_deleted_at" json:"laundry_order_deleted_at,omitempty"`

	Items   []LaundryOrderItemModel `gorm:"foreignKey:LaundryOrderItemOrderID;references:LaundryOrderID" json:"items,omitempty"`
	Payment *LaundryPaymentModel    `gorm:"foreignKey:LaundryPaymentOrderID;references:LaundryOrderID" json:"payment,omitempty"`
}

func (LaundryOrderModel) TableName() string { return "laundry_orders" }

type LaundryOrderItemModel struct {
	LaundryOrderItemID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"laundry_order_item_id"`
	LaundryOrderItemOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"laundry_order_item_order_id"`
	LaundryOrderItemPriceID uuid.UUID `gorm:"type:uuid;not null" json:"laundry_order_item_price_id"`

	LaundryOrderItemServiceName string `gorm:"type:varchar(100);not null" json:"laundry_order_item_service_name"`

	// Harga satuan disalin dari daftar harga saat pesan
	LaundryOrderItemUnitPrice int64 `gorm:"not null" json:"laundry_order_item_unit_price"`
	LaundryOrderItemQuantity  int   `gorm:"not null" json:"laundry_order_item_quantity"`
	LaundryOrderItemSubtotal  int64 `gorm:"not null" json:"laundry_order_item_subtotal"`

	LaundryOrderItemCreatedAt time.Time `gorm:"autoCreateTime" json:"laundry_order_item_created_at"`
}

func (LaundryOrderItemModel) TableName() string { return "laundry_order_items" }

type LaundryPaymentModel struct {
	LaundryPaymentID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"laundry_payment_id"`
	LaundryPaymentOrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"laundry_payment_order_id"`

	LaundryPaymentAmount int64  `gorm:"not null" json:"laundry_payment_amount"`
	LaundryPaymentMethod string `gorm:"type:varchar(50);not null" json:"laundry_payment_method"`
	LaundryPaymentProof  string `gorm:"type:text;not null" json:"laundry_payment_proof"`
	LaundryPaymentStatus string `gorm:"type:varchar(30);default:'BELUM_DIVERIFIKASI'" json:"laundry_payment_status"`

	LaundryPaymentCreatedAt time.Time `gorm:"autoCreateTime" json:"laundry_payment_created_at"`
	LaundryPaymentUpdatedAt time.Time `gorm:"autoUpdateTime" json:"laundry_payment_updated_at"`
}

func (LaundryPaymentModel) TableName() string { return "laundry_payments" }
