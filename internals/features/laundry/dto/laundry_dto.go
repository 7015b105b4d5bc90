package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	laundryModel "kostku_backend/internals/features/laundry/model"
)

/* ===== Penyedia ===== */

type CreateLaundryRequest struct {
	KostID string `form:"kost_id" validate:"required,uuid"`
	Name   string `form:"name" validate:"required,min=3,max=100"`
	// String JSON di dalam form-data
	RekeningInfo string `form:"rekening_info" validate:"omitempty"`
}

type UpdateLaundryRequest struct {
	Name         *string `form:"name" validate:"omitempty,min=3,max=100"`
	IsActive     *bool   `form:"is_active"`
	RekeningInfo *string `form:"rekening_info" validate:"omitempty"`
}

type LaundryResponse struct {
	LaundryID    uuid.UUID      `json:"laundry_id"`
	KostID       uuid.UUID      `json:"kost_id"`
	Name         string         `json:"name"`
	IsActive     bool           `json:"is_active"`
	QrisImageURL string         `json:"qris_image_url,omitempty"`
	RekeningInfo datatypes.JSON `json:"rekening_info,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func ToLaundryResponse(m *laundryModel.LaundryModel) LaundryResponse {
	return LaundryResponse{
		LaundryID:    m.LaundryID,
		KostID:       m.LaundryKostID,
		Name:         m.LaundryName,
		IsActive:     m.LaundryIsActive,
		QrisImageURL: m.LaundryQrisImageURL,
		RekeningInfo: m.LaundryRekeningInfo,
		CreatedAt:    m.LaundryCreatedAt,
	}
}

/* ===== Daftar harga ===== */

type CreatePriceRequest struct {
	ServiceName string `json:"service_name" validate:"required,min=2,max=100"`
	UnitID      string `json:"unit_id" validate:"required,uuid"`
	Price       int64  `json:"price" validate:"required,gt=0"`
}

type UpdatePriceRequest struct {
	ServiceName *string `json:"service_name" validate:"omitempty,min=2,max=100"`
	UnitID      *string `json:"unit_id" validate:"omitempty,uuid"`
	Price       *int64  `json:"price" validate:"omitempty,gt=0"`
	IsAvailable *bool   `json:"is_available"`
}

/* ===== Pesanan ===== */

// Items sebagai string JSON array di form-data:
// `[{"price_id":"...","quantity":3}]`
type PlaceOrderRequest struct {
	Items         string `form:"items" validate:"required"`
	PaymentMethod string `form:"payment_method" validate:"required,max=50"`
	Note          string `form:"note" validate:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DITERIMA DIPROSES SELESAI DIAMBIL"`
}

type OrderItemResponse struct {
	PriceID     uuid.UUID `json:"price_id"`
	ServiceName string    `json:"service_name"`
	UnitPrice   int64     `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Subtotal    int64     `json:"subtotal"`
}

type OrderPaymentResponse struct {
	Amount   int64  `json:"amount"`
	Method   string `json:"method"`
	ProofURL string `json:"proof_url"`
	Status   string `json:"status"`
}

type OrderResponse struct {
	OrderID    uuid.UUID             `json:"order_id"`
	LaundryID  uuid.UUID             `json:"laundry_id"`
	KostID     uuid.UUID             `json:"kost_id"`
	UserID     uuid.UUID             `json:"user_id"`
	TotalPrice int64                 `json:"total_price"`
	Status     string                `json:"status"`
	Note       string                `json:"note,omitempty"`
	Items      []OrderItemResponse   `json:"items"`
	Payment    *OrderPaymentResponse `json:"payment,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

func ToOrderResponse(o *laundryModel.LaundryOrderModel, proofURL string) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			PriceID:     it.LaundryOrderItemPriceID,
			ServiceName: it.LaundryOrderItemServiceName,
			UnitPrice:   it.LaundryOrderItemUnitPrice,
			Quantity:    it.LaundryOrderItemQuantity,
			Subtotal:    it.LaundryOrderItemSubtotal,
		})
	}
	resp := OrderResponse{
		OrderID:    o.LaundryOrderID,
		LaundryID:  o.LaundryOrderLaundryID,
		KostID:     o.LaundryOrderKostID,
		UserID:     o.LaundryOrderUserID,
		TotalPrice: o.LaundryOrderTotalPrice,
		Status:     o.LaundryOrderStatus,
		Note:       o.LaundryOrderNote,
		Items:      items,
		CreatedAt:  o.LaundryOrderCreatedAt,
	}
	if o.Payment != nil {
		resp.Payment = &OrderPaymentResponse{
			Amount:   o.Payment.LaundryPaymentAmount,
			Method:   o.Payment.LaundryPaymentMethod,
			ProofURL: proofURL,
			Status:   o.Payment.LaundryPaymentStatus,
		}
	}
	return resp
}
