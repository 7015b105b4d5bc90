package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	cateringModel "kostku_backend/internals/features/catering/model"
)

/* ===== Penyedia ===== */

type CreateCateringRequest struct {
	KostID string `form:"kost_id" validate:"required,uuid"`
	Name   string `form:"name" validate:"required,min=3,max=100"`
	// String JSON di dalam form-data, diparse server-side
	RekeningInfo string `form:"rekening_info" validate:"omitempty"`
}

type UpdateCateringRequest struct {
	Name         *string `form:"name" validate:"omitempty,min=3,max=100"`
	IsActive     *bool   `form:"is_active"`
	RekeningInfo *string `form:"rekening_info" validate:"omitempty"`
}

type CateringResponse struct {
	CateringID   uuid.UUID      `json:"catering_id"`
	KostID       uuid.UUID      `json:"kost_id"`
	Name         string         `json:"name"`
	IsActive     bool           `json:"is_active"`
	QrisImageURL string         `json:"qris_image_url,omitempty"`
	RekeningInfo datatypes.JSON `json:"rekening_info,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func ToCateringResponse(m *cateringModel.CateringModel) CateringResponse {
	return CateringResponse{
		CateringID:   m.CateringID,
		KostID:       m.CateringKostID,
		Name:         m.CateringName,
		IsActive:     m.CateringIsActive,
		QrisImageURL: m.CateringQrisImageURL,
		RekeningInfo: m.CateringRekeningInfo,
		CreatedAt:    m.CateringCreatedAt,
	}
}

/* ===== Menu ===== */

type CreateMenuRequest struct {
	Name  string `form:"name" validate:"required,min=2,max=100"`
	Price int64  `form:"price" validate:"required,gt=0"`
}

type UpdateMenuRequest struct {
	Name        *string `form:"name" validate:"omitempty,min=2,max=100"`
	Price       *int64  `form:"price" validate:"omitempty,gt=0"`
	IsAvailable *bool   `form:"is_available"`
}

/* ===== Pesanan ===== */

// Items dikirim sebagai string JSON array di form-data:
// `[{"menu_id":"...","quantity":2}]`
type PlaceOrderRequest struct {
	Items         string `form:"items" validate:"required"`
	PaymentMethod string `form:"payment_method" validate:"required,max=50"`
	Note          string `form:"note" validate:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DITERIMA DIPROSES SELESAI"`
}

type OrderItemResponse struct {
	MenuID    uuid.UUID `json:"menu_id"`
	MenuName  string    `json:"menu_name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  int64     `json:"subtotal"`
}

type OrderPaymentResponse struct {
	Amount   int64  `json:"amount"`
	Method   string `json:"method"`
	ProofURL string `json:"proof_url"`
	Status   string `json:"status"`
}

type OrderResponse struct {
	OrderID    uuid.UUID             `json:"order_id"`
	CateringID uuid.UUID             `json:"catering_id"`
	KostID     uuid.UUID             `json:"kost_id"`
	UserID     uuid.UUID             `json:"user_id"`
	TotalPrice int64                 `json:"total_price"`
	Status     string                `json:"status"`
	Note       string                `json:"note,omitempty"`
	Items      []OrderItemResponse   `json:"items"`
	Payment    *OrderPaymentResponse `json:"payment,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

func ToOrderResponse(o *cateringModel.CateringOrderModel, proofURL string) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			MenuID:    it.CateringOrderItemMenuID,
			MenuName:  it.CateringOrderItemMenuName,
			UnitPrice: it.CateringOrderItemUnitPrice,
			Quantity:  it.CateringOrderItemQuantity,
			Subtotal:  it.CateringOrderItemSubtotal,
		})
	}
	resp := OrderResponse{
		OrderID:    o.CateringOrderID,
		CateringID: o.CateringOrderCateringID,
		KostID:     o.CateringOrderKostID,
		UserID:     o.CateringOrderUserID,
		TotalPrice: o.CateringOrderTotalPrice,
		Status:     o.CateringOrderStatus,
		Note:       o.CateringOrderNote,
		Items:      items,
		CreatedAt:  o.CateringOrderCreatedAt,
	}
	if o.Payment != nil {
		resp.Payment = &OrderPaymentResponse{
			Amount:   o.Payment.CateringPaymentAmount,
			Method:   o.Payment.CateringPaymentMethod,
			ProofURL: proofURL,
			Status:   o.Payment.CateringPaymentStatus,
		}
	}
	return resp
}
