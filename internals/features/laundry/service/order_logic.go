package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	laundryModel "kostku_backend/internals/features/laundry/model"
)

/* =========================================================
   Logika murni pesanan laundry (tanpa DB)
========================================================= */

type OrderItemRequest struct {
	PriceID  uuid.UUID `json:"price_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gte=1"`
}

type BuildResult struct {
	LaundryID uuid.UUID
	Items     []laundryModel.LaundryOrderItemModel
	Total     int64
}

// BuildOrderItems: sama seperti katering — id hilang atau layanan
// nonaktif 404 (disebutkan id-nya), beda penyedia 400, harga
// otoritatif dari DB.
func BuildOrderItems(reqs []OrderItemRequest, prices []laundryModel.LaundryPriceModel) (*BuildResult, error) {
	if len(reqs) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Pesanan harus berisi minimal satu item")
	}

	priceByID := make(map[uuid.UUID]*laundryModel.LaundryPriceModel, len(prices))
	for i := range prices {
		priceByID[prices[i].LaundryPriceID] = &prices[i]
	}

	var missing []string
	var crossProvider bool
	var laundryID uuid.UUID
	var items []laundryModel.LaundryOrderItemModel
	var total int64

	for _, req := range reqs {
		price, ok := priceByID[req.PriceID]
		if !ok || !price.LaundryPriceIsAvailable {
			missing = append(missing, req.PriceID.String())
			continue
		}
		if laundryID == uuid.Nil {
			laundryID = price.LaundryPriceLaundryID
		} else if laundryID != price.LaundryPriceLaundryID {
			crossProvider = true
			continue
		}

		subtotal := price.LaundryPricePrice * int64(req.Quantity)
		items = append(items, laundryModel.LaundryOrderItemModel{
			LaundryOrderItemPriceID:     price.LaundryPriceID,
			LaundryOrderItemServiceName: price.LaundryPriceServiceName,
			LaundryOrderItemUnitPrice:   price.LaundryPricePrice,
			LaundryOrderItemQuantity:    req.Quantity,
			LaundryOrderItemSubtotal:    subtotal,
		})
		total += subtotal
	}

	// 404 dulu untuk id hilang/nonaktif, baru 400 lintas-penyedia.
	if len(missing) > 0 {
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Layanan tidak ditemukan atau tidak tersedia: %s", strings.Join(missing, ", ")))
	}
	if crossProvider {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Semua item harus berasal dari satu penyedia laundry yang sama")
	}

	return &BuildResult{LaundryID: laundryID, Items: items, Total: total}, nil
}

/* =========================================================
   Transisi status: PENDING → DITERIMA → DIPROSES → SELESAI →
   DIAMBIL. DIBATALKAN dari PENDING atau DITERIMA — jendela
   pembatalan laundry memang lebih longgar daripada katering.
========================================================= */

var laundryStatusRank = map[string]int{
	laundryModel.OrderStatusPending:  0,
	laundryModel.OrderStatusDiterima: 1,
	laundryModel.OrderStatusDiproses: 2,
	laundryModel.OrderStatusSelesai:  3,
	laundryModel.OrderStatusDiambil:  4,
}

func ValidateStatusTransition(current, next string) error {
	if current == laundryModel.OrderStatusDibatalkan {
		return fiber.NewError(fiber.StatusBadRequest, "Pesanan sudah dibatalkan")
	}
	curRank, ok := laundryStatusRank[current]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Status pesanan saat ini tidak dikenal")
	}
	nextRank, ok := laundryStatusRank[next]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Status tujuan tidak valid")
	}
	if nextRank <= curRank {
		return fiber.NewError(fiber.StatusBadRequest, "Status pesanan tidak bisa mundur")
	}
	return nil
}

func ValidateCancellation(current string) error {
	switch current {
	case laundryModel.OrderStatusDibatalkan:
		return fiber.NewError(fiber.StatusBadRequest, "Pesanan sudah dibatalkan")
	case laundryModel.OrderStatusPending, laundryModel.OrderStatusDiterima:
		return nil
	default:
		return fiber.NewError(fiber.StatusBadRequest,
			"Pesanan laundry hanya bisa dibatalkan sebelum mulai diproses")
	}
}
