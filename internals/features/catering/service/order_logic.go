package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	cateringModel "kostku_backend/internals/features/catering/model"
)

/* =========================================================
   Logika murni pesanan katering (tanpa DB)
========================================================= */

type OrderItemRequest struct {
	MenuID   uuid.UUID `json:"menu_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gte=1"`
}

// BuildResult: hasil validasi + perhitungan harga dari daftar menu
// otoritatif di DB, bukan dari harga kiriman client.
type BuildResult struct {
	CateringID uuid.UUID
	Items      []cateringModel.CateringOrderItemModel
	Total      int64
}

// BuildOrderItems memvalidasi item pesanan terhadap menu hasil query:
//   - semua menu_id harus ditemukan dan masih tersedia; menu yang hilang
//     atau nonaktif sama-sama 404 (sebutkan id-nya)
//   - semua menu harus dari satu penyedia yang sama (400)
//
// Harga satuan disalin dari menu; subtotal & total int64 rupiah.
func BuildOrderItems(reqs []OrderItemRequest, menus []cateringModel.CateringMenuModel) (*BuildResult, error) {
	if len(reqs) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Pesanan harus berisi minimal satu item")
	}

	menuByID := make(map[uuid.UUID]*cateringModel.CateringMenuModel, len(menus))
	for i := range menus {
		menuByID[menus[i].CateringMenuID] = &menus[i]
	}

	var missing []string
	var crossProvider bool
	var cateringID uuid.UUID
	var items []cateringModel.CateringOrderItemModel
	var total int64

	for _, req := range reqs {
		menu, ok := menuByID[req.MenuID]
		if !ok || !menu.CateringMenuIsAvailable {
			missing = append(missing, req.MenuID.String())
			continue
		}
		if cateringID == uuid.Nil {
			cateringID = menu.CateringMenuCateringID
		} else if cateringID != menu.CateringMenuCateringID {
			crossProvider = true
			continue
		}

		subtotal := menu.CateringMenuPrice * int64(req.Quantity)
		items = append(items, cateringModel.CateringOrderItemModel{
			CateringOrderItemMenuID:    menu.CateringMenuID,
			CateringOrderItemMenuName:  menu.CateringMenuName,
			CateringOrderItemUnitPrice: menu.CateringMenuPrice,
			CateringOrderItemQuantity:  req.Quantity,
			CateringOrderItemSubtotal:  subtotal,
		})
		total += subtotal
	}

	// Urutan pengecekan: keberadaan/ketersediaan (404) dulu, baru
	// invariant satu-penyedia (400).
	if len(missing) > 0 {
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Menu tidak ditemukan atau tidak tersedia: %s", strings.Join(missing, ", ")))
	}
	if crossProvider {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Semua item harus berasal dari satu penyedia katering yang sama")
	}

	return &BuildResult{CateringID: cateringID, Items: items, Total: total}, nil
}

/* =========================================================
   Transisi status: PENDING → DITERIMA → DIPROSES → SELESAI.
   Maju saja, tidak boleh mundur. DIBATALKAN hanya dari PENDING.
========================================================= */

var cateringStatusRank = map[string]int{
	cateringModel.OrderStatusPending:  0,
	cateringModel.OrderStatusDiterima: 1,
	cateringModel.OrderStatusDiproses: 2,
	cateringModel.OrderStatusSelesai:  3,
}

func ValidateStatusTransition(current, next string) error {
	if current == cateringModel.OrderStatusDibatalkan {
		return fiber.NewError(fiber.StatusBadRequest, "Pesanan sudah dibatalkan")
	}
	curRank, ok := cateringStatusRank[current]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Status pesanan saat ini tidak dikenal")
	}
	nextRank, ok := cateringStatusRank[next]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Status tujuan tidak valid")
	}
	if nextRank <= curRank {
		return fiber.NewError(fiber.StatusBadRequest, "Status pesanan tidak bisa mundur")
	}
	return nil
}

func ValidateCancellation(current string) error {
	if current == cateringModel.OrderStatusDibatalkan {
		return fiber.NewError(fiber.StatusBadRequest, "Pesanan sudah dibatalkan")
	}
	if current != cateringModel.OrderStatusPending {
		return fiber.NewError(fiber.StatusBadRequest,
			"Pesanan katering hanya bisa dibatalkan selama masih PENDING")
	}
	return nil
}
