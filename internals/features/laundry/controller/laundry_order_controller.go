package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	kostModel "kostku_backend/internals/features/kost/model"
	laundryDTO "kostku_backend/internals/features/laundry/dto"
	laundryModel "kostku_backend/internals/features/laundry/model"
	laundryService "kostku_backend/internals/features/laundry/service"
	resRepo "kostku_backend/internals/features/reservations/repository"
	helper "kostku_backend/internals/helpers"
	authz "kostku_backend/internals/helpers/auth"
	"kostku_backend/internals/helpers/storage"
)

type LaundryOrderController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewLaundryOrderController(db *gorm.DB, st *storage.LocalStorage) *LaundryOrderController {
	return &LaundryOrderController{DB: db, Storage: st}
}

const laundryProofCategory = "order_proofs"

/* =========================================================
   🛒 PLACE ORDER — alur sama dengan katering: upload bukti, lalu
   satu transaksi berisi validasi item, penyedia aktif, penghuni
   aktif, dan insert. Gagal sebelum commit = file dihapus.
========================================================= */

func (oc *LaundryOrderController) PlaceOrder(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	var input laundryDTO.PlaceOrderRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var itemReqs []laundryService.OrderItemRequest
	if err := json.Unmarshal([]byte(input.Items), &itemReqs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Field items harus berupa JSON array {price_id, quantity}")
	}
	for _, it := range itemReqs {
		if it.PriceID == uuid.Nil || it.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Setiap item butuh price_id valid dan quantity >= 1")
		}
	}

	fh, err := c.FormFile("payment_proof")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Bukti pembayaran wajib diupload")
	}
	tempKey, err := oc.Storage.SaveTempImage(fh)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File bukti pembayaran tidak valid")
	}
	proofKey, err := oc.Storage.MoveToPermanent(tempKey, laundryProofCategory)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan bukti pembayaran")
	}
	committed := false
	defer func() {
		if !committed {
			_ = oc.Storage.Delete(proofKey)
		}
	}()

	priceIDs := make([]uuid.UUID, 0, len(itemReqs))
	for _, it := range itemReqs {
		priceIDs = append(priceIDs, it.PriceID)
	}

	// Validasi harga/penyedia/penghuni + insert jalan di satu transaksi,
	// sama seperti katering: invariant dicek ulang saat commit.
	var order laundryModel.LaundryOrderModel
	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		var prices []laundryModel.LaundryPriceModel
		if err := tx.Where("laundry_price_id IN ?", priceIDs).Find(&prices).Error; err != nil {
			return err
		}

		build, err := laundryService.BuildOrderItems(itemReqs, prices)
		if err != nil {
			return err
		}

		var laundry laundryModel.LaundryModel
		if err := tx.First(&laundry, "laundry_id = ?", build.LaundryID).Error; err != nil {
			return err
		}
		if !laundry.LaundryIsActive {
			return fiber.NewError(fiber.StatusBadRequest, "Penyedia laundry sedang tidak aktif")
		}

		activeStay, err := resRepo.HasActiveStay(tx, laundry.LaundryKostID, userID)
		if err != nil {
			return err
		}
		if !activeStay {
			return fiber.NewError(fiber.StatusForbidden,
				"Hanya penghuni aktif kost ini yang bisa memesan laundry")
		}

		order = laundryModel.LaundryOrderModel{
			LaundryOrderLaundryID:  laundry.LaundryID,
			LaundryOrderKostID:     laundry.LaundryKostID,
			LaundryOrderUserID:     userID,
			LaundryOrderTotalPrice: build.Total,
			LaundryOrderStatus:     laundryModel.OrderStatusPending,
			LaundryOrderNote:       input.Note,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range build.Items {
			build.Items[i].LaundryOrderItemOrderID = order.LaundryOrderID
		}
		if err := tx.Create(&build.Items).Error; err != nil {
			return err
		}
		payment := laundryModel.LaundryPaymentModel{
			LaundryPaymentOrderID: order.LaundryOrderID,
			LaundryPaymentAmount:  build.Total,
			LaundryPaymentMethod:  input.PaymentMethod,
			LaundryPaymentProof:   proofKey,
			LaundryPaymentStatus:  laundryModel.PaymentUnverified,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		order.Items = build.Items
		order.Payment = &payment
		return nil
	})
	if err != nil {
		return err
	}
	committed = true

	return helper.JsonCreated(c, "Pesanan laundry berhasil dibuat",
		laundryDTO.ToOrderResponse(&order, oc.Storage.PublicURL(proofKey)))
}

/* =========================================================
   🔄 STATUS & ❌ CANCEL
========================================================= */

func (oc *LaundryOrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	orderID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var input laundryDTO.UpdateOrderStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	order, err := oc.loadOrder(orderID)
	if err != nil {
		return err
	}
	var kost kostModel.KostModel
	if err := oc.DB.First(&kost, "kost_id = ?", order.LaundryOrderKostID).Error; err != nil {
		return err
	}
	if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}
	if err := laundryService.ValidateStatusTransition(order.LaundryOrderStatus, input.Status); err != nil {
		return err
	}

	result := oc.DB.Model(&laundryModel.LaundryOrderModel{}).
		Where("laundry_order_id = ? AND laundry_order_status = ?", orderID, order.LaundryOrderStatus).
		Update("laundry_order_status", input.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah, muat ulang dulu")
	}

	order.LaundryOrderStatus = input.Status
	return helper.JsonUpdated(c, "Status pesanan berhasil diperbarui",
		laundryDTO.ToOrderResponse(order, oc.proofURL(order)))
}

func (oc *LaundryOrderController) CancelOrder(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	orderID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	order, err := oc.loadOrder(orderID)
	if err != nil {
		return err
	}
	if err := authz.CanActAsTenant(userID, order.LaundryOrderUserID).Err(); err != nil {
		return err
	}
	if err := laundryService.ValidateCancellation(order.LaundryOrderStatus); err != nil {
		return err
	}

	// Jendela cancel laundry: PENDING atau DITERIMA
	result := oc.DB.Model(&laundryModel.LaundryOrderModel{}).
		Where("laundry_order_id = ? AND laundry_order_status IN ?",
			orderID, []string{laundryModel.OrderStatusPending, laundryModel.OrderStatusDiterima}).
		Update("laundry_order_status", laundryModel.OrderStatusDibatalkan)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Pesanan sudah diproses dan tidak bisa dibatalkan")
	}

	order.LaundryOrderStatus = laundryModel.OrderStatusDibatalkan
	return helper.JsonUpdated(c, "Pesanan berhasil dibatalkan",
		laundryDTO.ToOrderResponse(order, oc.proofURL(order)))
}

/* =========================================================
   📖 READ
========================================================= */

func (oc *LaundryOrderController) GetOrderByID(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	orderID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	order, err := oc.loadOrder(orderID)
	if err != nil {
		return err
	}

	if authz.CanActAsTenant(actorID, order.LaundryOrderUserID).Err() != nil {
		var kost kostModel.KostModel
		if err := oc.DB.First(&kost, "kost_id = ?", order.LaundryOrderKostID).Error; err != nil {
			return err
		}
		if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
			return err
		}
	}

	return helper.JsonOK(c, "Detail pesanan berhasil diambil",
		laundryDTO.ToOrderResponse(order, oc.proofURL(order)))
}

func (oc *LaundryOrderController) GetMyOrders(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := oc.DB.Model(&laundryModel.LaundryOrderModel{}).
		Where("laundry_order_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	var orders []laundryModel.LaundryOrderModel
	if err := q.Preload("Items").Preload("Payment").
		Order("laundry_order_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "Daftar pesanan Anda berhasil diambil",
		oc.toResponses(orders), helper.BuildPagination(total, paging.Page, paging.Limit))
}

func (oc *LaundryOrderController) GetOrdersByLaundry(c *fiber.Ctx) error {
	laundryID, err := helper.ParseUUIDParam(c, "laundry_id")
	if err != nil {
		return err
	}
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	var laundry laundryModel.LaundryModel
	if err := oc.DB.First(&laundry, "laundry_id = ?", laundryID).Error; err != nil {
		return err
	}
	var kost kostModel.KostModel
	if err := oc.DB.First(&kost, "kost_id = ?", laundry.LaundryKostID).Error; err != nil {
		return err
	}
	if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := oc.DB.Model(&laundryModel.LaundryOrderModel{}).
		Where("laundry_order_laundry_id = ?", laundryID)
	if status := c.Query("status"); status != "" {
		q = q.Where("laundry_order_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	var orders []laundryModel.LaundryOrderModel
	if err := q.Preload("Items").Preload("Payment").
		Order("laundry_order_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "Daftar pesanan berhasil diambil",
		oc.toResponses(orders), helper.BuildPagination(total, paging.Page, paging.Limit))
}

/* ===== util ===== */

func (oc *LaundryOrderController) loadOrder(orderID uuid.UUID) (*laundryModel.LaundryOrderModel, error) {
	var order laundryModel.LaundryOrderModel
	if err := oc.DB.Preload("Items").Preload("Payment").
		First(&order, "laundry_order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (oc *LaundryOrderController) proofURL(order *laundryModel.LaundryOrderModel) string {
	if order.Payment == nil {
		return ""
	}
	return oc.Storage.PublicURL(order.Payment.LaundryPaymentProof)
}

func (oc *LaundryOrderController) toResponses(orders []laundryModel.LaundryOrderModel) []laundryDTO.OrderResponse {
	out := make([]laundryDTO.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, laundryDTO.ToOrderResponse(&orders[i], oc.proofURL(&orders[i])))
	}
	return out
}
