package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cateringDTO "kostku_backend/internals/features/catering/dto"
	cateringModel "kostku_backend/internals/features/catering/model"
	cateringService "kostku_backend/internals/features/catering/service"
	kostModel "kostku_backend/internals/features/kost/model"
	resRepo "kostku_backend/internals/features/reservations/repository"
	helper "kostku_backend/internals/helpers"
	authz "kostku_backend/internals/helpers/auth"
	"kostku_backend/internals/helpers/storage"
)

type CateringOrderController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewCateringOrderController(db *gorm.DB, st *storage.LocalStorage) *CateringOrderController {
	return &CateringOrderController{DB: db, Storage: st}
}

const orderProofCategory = "order_proofs"

/* =========================================================
   🛒 PLACE ORDER — penghuni aktif memesan katering
   Urutan: upload bukti → satu transaksi berisi validasi menu,
   validasi penyedia, validasi penghuni, lalu insert
   order+items+payment. Setiap kegagalan sebelum commit menghapus
   file yang terlanjur diupload.
========================================================= */

func (oc *CateringOrderController) PlaceOrder(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	var input cateringDTO.PlaceOrderRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var itemReqs []cateringService.OrderItemRequest
	if err := json.Unmarshal([]byte(input.Items), &itemReqs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Field items harus berupa JSON array {menu_id, quantity}")
	}
	for _, it := range itemReqs {
		if it.MenuID == uuid.Nil || it.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Setiap item butuh menu_id valid dan quantity >= 1")
		}
	}

	// 1) Upload bukti bayar lebih dulu
	fh, err := c.FormFile("payment_proof")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Bukti pembayaran wajib diupload")
	}
	tempKey, err := oc.Storage.SaveTempImage(fh)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File bukti pembayaran tidak valid")
	}
	proofKey, err := oc.Storage.MoveToPermanent(tempKey, orderProofCategory)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan bukti pembayaran")
	}
	committed := false
	defer func() {
		if !committed {
			_ = oc.Storage.Delete(proofKey)
		}
	}()

	menuIDs := make([]uuid.UUID, 0, len(itemReqs))
	for _, it := range itemReqs {
		menuIDs = append(menuIDs, it.MenuID)
	}

	// 2–6) Validasi menu/penyedia/penghuni dan insert order+items+payment
	// berjalan di SATU transaksi: invariant lintas-baris dicek ulang tepat
	// di transaksi yang melakukan commit, bukan hanya di awal handler.
	var order cateringModel.CateringOrderModel
	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		// Muat semua menu dalam satu query
		var menus []cateringModel.CateringMenuModel
		if err := tx.Where("catering_menu_id IN ?", menuIDs).Find(&menus).Error; err != nil {
			return err
		}

		// Validasi item: id hilang/nonaktif (404), beda penyedia (400)
		build, err := cateringService.BuildOrderItems(itemReqs, menus)
		if err != nil {
			return err
		}

		// Penyedia harus aktif
		var catering cateringModel.CateringModel
		if err := tx.First(&catering, "catering_id = ?", build.CateringID).Error; err != nil {
			return err
		}
		if !catering.CateringIsActive {
			return fiber.NewError(fiber.StatusBadRequest, "Penyedia katering sedang tidak aktif")
		}

		// Pemesan harus penghuni aktif di kost penyedia
		activeStay, err := resRepo.HasActiveStay(tx, catering.CateringKostID, userID)
		if err != nil {
			return err
		}
		if !activeStay {
			return fiber.NewError(fiber.StatusForbidden,
				"Hanya penghuni aktif kost ini yang bisa memesan katering")
		}

		order = cateringModel.CateringOrderModel{
			CateringOrderCateringID: catering.CateringID,
			CateringOrderKostID:     catering.CateringKostID,
			CateringOrderUserID:     userID,
			CateringOrderTotalPrice: build.Total,
			CateringOrderStatus:     cateringModel.OrderStatusPending,
			CateringOrderNote:       input.Note,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range build.Items {
			build.Items[i].CateringOrderItemOrderID = order.CateringOrderID
		}
		if err := tx.Create(&build.Items).Error; err != nil {
			return err
		}
		payment := cateringModel.CateringPaymentModel{
			CateringPaymentOrderID: order.CateringOrderID,
			CateringPaymentAmount:  build.Total,
			CateringPaymentMethod:  input.PaymentMethod,
			CateringPaymentProof:   proofKey,
			CateringPaymentStatus:  cateringModel.PaymentUnverified,
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

	return helper.JsonCreated(c, "Pesanan katering berhasil dibuat",
		cateringDTO.ToOrderResponse(&order, oc.Storage.PublicURL(proofKey)))
}

/* =========================================================
   🔄 STATUS — pengelola pemilik memajukan status pesanan
========================================================= */

func (oc *CateringOrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	orderID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var input cateringDTO.UpdateOrderStatusRequest
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
	if err := oc.DB.First(&kost, "kost_id = ?", order.CateringOrderKostID).Error; err != nil {
		return err
	}
	if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}
	if err := cateringService.ValidateStatusTransition(order.CateringOrderStatus, input.Status); err != nil {
		return err
	}

	// Guard status lama di WHERE: dua update paralel tidak dobel maju
	result := oc.DB.Model(&cateringModel.CateringOrderModel{}).
		Where("catering_order_id = ? AND catering_order_status = ?", orderID, order.CateringOrderStatus).
		Update("catering_order_status", input.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah, muat ulang dulu")
	}

	order.CateringOrderStatus = input.Status
	return helper.JsonUpdated(c, "Status pesanan berhasil diperbarui",
		cateringDTO.ToOrderResponse(order, oc.proofURL(order)))
}

/* =========================================================
   ❌ CANCEL — penghuni pemesan, hanya dari PENDING
========================================================= */

func (oc *CateringOrderController) CancelOrder(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	orderID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	order, err := oc.loadOrder(orderID)
	if err != nil {
		return err
	}
	if err := authz.CanActAsTenant(userID, order.CateringOrderUserID).Err(); err != nil {
		return err
	}
	if err := cateringService.ValidateCancellation(order.CateringOrderStatus); err != nil {
		return err
	}

	result := oc.DB.Model(&cateringModel.CateringOrderModel{}).
		Where("catering_order_id = ? AND catering_order_status = ?", orderID, cateringModel.OrderStatusPending).
		Update("catering_order_status", cateringModel.OrderStatusDibatalkan)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Pesanan sudah diproses dan tidak bisa dibatalkan")
	}

	order.CateringOrderStatus = cateringModel.OrderStatusDibatalkan
	return helper.JsonUpdated(c, "Pesanan berhasil dibatalkan",
		cateringDTO.ToOrderResponse(order, oc.proofURL(order)))
}

/* =========================================================
   📖 READ
========================================================= */

func (oc *CateringOrderController) GetOrderByID(c *fiber.Ctx) error {
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

	if authz.CanActAsTenant(actorID, order.CateringOrderUserID).Err() != nil {
		var kost kostModel.KostModel
		if err := oc.DB.First(&kost, "kost_id = ?", order.CateringOrderKostID).Error; err != nil {
			return err
		}
		if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
			return err
		}
	}

	return helper.JsonOK(c, "Detail pesanan berhasil diambil",
		cateringDTO.ToOrderResponse(order, oc.proofURL(order)))
}

func (oc *CateringOrderController) GetMyOrders(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := oc.DB.Model(&cateringModel.CateringOrderModel{}).
		Where("catering_order_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	var orders []cateringModel.CateringOrderModel
	if err := q.Preload("Items").Preload("Payment").
		Order("catering_order_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "Daftar pesanan Anda berhasil diambil",
		oc.toResponses(orders), helper.BuildPagination(total, paging.Page, paging.Limit))
}

func (oc *CateringOrderController) GetOrdersByCatering(c *fiber.Ctx) error {
	cateringID, err := helper.ParseUUIDParam(c, "catering_id")
	if err != nil {
		return err
	}
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	var catering cateringModel.CateringModel
	if err := oc.DB.First(&catering, "catering_id = ?", cateringID).Error; err != nil {
		return err
	}
	var kost kostModel.KostModel
	if err := oc.DB.First(&kost, "kost_id = ?", catering.CateringKostID).Error; err != nil {
		return err
	}
	if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := oc.DB.Model(&cateringModel.CateringOrderModel{}).
		Where("catering_order_catering_id = ?", cateringID)
	if status := c.Query("status"); status != "" {
		q = q.Where("catering_order_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	var orders []cateringModel.CateringOrderModel
	if err := q.Preload("Items").Preload("Payment").
		Order("catering_order_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "Daftar pesanan berhasil diambil",
		oc.toResponses(orders), helper.BuildPagination(total, paging.Page, paging.Limit))
}

/* ===== util ===== */

func (oc *CateringOrderController) loadOrder(orderID uuid.UUID) (*cateringModel.CateringOrderModel, error) {
	var order cateringModel.CateringOrderModel
	if err := oc.DB.Preload("Items").Preload("Payment").
		First(&order, "catering_order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (oc *CateringOrderController) proofURL(order *cateringModel.CateringOrderModel) string {
	if order.Payment == nil {
		return ""
	}
	return oc.Storage.PublicURL(order.Payment.CateringPaymentProof)
}

func (oc *CateringOrderController) toResponses(orders []cateringModel.CateringOrderModel) []cateringDTO.OrderResponse {
	out := make([]cateringDTO.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, cateringDTO.ToOrderResponse(&orders[i], oc.proofURL(&orders[i])))
	}
	return out
}
