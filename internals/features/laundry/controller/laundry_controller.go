package controller

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	kostModel "kostku_backend/internals/features/kost/model"
	laundryDTO "kostku_backend/internals/features/laundry/dto"
	laundryModel "kostku_backend/internals/features/laundry/model"
	masterModel "kostku_backend/internals/features/master/model"
	helper "kostku_backend/internals/helpers"
	authz "kostku_backend/internals/helpers/auth"
	"kostku_backend/internals/helpers/storage"
)

type LaundryController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewLaundryController(db *gorm.DB, st *storage.LocalStorage) *LaundryController {
	return &LaundryController{DB: db, Storage: st}
}

const laundryQrisCategory = "qris"

func parseRekeningInfo(raw string) (datatypes.JSON, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !json.Valid([]byte(raw)) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "rekening_info harus berupa JSON yang valid")
	}
	return datatypes.JSON([]byte(raw)), nil
}

func (lc *LaundryController) loadOwnedLaundry(c *fiber.Ctx, id uuid.UUID) (*laundryModel.LaundryModel, error) {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	var laundry laundryModel.LaundryModel
	if err := lc.DB.First(&laundry, "laundry_id = ?", id).Error; err != nil {
		return nil, err
	}
	var kost kostModel.KostModel
	if err := lc.DB.First(&kost, "kost_id = ?", laundry.LaundryKostID).Error; err != nil {
		return nil, err
	}
	if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return nil, err
	}
	return &laundry, nil
}

/* =========================================================
   🧺 Penyedia laundry — CRUD pengelola pemilik kost
========================================================= */

func (lc *LaundryController) CreateLaundry(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	var input laundryDTO.CreateLaundryRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}
	kostID, err := uuid.Parse(input.KostID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "kost_id tidak valid")
	}

	var kost kostModel.KostModel
	if err := lc.DB.First(&kost, "kost_id = ?", kostID).Error; err != nil {
		return err
	}
	if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}

	rekening, err := parseRekeningInfo(input.RekeningInfo)
	if err != nil {
		return err
	}

	qrisURL := ""
	var qrisKey string
	if fh, ferr := c.FormFile("qris_image"); ferr == nil && fh != nil {
		tempKey, err := lc.Storage.SaveTempImage(fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File QRIS tidak valid")
		}
		qrisKey, err = lc.Storage.MoveToPermanent(tempKey, laundryQrisCategory)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan QRIS")
		}
		qrisURL = lc.Storage.PublicURL(qrisKey)
	}
	committed := false
	defer func() {
		if !committed && qrisKey != "" {
			_ = lc.Storage.Delete(qrisKey)
		}
	}()

	laundry := laundryModel.LaundryModel{
		LaundryKostID:       kostID,
		LaundryName:         strings.TrimSpace(input.Name),
		LaundryIsActive:     true,
		LaundryQrisImageURL: qrisURL,
		LaundryRekeningInfo: rekening,
	}
	if err := lc.DB.Create(&laundry).Error; err != nil {
		return err
	}
	committed = true

	return helper.JsonCreated(c, "Penyedia laundry berhasil dibuat", laundryDTO.ToLaundryResponse(&laundry))
}

func (lc *LaundryController) UpdateLaundry(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	laundry, err := lc.loadOwnedLaundry(c, id)
	if err != nil {
		return err
	}

	var input laundryDTO.UpdateLaundryRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["laundry_name"] = strings.TrimSpace(*input.Name)
	}
	if input.IsActive != nil {
		updates["laundry_is_active"] = *input.IsActive
	}
	if input.RekeningInfo != nil {
		rekening, err := parseRekeningInfo(*input.RekeningInfo)
		if err != nil {
			return err
		}
		updates["laundry_rekening_info"] = rekening
	}
	if fh, ferr := c.FormFile("qris_image"); ferr == nil && fh != nil {
		tempKey, err := lc.Storage.SaveTempImage(fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File QRIS tidak valid")
		}
		key, err := lc.Storage.MoveToPermanent(tempKey, laundryQrisCategory)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan QRIS")
		}
		updates["laundry_qris_image_url"] = lc.Storage.PublicURL(key)
	}

	if len(updates) > 0 {
		if err := lc.DB.Model(laundry).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "Penyedia laundry berhasil diperbarui", laundryDTO.ToLaundryResponse(laundry))
}

func (lc *LaundryController) DeleteLaundry(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	laundry, err := lc.loadOwnedLaundry(c, id)
	if err != nil {
		return err
	}
	if err := lc.DB.Delete(laundry).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Penyedia laundry berhasil dihapus", fiber.Map{"laundry_id": id})
}

func (lc *LaundryController) GetLaundriesByKost(c *fiber.Ctx) error {
	kostID, err := helper.ParseUUIDParam(c, "kost_id")
	if err != nil {
		return err
	}
	var list []laundryModel.LaundryModel
	if err := lc.DB.
		Where("laundry_kost_id = ? AND laundry_is_active = ?", kostID, true).
		Order("laundry_name ASC").
		Find(&list).Error; err != nil {
		return err
	}
	out := make([]laundryDTO.LaundryResponse, 0, len(list))
	for i := range list {
		out = append(out, laundryDTO.ToLaundryResponse(&list[i]))
	}
	return helper.JsonOK(c, "Daftar penyedia laundry berhasil diambil", out)
}

/* =========================================================
   💰 Daftar harga — satuan mengacu master laundry_service_units
========================================================= */

func (lc *LaundryController) CreatePrice(c *fiber.Ctx) error {
	laundryID, err := helper.ParseUUIDParam(c, "laundry_id")
	if err != nil {
		return err
	}
	if _, err := lc.loadOwnedLaundry(c, laundryID); err != nil {
		return err
	}

	var input laundryDTO.CreatePriceRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}
	unitID, err := uuid.Parse(input.UnitID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unit_id tidak valid")
	}

	// Satuan harus terdaftar di data master
	var unit masterModel.LaundryServiceUnitModel
	if err := lc.DB.First(&unit, "service_unit_id = ?", unitID).Error; err != nil {
		return err
	}

	price := laundryModel.LaundryPriceModel{
		LaundryPriceLaundryID:   laundryID,
		LaundryPriceServiceName: strings.TrimSpace(input.ServiceName),
		LaundryPriceUnitID:      unitID,
		LaundryPricePrice:       input.Price,
		LaundryPriceIsAvailable: true,
	}
	if err := lc.DB.Create(&price).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "Harga layanan berhasil dibuat", price)
}

func (lc *LaundryController) UpdatePrice(c *fiber.Ctx) error {
	priceID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var price laundryModel.LaundryPriceModel
	if err := lc.DB.First(&price, "laundry_price_id = ?", priceID).Error; err != nil {
		return err
	}
	if _, err := lc.loadOwnedLaundry(c, price.LaundryPriceLaundryID); err != nil {
		return err
	}

	var input laundryDTO.UpdatePriceRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if input.ServiceName != nil {
		updates["laundry_price_service_name"] = strings.TrimSpace(*input.ServiceName)
	}
	if input.UnitID != nil {
		unitID, err := uuid.Parse(*input.UnitID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unit_id tidak valid")
		}
		var unit masterModel.LaundryServiceUnitModel
		if err := lc.DB.First(&unit, "service_unit_id = ?", unitID).Error; err != nil {
			return err
		}
		updates["laundry_price_unit_id"] = unitID
	}
	if input.Price != nil {
		updates["laundry_price_price"] = *input.Price
	}
	if input.IsAvailable != nil {
		updates["laundry_price_is_available"] = *input.IsAvailable
	}

	if len(updates) > 0 {
		if err := lc.DB.Model(&price).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "Harga layanan berhasil diperbarui", price)
}

func (lc *LaundryController) DeletePrice(c *fiber.Ctx) error {
	priceID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var price laundryModel.LaundryPriceModel
	if err := lc.DB.First(&price, "laundry_price_id = ?", priceID).Error; err != nil {
		return err
	}
	if _, err := lc.loadOwnedLaundry(c, price.LaundryPriceLaundryID); err != nil {
		return err
	}
	if err := lc.DB.Delete(&price).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Harga layanan berhasil dihapus", fiber.Map{"laundry_price_id": priceID})
}

func (lc *LaundryController) GetPricesByLaundry(c *fiber.Ctx) error {
	laundryID, err := helper.ParseUUIDParam(c, "laundry_id")
	if err != nil {
		return err
	}
	var list []laundryModel.LaundryPriceModel
	if err := lc.DB.
		Where("laundry_price_laundry_id = ?", laundryID).
		Order("laundry_price_service_name ASC").
		Find(&list).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar harga layanan berhasil diambil", list)
}
