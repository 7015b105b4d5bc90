package controller

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	cateringDTO "kostku_backend/internals/features/catering/dto"
	cateringModel "kostku_backend/internals/features/catering/model"
	kostModel "kostku_backend/internals/features/kost/model"
	helper "kostku_backend/internals/helpers"
	authz "kostku_backend/internals/helpers/auth"
	"kostku_backend/internals/helpers/storage"

	"github.com/google/uuid"
)

type CateringController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewCateringController(db *gorm.DB, st *storage.LocalStorage) *CateringController {
	return &CateringController{DB: db, Storage: st}
}

const (
	qrisCategory = "qris"
	menuCategory = "catering_menus"
)

// rekening_info datang sebagai string JSON di form-data
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

// loadOwnedCatering memuat penyedia + cek kepemilikan kost-nya.
func (cc *CateringController) loadOwnedCatering(c *fiber.Ctx, id uuid.UUID) (*cateringModel.CateringModel, error) {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	var catering cateringModel.CateringModel
	if err := cc.DB.First(&catering, "catering_id = ?", id).Error; err != nil {
		return nil, err
	}
	var kost kostModel.KostModel
	if err := cc.DB.First(&kost, "kost_id = ?", catering.CateringKostID).Error; err != nil {
		return nil, err
	}
	if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return nil, err
	}
	return &catering, nil
}

/* =========================================================
   🍱 Penyedia katering — CRUD oleh pengelola pemilik kost
========================================================= */

func (cc *CateringController) CreateCatering(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	var input cateringDTO.CreateCateringRequest
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
	if err := cc.DB.First(&kost, "kost_id = ?", kostID).Error; err != nil {
		return err
	}
	if err := authz.CanManageProvider(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}

	rekening, err := parseRekeningInfo(input.RekeningInfo)
	if err != nil {
		return err
	}

	// QRIS opsional
	qrisURL := ""
	var qrisKey string
	if fh, ferr := c.FormFile("qris_image"); ferr == nil && fh != nil {
		tempKey, err := cc.Storage.SaveTempImage(fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File QRIS tidak valid")
		}
		qrisKey, err = cc.Storage.MoveToPermanent(tempKey, qrisCategory)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan QRIS")
		}
		qrisURL = cc.Storage.PublicURL(qrisKey)
	}
	committed := false
	defer func() {
		if !committed && qrisKey != "" {
			_ = cc.Storage.Delete(qrisKey)
		}
	}()

	catering := cateringModel.CateringModel{
		CateringKostID:       kostID,
		CateringName:         strings.TrimSpace(input.Name),
		CateringIsActive:     true,
		CateringQrisImageURL: qrisURL,
		CateringRekeningInfo: rekening,
	}
	if err := cc.DB.Create(&catering).Error; err != nil {
		return err
	}
	committed = true

	return helper.JsonCreated(c, "Penyedia katering berhasil dibuat", cateringDTO.ToCateringResponse(&catering))
}

func (cc *CateringController) UpdateCatering(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	catering, err := cc.loadOwnedCatering(c, id)
	if err != nil {
		return err
	}

	var input cateringDTO.UpdateCateringRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["catering_name"] = strings.TrimSpace(*input.Name)
	}
	if input.IsActive != nil {
		updates["catering_is_active"] = *input.IsActive
	}
	if input.RekeningInfo != nil {
		rekening, err := parseRekeningInfo(*input.RekeningInfo)
		if err != nil {
			return err
		}
		updates["catering_rekening_info"] = rekening
	}
	if fh, ferr := c.FormFile("qris_image"); ferr == nil && fh != nil {
		tempKey, err := cc.Storage.SaveTempImage(fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File QRIS tidak valid")
		}
		key, err := cc.Storage.MoveToPermanent(tempKey, qrisCategory)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan QRIS")
		}
		updates["catering_qris_image_url"] = cc.Storage.PublicURL(key)
	}

	if len(updates) > 0 {
		if err := cc.DB.Model(catering).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "Penyedia katering berhasil diperbarui", cateringDTO.ToCateringResponse(catering))
}

func (cc *CateringController) DeleteCatering(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	catering, err := cc.loadOwnedCatering(c, id)
	if err != nil {
		return err
	}
	if err := cc.DB.Delete(catering).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Penyedia katering berhasil dihapus", fiber.Map{"catering_id": id})
}

// GetCateringsByKost: daftar penyedia aktif di sebuah kost (untuk penghuni).
func (cc *CateringController) GetCateringsByKost(c *fiber.Ctx) error {
	kostID, err := helper.ParseUUIDParam(c, "kost_id")
	if err != nil {
		return err
	}
	var list []cateringModel.CateringModel
	if err := cc.DB.
		Where("catering_kost_id = ? AND catering_is_active = ?", kostID, true).
		Order("catering_name ASC").
		Find(&list).Error; err != nil {
		return err
	}
	out := make([]cateringDTO.CateringResponse, 0, len(list))
	for i := range list {
		out = append(out, cateringDTO.ToCateringResponse(&list[i]))
	}
	return helper.JsonOK(c, "Daftar penyedia katering berhasil diambil", out)
}

/* =========================================================
   🍛 Menu — CRUD oleh pemilik penyedia, listing publik
========================================================= */

func (cc *CateringController) CreateMenu(c *fiber.Ctx) error {
	cateringID, err := helper.ParseUUIDParam(c, "catering_id")
	if err != nil {
		return err
	}
	if _, err := cc.loadOwnedCatering(c, cateringID); err != nil {
		return err
	}

	var input cateringDTO.CreateMenuRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	photoURL := ""
	var photoKey string
	if fh, ferr := c.FormFile("photo"); ferr == nil && fh != nil {
		tempKey, err := cc.Storage.SaveTempImage(fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File foto menu tidak valid")
		}
		photoKey, err = cc.Storage.MoveToPermanent(tempKey, menuCategory)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan foto menu")
		}
		photoURL = cc.Storage.PublicURL(photoKey)
	}
	committed := false
	defer func() {
		if !committed && photoKey != "" {
			_ = cc.Storage.Delete(photoKey)
		}
	}()

	menu := cateringModel.CateringMenuModel{
		CateringMenuCateringID:  cateringID,
		CateringMenuName:        strings.TrimSpace(input.Name),
		CateringMenuPrice:       input.Price,
		CateringMenuPhotoURL:    photoURL,
		CateringMenuIsAvailable: true,
	}
	if err := cc.DB.Create(&menu).Error; err != nil {
		return err
	}
	committed = true

	return helper.JsonCreated(c, "Menu berhasil dibuat", menu)
}

func (cc *CateringController) UpdateMenu(c *fiber.Ctx) error {
	menuID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var menu cateringModel.CateringMenuModel
	if err := cc.DB.First(&menu, "catering_menu_id = ?", menuID).Error; err != nil {
		return err
	}
	if _, err := cc.loadOwnedCatering(c, menu.CateringMenuCateringID); err != nil {
		return err
	}

	var input cateringDTO.UpdateMenuRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["catering_menu_name"] = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		updates["catering_menu_price"] = *input.Price
	}
	if input.IsAvailable != nil {
		updates["catering_menu_is_available"] = *input.IsAvailable
	}
	if fh, ferr := c.FormFile("photo"); ferr == nil && fh != nil {
		tempKey, err := cc.Storage.SaveTempImage(fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File foto menu tidak valid")
		}
		key, err := cc.Storage.MoveToPermanent(tempKey, menuCategory)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan foto menu")
		}
		updates["catering_menu_photo_url"] = cc.Storage.PublicURL(key)
	}

	if len(updates) > 0 {
		if err := cc.DB.Model(&menu).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "Menu berhasil diperbarui", menu)
}

func (cc *CateringController) DeleteMenu(c *fiber.Ctx) error {
	menuID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var menu cateringModel.CateringMenuModel
	if err := cc.DB.First(&menu, "catering_menu_id = ?", menuID).Error; err != nil {
		return err
	}
	if _, err := cc.loadOwnedCatering(c, menu.CateringMenuCateringID); err != nil {
		return err
	}
	if err := cc.DB.Delete(&menu).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Menu berhasil dihapus", fiber.Map{"catering_menu_id": menuID})
}

func (cc *CateringController) GetMenusByCatering(c *fiber.Ctx) error {
	cateringID, err := helper.ParseUUIDParam(c, "catering_id")
	if err != nil {
		return err
	}
	var list []cateringModel.CateringMenuModel
	if err := cc.DB.
		Where("catering_menu_catering_id = ?", cateringID).
		Order("catering_menu_name ASC").
		Find(&list).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar menu berhasil diambil", list)
}
