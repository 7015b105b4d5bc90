package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	kostDTO "kostku_backend/internals/features/kost/dto"
	kostModel "kostku_backend/internals/features/kost/model"
	kostService "kostku_backend/internals/features/kost/service"
	resRepo "kostku_backend/internals/features/reservations/repository"
	resService "kostku_backend/internals/features/reservations/service"
	helper "kostku_backend/internals/helpers"
	authz "kostku_backend/internals/helpers/auth"
	"kostku_backend/internals/helpers/storage"
)

type KostController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewKostController(db *gorm.DB, st *storage.LocalStorage) *KostController {
	return &KostController{DB: db, Storage: st}
}

const kostPhotoCategory = "kost_photos"

/* =========================================================
   🏠 CREATE / UPDATE / DELETE — pengelola pemilik
========================================================= */

func (kc *KostController) CreateKost(c *fiber.Ctx) error {
	ownerID := helper.GetUserUUID(c)

	var input kostDTO.CreateKostRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	facilities, err := kostService.ParseStringArrayForm(input.Facilities, "facilities")
	if err != nil {
		return err
	}
	rules, err := kostService.ParseStringArrayForm(input.Rules, "rules")
	if err != nil {
		return err
	}

	slug, err := kostService.EnsureUniqueSlug(kc.DB, kostService.GenerateSlug(input.Name))
	if err != nil {
		return err
	}

	finalPrice := input.FinalMonthlyPrice
	if finalPrice == 0 {
		finalPrice = input.MonthlyPrice
	}
	genderPolicy := input.GenderPolicy
	if genderPolicy == "" {
		genderPolicy = kostModel.GenderPolicyCampur
	}

	// Upload foto (opsional, boleh lebih dari satu)
	photoURLs, photoKeys, err := kc.savePhotos(c)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			for _, key := range photoKeys {
				_ = kc.Storage.Delete(key)
			}
		}
	}()

	kost := kostModel.KostModel{
		KostOwnerID:           ownerID,
		KostName:              strings.TrimSpace(input.Name),
		KostSlug:              slug,
		KostDescription:       input.Description,
		KostAddress:           input.Address,
		KostCity:              strings.TrimSpace(input.City),
		KostGenderPolicy:      genderPolicy,
		KostTotalRooms:        input.TotalRooms,
		KostMonthlyPrice:      input.MonthlyPrice,
		KostFinalMonthlyPrice: finalPrice,
		KostDeposit:           input.Deposit,
		KostFacilities:        facilities,
		KostRules:             rules,
		KostPhotoURLs:         photoURLs,
		KostIsApproved:        false,
	}
	if err := kc.DB.Create(&kost).Error; err != nil {
		return err
	}
	committed = true

	return helper.JsonCreated(c, "Kost berhasil dibuat, menunggu persetujuan admin",
		kostDTO.ToKostResponse(&kost, kost.KostTotalRooms))
}

func (kc *KostController) UpdateKost(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var kost kostModel.KostModel
	if err := kc.DB.First(&kost, "kost_id = ?", id).Error; err != nil {
		return err
	}
	if err := authz.CanManageKost(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}

	var input kostDTO.UpdateKostRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["kost_name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		updates["kost_description"] = *input.Description
	}
	if input.Address != nil {
		updates["kost_address"] = *input.Address
	}
	if input.City != nil {
		updates["kost_city"] = strings.TrimSpace(*input.City)
	}
	if input.GenderPolicy != nil {
		updates["kost_gender_policy"] = *input.GenderPolicy
	}
	if input.TotalRooms != nil {
		updates["kost_total_rooms"] = *input.TotalRooms
	}
	if input.MonthlyPrice != nil {
		updates["kost_monthly_price"] = *input.MonthlyPrice
	}
	if input.FinalMonthlyPrice != nil {
		updates["kost_final_monthly_price"] = *input.FinalMonthlyPrice
	}
	if input.Deposit != nil {
		updates["kost_deposit"] = *input.Deposit
	}
	if input.Facilities != nil {
		facilities, err := kostService.ParseStringArrayForm(*input.Facilities, "facilities")
		if err != nil {
			return err
		}
		updates["kost_facilities"] = pqArray(facilities)
	}
	if input.Rules != nil {
		rules, err := kostService.ParseStringArrayForm(*input.Rules, "rules")
		if err != nil {
			return err
		}
		updates["kost_rules"] = pqArray(rules)
	}

	// Foto baru menggantikan daftar lama (file lama dibiarkan, bisa
	// masih direferensikan riwayat)
	photoURLs, photoKeys, err := kc.savePhotos(c)
	if err != nil {
		return err
	}
	if len(photoURLs) > 0 {
		updates["kost_photo_urls"] = pqArray(photoURLs)
	}
	committed := false
	defer func() {
		if !committed {
			for _, key := range photoKeys {
				_ = kc.Storage.Delete(key)
			}
		}
	}()

	if len(updates) > 0 {
		if err := kc.DB.Model(&kost).Updates(updates).Error; err != nil {
			return err
		}
	}
	committed = true

	if err := kc.DB.First(&kost, "kost_id = ?", id).Error; err != nil {
		return err
	}
	occupied, err := resRepo.CountOccupied(kc.DB, kost.KostID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Kost berhasil diperbarui",
		kostDTO.ToKostResponse(&kost, resService.AvailableRooms(kost.KostTotalRooms, occupied)))
}

func (kc *KostController) DeleteKost(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var kost kostModel.KostModel
	if err := kc.DB.First(&kost, "kost_id = ?", id).Error; err != nil {
		return err
	}
	if err := authz.CanManageKost(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}
	if err := kc.DB.Delete(&kost).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Kost berhasil dihapus", fiber.Map{"kost_id": kost.KostID})
}

/* =========================================================
   ✅ APPROVE — admin
========================================================= */

func (kc *KostController) SetApproval(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var input struct {
		IsApproved *bool `json:"is_approved" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var kost kostModel.KostModel
	if err := kc.DB.First(&kost, "kost_id = ?", id).Error; err != nil {
		return err
	}
	if err := kc.DB.Model(&kost).Update("kost_is_approved", *input.IsApproved).Error; err != nil {
		return err
	}

	msg := "Kost disetujui dan siap menerima reservasi"
	if !*input.IsApproved {
		msg = "Persetujuan kost dicabut"
	}
	return helper.JsonUpdated(c, msg, kostDTO.ToKostResponse(&kost, kost.KostTotalRooms))
}

/* =========================================================
   🌐 PUBLIC — listing & detail
========================================================= */

func (kc *KostController) GetAllKosts(c *fiber.Ctx) error {
	// Sweep dulu supaya hitungan available_rooms segar
	if err := resRepo.SweepOccupancy(kc.DB); err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 12, 50)
	q := kc.DB.Model(&kostModel.KostModel{}).Where("kost_is_approved = ?", true)

	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("LOWER(kost_city) = ?", strings.ToLower(city))
	}
	if gender := strings.TrimSpace(c.Query("gender")); gender != "" {
		q = q.Where("kost_gender_policy = ?", gender)
	}
	if minStr := c.Query("min_price"); minStr != "" {
		if min, err := strconv.ParseInt(minStr, 10, 64); err == nil {
			q = q.Where("kost_final_monthly_price >= ?", min)
		}
	}
	if maxStr := c.Query("max_price"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 64); err == nil {
			q = q.Where("kost_final_monthly_price <= ?", max)
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(kost_name) LIKE ? OR LOWER(kost_address) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	var kosts []kostModel.KostModel
	if err := q.Order("kost_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&kosts).Error; err != nil {
		return err
	}

	responses, err := kc.withAvailability(kosts)
	if err != nil {
		return err
	}

	// Filter ketersediaan dilakukan setelah hitung okupansi
	if c.Query("available_only") == "true" {
		filtered := responses[:0]
		for _, r := range responses {
			if r.AvailableRooms > 0 {
				filtered = append(filtered, r)
			}
		}
		responses = filtered
	}

	return helper.JsonList(c, "Daftar kost berhasil diambil", responses,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

func (kc *KostController) GetKostBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Slug tidak boleh kosong")
	}

	if err := resRepo.SweepOccupancy(kc.DB); err != nil {
		return err
	}

	var kost kostModel.KostModel
	if err := kc.DB.First(&kost, "kost_slug = ?", slug).Error; err != nil {
		return err
	}
	occupied, err := resRepo.CountOccupied(kc.DB, kost.KostID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Detail kost berhasil diambil",
		kostDTO.ToKostResponse(&kost, resService.AvailableRooms(kost.KostTotalRooms, occupied)))
}

func (kc *KostController) GetMyKosts(c *fiber.Ctx) error {
	ownerID := helper.GetUserUUID(c)

	if err := resRepo.SweepOccupancy(kc.DB); err != nil {
		return err
	}

	var kosts []kostModel.KostModel
	if err := kc.DB.Where("kost_owner_id = ?", ownerID).
		Order("kost_created_at DESC").
		Find(&kosts).Error; err != nil {
		return err
	}
	responses, err := kc.withAvailability(kosts)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar kost Anda berhasil diambil", responses)
}

/* ===== util ===== */

func (kc *KostController) withAvailability(kosts []kostModel.KostModel) ([]kostDTO.KostResponse, error) {
	ids := make([]uuid.UUID, 0, len(kosts))
	for i := range kosts {
		ids = append(ids, kosts[i].KostID)
	}
	occupiedBy, err := resRepo.CountOccupiedBulk(kc.DB, ids)
	if err != nil {
		return nil, err
	}
	out := make([]kostDTO.KostResponse, 0, len(kosts))
	for i := range kosts {
		avail := resService.AvailableRooms(kosts[i].KostTotalRooms, occupiedBy[kosts[i].KostID])
		out = append(out, kostDTO.ToKostResponse(&kosts[i], avail))
	}
	return out, nil
}

func (kc *KostController) savePhotos(c *fiber.Ctx) (urls []string, keys []string, err error) {
	form, ferr := c.MultipartForm()
	if ferr != nil || form == nil {
		return nil, nil, nil
	}
	cleanup := func() {
		for _, key := range keys {
			_ = kc.Storage.Delete(key)
		}
	}
	for _, fh := range form.File["photos"] {
		tempKey, err := kc.Storage.SaveTempImage(fh)
		if err != nil {
			cleanup()
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "File foto tidak valid")
		}
		key, err := kc.Storage.MoveToPermanent(tempKey, kostPhotoCategory)
		if err != nil {
			cleanup()
			return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan foto")
		}
		keys = append(keys, key)
		urls = append(urls, kc.Storage.PublicURL(key))
	}
	return urls, keys, nil
}

func pqArray(s []string) pq.StringArray { return pq.StringArray(s) }
