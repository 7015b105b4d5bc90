package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	userDTO "kostku_backend/internals/features/users/user/dto"
	userModel "kostku_backend/internals/features/users/user/model"
	helper "kostku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* =======================================
   👤 Profil sendiri (semua role login)
======================================= */

func (uc *UserController) GetMe(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Profil berhasil diambil", userDTO.ToUserResponse(&user))
}

func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	var input userDTO.UpdateProfileRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	updates := map[string]any{}
	if input.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if len(updates) > 0 {
		if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", userDTO.ToUserResponse(&user))
}

/* =======================================
   🛡️ Manajemen user (admin only)
======================================= */

func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := uc.DB.Model(&userModel.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", constants.ParseRole(role).String())
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return err
	}

	return helper.JsonList(c, "Daftar user berhasil diambil",
		userDTO.ToUserResponseList(users),
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

func (uc *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Detail user berhasil diambil", userDTO.ToUserResponse(&user))
}

// SetActive: aktif/nonaktifkan akun. User nonaktif ditolak di AuthMiddleware.
func (uc *UserController) SetActive(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var input struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return err
	}
	if err := uc.DB.Model(&user).Update("is_active", *input.IsActive).Error; err != nil {
		return err
	}

	msg := "User berhasil diaktifkan"
	if !*input.IsActive {
		msg = "User berhasil dinonaktifkan"
	}
	return helper.JsonUpdated(c, msg, userDTO.ToUserResponse(&user))
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return err
	}
	// Soft delete (gorm.DeletedAt)
	if err := uc.DB.Delete(&user).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": user.ID})
}
