package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterModel "kostku_backend/internals/features/master/model"
	helper "kostku_backend/internals/helpers"
)

type MasterController struct {
	DB *gorm.DB
}

func NewMasterController(db *gorm.DB) *MasterController {
	return &MasterController{DB: db}
}

type nameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=200"`
}

func (mc *MasterController) parseName(c *fiber.Ctx) (string, error) {
	var input nameRequest
	if err := c.BodyParser(&input); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return "", err
	}
	return strings.TrimSpace(input.Name), nil
}

/* ===== 🛋️ Facility types ===== */

func (mc *MasterController) GetFacilityTypes(c *fiber.Ctx) error {
	var list []masterModel.FacilityTypeModel
	if err := mc.DB.Order("facility_type_name ASC").Find(&list).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar tipe fasilitas berhasil diambil", list)
}

func (mc *MasterController) CreateFacilityType(c *fiber.Ctx) error {
	name, err := mc.parseName(c)
	if err != nil {
		return err
	}
	item := masterModel.FacilityTypeModel{FacilityTypeName: name}
	if err := mc.DB.Create(&item).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "Tipe fasilitas berhasil dibuat", item)
}

func (mc *MasterController) UpdateFacilityType(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	name, err := mc.parseName(c)
	if err != nil {
		return err
	}
	var item masterModel.FacilityTypeModel
	if err := mc.DB.First(&item, "facility_type_id = ?", id).Error; err != nil {
		return err
	}
	if err := mc.DB.Model(&item).Update("facility_type_name", name).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tipe fasilitas berhasil diperbarui", item)
}

func (mc *MasterController) DeleteFacilityType(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var item masterModel.FacilityTypeModel
	if err := mc.DB.First(&item, "facility_type_id = ?", id).Error; err != nil {
		return err
	}
	if err := mc.DB.Delete(&item).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Tipe fasilitas berhasil dihapus", fiber.Map{"id": id})
}

/* ===== 🚪 Room types ===== */

func (mc *MasterController) GetRoomTypes(c *fiber.Ctx) error {
	var list []masterModel.RoomTypeModel
	if err := mc.DB.Order("room_type_name ASC").Find(&list).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar tipe kamar berhasil diambil", list)
}

func (mc *MasterController) CreateRoomType(c *fiber.Ctx) error {
	name, err := mc.parseName(c)
	if err != nil {
		return err
	}
	item := masterModel.RoomTypeModel{RoomTypeName: name}
	if err := mc.DB.Create(&item).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "Tipe kamar berhasil dibuat", item)
}

func (mc *MasterController) UpdateRoomType(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	name, err := mc.parseName(c)
	if err != nil {
		return err
	}
	var item masterModel.RoomTypeModel
	if err := mc.DB.First(&item, "room_type_id = ?", id).Error; err != nil {
		return err
	}
	if err := mc.DB.Model(&item).Update("room_type_name", name).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tipe kamar berhasil diperbarui", item)
}

func (mc *MasterController) DeleteRoomType(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var item masterModel.RoomTypeModel
	if err := mc.DB.First(&item, "room_type_id = ?", id).Error; err != nil {
		return err
	}
	if err := mc.DB.Delete(&item).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Tipe kamar berhasil dihapus", fiber.Map{"id": id})
}

/* ===== 📜 Kost rules ===== */

func (mc *MasterController) GetKostRules(c *fiber.Ctx) error {
	var list []masterModel.KostRuleModel
	if err := mc.DB.Order("kost_rule_name ASC").Find(&list).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar peraturan kost berhasil diambil", list)
}

func (mc *MasterController) CreateKostRule(c *fiber.Ctx) error {
	name, err := mc.parseName(c)
	if err != nil {
		return err
	}
	item := masterModel.KostRuleModel{KostRuleName: name}
	if err := mc.DB.Create(&item).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "Peraturan kost berhasil dibuat", item)
}

func (mc *MasterController) UpdateKostRule(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	name, err := mc.parseName(c)
	if err != nil {
		return err
	}
	var item masterModel.KostRuleModel
	if err := mc.DB.First(&item, "kost_rule_id = ?", id).Error; err != nil {
		return err
	}
	if err := mc.DB.Model(&item).Update("kost_rule_name", name).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Peraturan kost berhasil diperbarui", item)
}

func (mc *MasterController) DeleteKostRule(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var item masterModel.KostRuleModel
	if err := mc.DB.First(&item, "kost_rule_id = ?", id).Error; err != nil {
		return err
	}
	if err := mc.DB.Delete(&item).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Peraturan kost berhasil dihapus", fiber.Map{"id": id})
}

/* ===== 🧺 Laundry service units ===== */

func (mc *MasterController) GetServiceUnits(c *fiber.Ctx) error {
	var list []masterModel.LaundryServiceUnitModel
	if err := mc.DB.Order("service_unit_name ASC").Find(&list).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar satuan layanan laundry berhasil diambil", list)
}

func (mc *MasterController) CreateServiceUnit(c *fiber.Ctx) error {
	name, err := mc.parseName(c)
	if err != nil {
		return err
	}
	item := masterModel.LaundryServiceUnitModel{ServiceUnitName: name}
	if err := mc.DB.Create(&item).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "Satuan layanan berhasil dibuat", item)
}

func (mc *MasterController) UpdateServiceUnit(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	name, err := mc.parseName(c)
	if err != nil {
		return err
	}
	var item masterModel.LaundryServiceUnitModel
	if err := mc.DB.First(&item, "service_unit_id = ?", id).Error; err != nil {
		return err
	}
	if err := mc.DB.Model(&item).Update("service_unit_name", name).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Satuan layanan berhasil diperbarui", item)
}

func (mc *MasterController) DeleteServiceUnit(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var item masterModel.LaundryServiceUnitModel
	if err := mc.DB.First(&item, "service_unit_id = ?", id).Error; err != nil {
		return err
	}
	if err := mc.DB.Delete(&item).Error; err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Satuan layanan berhasil dihapus", fiber.Map{"id": id})
}
