package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cateringModel "kostku_backend/internals/features/catering/model"
	kostModel "kostku_backend/internals/features/kost/model"
	laundryModel "kostku_backend/internals/features/laundry/model"
	resModel "kostku_backend/internals/features/reservations/model"
	resRepo "kostku_backend/internals/features/reservations/repository"
	helper "kostku_backend/internals/helpers"
	"kostku_backend/internals/helpers/dbtime"
)

type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{DB: db}
}

/* =========================================================
   🏠 Riwayat menginap penghuni (join nama kost)
========================================================= */

type stayHistoryRow struct {
	ReservationID  uuid.UUID    `gorm:"column:reservation_id" json:"reservation_id"`
	KostID         uuid.UUID    `gorm:"column:kost_id" json:"kost_id"`
	KostName       string       `gorm:"column:kost_name" json:"kost_name"`
	KostCity       string       `gorm:"column:kost_city" json:"kost_city"`
	CheckIn        dbtime.Date  `gorm:"column:check_in" json:"check_in"`
	CheckOut       *dbtime.Date `gorm:"column:check_out" json:"check_out,omitempty"`
	DurationMonths int          `gorm:"column:duration_months" json:"duration_months"`
	TotalPrice     int64        `gorm:"column:total_price" json:"total_price"`
	Status         string       `gorm:"column:status" json:"status"`
	Occupancy      *string      `gorm:"column:occupancy" json:"occupancy"`
}

func (hc *HistoryController) GetMyStayHistory(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	if err := resRepo.SweepOccupancy(hc.DB); err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := hc.DB.Model(&resModel.ReservationModel{}).
		Joins("JOIN kosts ON kosts.kost_id = reservations.reservation_kost_id").
		Where("reservations.reservation_user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return err
	}

	var rows []stayHistoryRow
	if err := base.
		Select(`reservations.reservation_id AS reservation_id,
			kosts.kost_id AS kost_id,
			kosts.kost_name AS kost_name,
			kosts.kost_city AS kost_city,
			reservations.reservation_check_in AS check_in,
			reservations.reservation_check_out AS check_out,
			reservations.reservation_duration_months AS duration_months,
			reservations.reservation_total_price AS total_price,
			reservations.reservation_status AS status,
			reservations.reservation_occupancy AS occupancy`).
		Order("reservations.reservation_check_in DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return err
	}

	return helper.JsonList(c, "Riwayat menginap berhasil diambil", rows,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

/* =========================================================
   💵 Rekap pendapatan pengelola per kost:
   reservasi APPROVED + pesanan katering & laundry yang tidak
   dibatalkan.
========================================================= */

type incomeRecapRow struct {
	KostID             uuid.UUID `json:"kost_id"`
	KostName           string    `json:"kost_name"`
	ReservationIncome  int64     `json:"reservation_income"`
	ReservationCount   int64     `json:"reservation_count"`
	CateringIncome     int64     `json:"catering_income"`
	CateringOrderCount int64     `json:"catering_order_count"`
	LaundryIncome      int64     `json:"laundry_income"`
	LaundryOrderCount  int64     `json:"laundry_order_count"`
	TotalIncome        int64     `json:"total_income"`
}

func (hc *HistoryController) GetIncomeRecap(c *fiber.Ctx) error {
	ownerID := helper.GetUserUUID(c)

	var kosts []kostModel.KostModel
	if err := hc.DB.Select("kost_id", "kost_name").
		Where("kost_owner_id = ?", ownerID).
		Order("kost_name ASC").
		Find(&kosts).Error; err != nil {
		return err
	}

	recap := make([]incomeRecapRow, 0, len(kosts))
	for i := range kosts {
		row := incomeRecapRow{KostID: kosts[i].KostID, KostName: kosts[i].KostName}

		type sumCount struct {
			Total int64 `gorm:"column:total"`
			Count int64 `gorm:"column:count"`
		}

		var res sumCount
		if err := hc.DB.Model(&resModel.ReservationModel{}).
			Select("COALESCE(SUM(reservation_total_price),0) AS total, COUNT(*) AS count").
			Where("reservation_kost_id = ? AND reservation_status = ?", row.KostID, resModel.StatusApproved).
			Scan(&res).Error; err != nil {
			return err
		}
		row.ReservationIncome, row.ReservationCount = res.Total, res.Count

		var cat sumCount
		if err := hc.DB.Model(&cateringModel.CateringOrderModel{}).
			Select("COALESCE(SUM(catering_order_total_price),0) AS total, COUNT(*) AS count").
			Where("catering_order_kost_id = ? AND catering_order_status <> ?",
				row.KostID, cateringModel.OrderStatusDibatalkan).
			Scan(&cat).Error; err != nil {
			return err
		}
		row.CateringIncome, row.CateringOrderCount = cat.Total, cat.Count

		var lnd sumCount
		if err := hc.DB.Model(&laundryModel.LaundryOrderModel{}).
			Select("COALESCE(SUM(laundry_order_total_price),0) AS total, COUNT(*) AS count").
			Where("laundry_order_kost_id = ? AND laundry_order_status <> ?",
				row.KostID, laundryModel.OrderStatusDibatalkan).
			Scan(&lnd).Error; err != nil {
			return err
		}
		row.LaundryIncome, row.LaundryOrderCount = lnd.Total, lnd.Count

		row.TotalIncome = row.ReservationIncome + row.CateringIncome + row.LaundryIncome
		recap = append(recap, row)
	}

	return helper.JsonOK(c, "Rekap pendapatan berhasil diambil", recap)
}
