package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	kostModel "kostku_backend/internals/features/kost/model"
	resDTO "kostku_backend/internals/features/reservations/dto"
	resModel "kostku_backend/internals/features/reservations/model"
	resRepo "kostku_backend/internals/features/reservations/repository"
	resService "kostku_backend/internals/features/reservations/service"
	helper "kostku_backend/internals/helpers"
	authz "kostku_backend/internals/helpers/auth"
	"kostku_backend/internals/helpers/dbtime"
	"kostku_backend/internals/helpers/storage"

	"github.com/google/uuid"
)

type ReservationController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewReservationController(db *gorm.DB, st *storage.LocalStorage) *ReservationController {
	return &ReservationController{DB: db, Storage: st}
}

const proofCategory = "payment_proofs"

/* =========================================================
   📝 CREATE — penghuni mengajukan reservasi
   Bukti bayar diupload dulu; kalau validasi/transaksi gagal,
   file yang sudah tersimpan dihapus lagi (compensating delete).
========================================================= */

func (rc *ReservationController) CreateReservation(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	var input resDTO.CreateReservationRequest
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
	checkIn, err := dbtime.Parse(input.CheckIn)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format check_in harus YYYY-MM-DD")
	}
	if err := resService.ValidateDuration(input.DurationMonths); err != nil {
		return err
	}

	// 1) Upload bukti bayar lebih dulu
	fh, err := c.FormFile("payment_proof")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Bukti pembayaran wajib diupload")
	}
	tempKey, err := rc.Storage.SaveTempImage(fh)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File bukti pembayaran tidak valid")
	}
	proofKey, err := rc.Storage.MoveToPermanent(tempKey, proofCategory)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan bukti pembayaran")
	}
	committed := false
	defer func() {
		if !committed {
			_ = rc.Storage.Delete(proofKey)
		}
	}()

	// 2) Validasi kost
	var kost kostModel.KostModel
	if err := rc.DB.First(&kost, "kost_id = ?", kostID).Error; err != nil {
		return err
	}
	if !kost.KostIsApproved {
		return fiber.NewError(fiber.StatusBadRequest, "Kost belum disetujui admin dan belum menerima reservasi")
	}

	reservation := resModel.ReservationModel{
		ReservationKostID:         kostID,
		ReservationUserID:         userID,
		ReservationCheckIn:        checkIn,
		ReservationDurationMonths: input.DurationMonths,
		ReservationTotalPrice:     resService.ComputeTotal(kost.KostFinalMonthlyPrice, input.DurationMonths),
		ReservationDeposit:        kost.KostDeposit,
		ReservationPaymentMethod:  input.PaymentMethod,
		ReservationPaymentProof:   proofKey,
		ReservationNote:           input.Note,
		ReservationStatus:         resModel.StatusPending,
	}
	checkOut := resService.ComputeCheckOut(checkIn, input.DurationMonths)
	reservation.ReservationCheckOut = &checkOut

	// 3) Transaksi: kapasitas & duplikat dicek ulang DI DALAM transaksi,
	//    baris kost dikunci supaya dua request paralel tidak overbooking.
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		var locked kostModel.KostModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "kost_id = ?", kostID).Error; err != nil {
			return err
		}

		occupied, err := resRepo.CountOccupied(tx, kostID)
		if err != nil {
			return err
		}
		if occupied >= int64(locked.KostTotalRooms) {
			return fiber.NewError(fiber.StatusConflict, "Kamar kost sudah penuh")
		}

		dup, err := resRepo.HasActiveReservation(tx, kostID, userID)
		if err != nil {
			return err
		}
		if dup {
			return fiber.NewError(fiber.StatusConflict, "Anda masih memiliki reservasi aktif di kost ini")
		}

		return tx.Create(&reservation).Error
	})
	if err != nil {
		return err
	}
	committed = true

	return helper.JsonCreated(c, "Reservasi berhasil diajukan",
		resDTO.ToReservationResponse(&reservation, kost.KostName, rc.Storage.PublicURL(proofKey)))
}

/* =========================================================
   ✅ APPROVE / ❌ REJECT — admin atau pengelola pemilik kost
========================================================= */

func (rc *ReservationController) UpdateReservationStatus(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input resDTO.UpdateReservationStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	reservation, err := resRepo.FindByID(rc.DB, id)
	if err != nil {
		return err
	}
	var kost kostModel.KostModel
	if err := rc.DB.First(&kost, "kost_id = ?", reservation.ReservationKostID).Error; err != nil {
		return err
	}
	if err := authz.CanModerateReservation(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}
	if err := resService.ValidateDecision(reservation.ReservationStatus, input.Status); err != nil {
		return err
	}

	now := time.Now().UTC()
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		var locked kostModel.KostModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "kost_id = ?", kost.KostID).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"reservation_status":       input.Status,
			"reservation_validated_by": actorID,
			"reservation_validated_at": now,
		}
		switch input.Status {
		case resModel.StatusApproved:
			// Kapasitas dicek ulang saat approve, bukan hanya saat pengajuan
			occupied, err := resRepo.CountOccupied(tx, locked.KostID)
			if err != nil {
				return err
			}
			if occupied >= int64(locked.KostTotalRooms) {
				return fiber.NewError(fiber.StatusConflict, "Kamar kost sudah penuh")
			}
			updates["reservation_rejection_reason"] = nil
		case resModel.StatusRejected:
			reason := resModel.DefaultRejectionReason
			if input.RejectionReason != nil && strings.TrimSpace(*input.RejectionReason) != "" {
				reason = strings.TrimSpace(*input.RejectionReason)
			}
			updates["reservation_rejection_reason"] = reason
			updates["reservation_occupancy"] = nil
		}

		res := tx.Model(&resModel.ReservationModel{}).
			Where("reservation_id = ? AND reservation_status = ?", reservation.ReservationID, resModel.StatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		// 0 baris = status sudah keburu diputuskan request lain
		return resService.EnsureDecisionApplied(res.RowsAffected)
	})
	if err != nil {
		return err
	}

	updated, err := resRepo.FindByID(rc.DB, id)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Status reservasi berhasil diperbarui",
		resDTO.ToReservationResponse(updated, kost.KostName, rc.Storage.PublicURL(updated.ReservationPaymentProof)))
}

/* =========================================================
   🔁 EXTEND — penghuni memperpanjang masa sewa
   Biaya tambahan pakai harga final kost SAAT INI.
========================================================= */

func (rc *ReservationController) ExtendReservation(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input resDTO.ExtendReservationRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	reservation, err := resRepo.FindByID(rc.DB, id)
	if err != nil {
		return err
	}
	if err := authz.CanActAsTenant(userID, reservation.ReservationUserID).Err(); err != nil {
		return err
	}
	if err := resService.ValidateExtendable(reservation, time.Now().UTC()); err != nil {
		return err
	}

	var kost kostModel.KostModel
	if err := rc.DB.First(&kost, "kost_id = ?", reservation.ReservationKostID).Error; err != nil {
		return err
	}

	// Bukti bayar perpanjangan
	fh, err := c.FormFile("payment_proof")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Bukti pembayaran wajib diupload")
	}
	tempKey, err := rc.Storage.SaveTempImage(fh)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File bukti pembayaran tidak valid")
	}
	proofKey, err := rc.Storage.MoveToPermanent(tempKey, proofCategory)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan bukti pembayaran")
	}
	committed := false
	defer func() {
		if !committed {
			_ = rc.Storage.Delete(proofKey)
		}
	}()

	ext := resService.ComputeExtension(reservation, kost.KostFinalMonthlyPrice, input.AddMonths)

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&resModel.ReservationModel{}).
			Where("reservation_id = ? AND reservation_status = ?", reservation.ReservationID, resModel.StatusApproved).
			Updates(map[string]any{
				"reservation_check_out":       ext.NewCheckOut,
				"reservation_duration_months": ext.NewDuration,
				"reservation_total_price":     ext.NewTotal,
				"reservation_payment_method":  input.PaymentMethod,
				"reservation_payment_proof":   proofKey,
				"reservation_note":            input.Note,
			})
		if res.Error != nil {
			return res.Error
		}
		return resService.EnsureExtensionApplied(res.RowsAffected)
	})
	if err != nil {
		return err
	}
	committed = true

	updated, err := resRepo.FindByID(rc.DB, id)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Reservasi berhasil diperpanjang", fiber.Map{
		"reservation":    resDTO.ToReservationResponse(updated, kost.KostName, rc.Storage.PublicURL(proofKey)),
		"additional_fee": ext.AdditionalFee,
	})
}

/* =========================================================
   📊 READ — dashboard penghuni & daftar per kost
   Sweep occupancy dijalankan dulu agar data yang dibaca segar.
========================================================= */

func (rc *ReservationController) GetMyReservations(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	if err := resRepo.SweepOccupancy(rc.DB); err != nil {
		return err
	}
	list, err := resRepo.ListByUser(rc.DB, userID)
	if err != nil {
		return err
	}

	kostNames, err := rc.kostNamesFor(list)
	if err != nil {
		return err
	}
	part := resService.PartitionReservations(list, dbtime.Today())

	return helper.JsonOK(c, "Dashboard reservasi berhasil diambil", fiber.Map{
		"upcoming": rc.toResponses(part.Upcoming, kostNames),
		"active":   rc.toResponses(part.Active, kostNames),
		"history":  rc.toResponses(part.History, kostNames),
	})
}

func (rc *ReservationController) GetReservationsByKost(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	kostID, err := helper.ParseUUIDParam(c, "kost_id")
	if err != nil {
		return err
	}
	var kost kostModel.KostModel
	if err := rc.DB.First(&kost, "kost_id = ?", kostID).Error; err != nil {
		return err
	}
	if err := authz.CanModerateReservation(role, actorID, kost.KostOwnerID).Err(); err != nil {
		return err
	}

	if err := resRepo.SweepOccupancy(rc.DB); err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	list, total, err := resRepo.ListByKost(rc.DB, kostID, status, paging.Limit, paging.Offset)
	if err != nil {
		return err
	}

	responses := make([]resDTO.ReservationResponse, 0, len(list))
	for i := range list {
		responses = append(responses,
			resDTO.ToReservationResponse(&list[i], kost.KostName, rc.Storage.PublicURL(list[i].ReservationPaymentProof)))
	}
	return helper.JsonList(c, "Daftar reservasi berhasil diambil", responses,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

func (rc *ReservationController) GetReservationByID(c *fiber.Ctx) error {
	actorID := helper.GetUserUUID(c)
	role := helper.GetUserRole(c)

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	reservation, err := resRepo.FindByID(rc.DB, id)
	if err != nil {
		return err
	}
	var kost kostModel.KostModel
	if err := rc.DB.First(&kost, "kost_id = ?", reservation.ReservationKostID).Error; err != nil {
		return err
	}

	// Boleh dilihat pemesan sendiri, pemilik kost, atau admin
	if authz.CanActAsTenant(actorID, reservation.ReservationUserID).Err() != nil {
		if err := authz.CanModerateReservation(role, actorID, kost.KostOwnerID).Err(); err != nil {
			return err
		}
	}

	return helper.JsonOK(c, "Detail reservasi berhasil diambil",
		resDTO.ToReservationResponse(reservation, kost.KostName, rc.Storage.PublicURL(reservation.ReservationPaymentProof)))
}

/* ===== util kecil ===== */

func (rc *ReservationController) kostNamesFor(list []resModel.ReservationModel) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(list))
	seen := map[uuid.UUID]bool{}
	for i := range list {
		if !seen[list[i].ReservationKostID] {
			seen[list[i].ReservationKostID] = true
			ids = append(ids, list[i].ReservationKostID)
		}
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var kosts []kostModel.KostModel
	if err := rc.DB.Select("kost_id", "kost_name").Where("kost_id IN ?", ids).Find(&kosts).Error; err != nil {
		return nil, err
	}
	for i := range kosts {
		names[kosts[i].KostID] = kosts[i].KostName
	}
	return names, nil
}

func (rc *ReservationController) toResponses(list []resModel.ReservationModel, names map[uuid.UUID]string) []resDTO.ReservationResponse {
	out := make([]resDTO.ReservationResponse, 0, len(list))
	for i := range list {
		out = append(out, resDTO.ToReservationResponse(&list[i],
			names[list[i].ReservationKostID],
			rc.Storage.PublicURL(list[i].ReservationPaymentProof)))
	}
	return out
}
