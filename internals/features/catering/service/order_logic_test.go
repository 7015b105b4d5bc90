package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	cateringModel "kostku_backend/internals/features/catering/model"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("bukan *fiber.Error: %v", err)
	}
	return fe.Code
}

func makeMenu(cateringID uuid.UUID, name string, price int64, available bool) cateringModel.CateringMenuModel {
	return cateringModel.CateringMenuModel{
		CateringMenuID:          uuid.New(),
		CateringMenuCateringID:  cateringID,
		CateringMenuName:        name,
		CateringMenuPrice:       price,
		CateringMenuIsAvailable: available,
	}
}

func TestBuildOrderItemsTotals(t *testing.T) {
	cateringID := uuid.New()
	nasi := makeMenu(cateringID, "Nasi Ayam", 15_000, true)
	es := makeMenu(cateringID, "Es Teh", 5_000, true)

	build, err := BuildOrderItems(
		[]OrderItemRequest{
			{MenuID: nasi.CateringMenuID, Quantity: 2},
			{MenuID: es.CateringMenuID, Quantity: 3},
		},
		[]cateringModel.CateringMenuModel{nasi, es},
	)
	if err != nil {
		t.Fatalf("BuildOrderItems error: %v", err)
	}

	// 2×15rb + 3×5rb = 45rb, harga diambil dari menu, bukan client
	if build.Total != 45_000 {
		t.Errorf("Total = %d, want 45000", build.Total)
	}
	if build.CateringID != cateringID {
		t.Errorf("CateringID salah")
	}
	if len(build.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(build.Items))
	}
	if build.Items[0].CateringOrderItemUnitPrice != 15_000 ||
		build.Items[0].CateringOrderItemSubtotal != 30_000 {
		t.Errorf("item pertama: unit=%d subtotal=%d",
			build.Items[0].CateringOrderItemUnitPrice, build.Items[0].CateringOrderItemSubtotal)
	}
}

func TestBuildOrderItemsMissingMenu(t *testing.T) {
	cateringID := uuid.New()
	nasi := makeMenu(cateringID, "Nasi Ayam", 15_000, true)
	ghost := uuid.New()

	_, err := BuildOrderItems(
		[]OrderItemRequest{
			{MenuID: nasi.CateringMenuID, Quantity: 1},
			{MenuID: ghost, Quantity: 1},
		},
		[]cateringModel.CateringMenuModel{nasi},
	)
	if err == nil {
		t.Fatal("menu hilang harus error")
	}
	if fiberCode(t, err) != fiber.StatusNotFound {
		t.Errorf("menu hilang harus 404, got %d", fiberCode(t, err))
	}
	// id yang hilang harus disebut di pesan
	if !strings.Contains(err.Error(), ghost.String()) {
		t.Errorf("pesan error tidak menyebut id yang hilang: %v", err)
	}
}

func TestBuildOrderItemsMixedProviders(t *testing.T) {
	a := makeMenu(uuid.New(), "Menu A", 10_000, true)
	b := makeMenu(uuid.New(), "Menu B", 10_000, true)

	_, err := BuildOrderItems(
		[]OrderItemRequest{
			{MenuID: a.CateringMenuID, Quantity: 1},
			{MenuID: b.CateringMenuID, Quantity: 1},
		},
		[]cateringModel.CateringMenuModel{a, b},
	)
	if err == nil {
		t.Fatal("dua penyedia dalam satu pesanan harus ditolak")
	}
	if fiberCode(t, err) != fiber.StatusBadRequest {
		t.Errorf("lintas penyedia harus 400, got %d", fiberCode(t, err))
	}
}

func TestBuildOrderItemsUnavailableMenu(t *testing.T) {
	cateringID := uuid.New()
	habis := makeMenu(cateringID, "Menu Habis", 10_000, false)

	_, err := BuildOrderItems(
		[]OrderItemRequest{{MenuID: habis.CateringMenuID, Quantity: 1}},
		[]cateringModel.CateringMenuModel{habis},
	)
	if err == nil {
		t.Fatal("menu nonaktif harus ditolak")
	}
	// menu nonaktif diperlakukan sama dengan menu hilang
	if fiberCode(t, err) != fiber.StatusNotFound {
		t.Errorf("menu nonaktif harus 404, got %d", fiberCode(t, err))
	}
	if !strings.Contains(err.Error(), habis.CateringMenuID.String()) {
		t.Errorf("pesan error tidak menyebut id menu nonaktif: %v", err)
	}
}

func TestBuildOrderItemsMissingBeatsCrossProvider(t *testing.T) {
	a := makeMenu(uuid.New(), "Menu A", 10_000, true)
	b := makeMenu(uuid.New(), "Menu B", 10_000, true)
	ghost := uuid.New()

	// ada id hilang DAN item lintas penyedia: 404 yang menang
	_, err := BuildOrderItems(
		[]OrderItemRequest{
			{MenuID: a.CateringMenuID, Quantity: 1},
			{MenuID: ghost, Quantity: 1},
			{MenuID: b.CateringMenuID, Quantity: 1},
		},
		[]cateringModel.CateringMenuModel{a, b},
	)
	if err == nil {
		t.Fatal("harus error")
	}
	if fiberCode(t, err) != fiber.StatusNotFound {
		t.Errorf("id hilang harus menang sebagai 404, got %d", fiberCode(t, err))
	}
	if !strings.Contains(err.Error(), ghost.String()) {
		t.Errorf("pesan error tidak menyebut id yang hilang: %v", err)
	}
}

func TestBuildOrderItemsEmpty(t *testing.T) {
	if _, err := BuildOrderItems(nil, nil); err == nil {
		t.Error("pesanan kosong harus ditolak")
	}
}

func TestValidateStatusTransition(t *testing.T) {
	valid := []struct{ from, to string }{
		{cateringModel.OrderStatusPending, cateringModel.OrderStatusDiterima},
		{cateringModel.OrderStatusDiterima, cateringModel.OrderStatusDiproses},
		{cateringModel.OrderStatusDiproses, cateringModel.OrderStatusSelesai},
		{cateringModel.OrderStatusPending, cateringModel.OrderStatusSelesai}, // lompat maju boleh
	}
	for _, tt := range valid {
		if err := ValidateStatusTransition(tt.from, tt.to); err != nil {
			t.Errorf("%s → %s harus boleh: %v", tt.from, tt.to, err)
		}
	}

	invalid := []struct{ from, to string }{
		{cateringModel.OrderStatusDiproses, cateringModel.OrderStatusDiterima}, // mundur
		{cateringModel.OrderStatusSelesai, cateringModel.OrderStatusSelesai},   // diam di tempat
		{cateringModel.OrderStatusDibatalkan, cateringModel.OrderStatusDiterima},
		{cateringModel.OrderStatusPending, "DIAMBIL"}, // status laundry, bukan katering
	}
	for _, tt := range invalid {
		if err := ValidateStatusTransition(tt.from, tt.to); err == nil {
			t.Errorf("%s → %s harus ditolak", tt.from, tt.to)
		}
	}
}

func TestValidateCancellation(t *testing.T) {
	if err := ValidateCancellation(cateringModel.OrderStatusPending); err != nil {
		t.Errorf("cancel dari PENDING harus boleh: %v", err)
	}

	// katering: begitu DITERIMA sudah tidak bisa batal
	for _, status := range []string{
		cateringModel.OrderStatusDiterima,
		cateringModel.OrderStatusDiproses,
		cateringModel.OrderStatusSelesai,
		cateringModel.OrderStatusDibatalkan,
	} {
		if err := ValidateCancellation(status); err == nil {
			t.Errorf("cancel dari %s harus ditolak", status)
		}
	}
}
