package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	laundryModel "kostku_backend/internals/features/laundry/model"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("bukan *fiber.Error: %v", err)
	}
	return fe.Code
}

func makePrice(laundryID uuid.UUID, name string, price int64, available bool) laundryModel.LaundryPriceModel {
	return laundryModel.LaundryPriceModel{
		LaundryPriceID:          uuid.New(),
		LaundryPriceLaundryID:   laundryID,
		LaundryPriceServiceName: name,
		LaundryPriceUnitID:      uuid.New(),
		LaundryPricePrice:       price,
		LaundryPriceIsAvailable: available,
	}
}

func TestBuildOrderItems(t *testing.T) {
	laundryID := uuid.New()
	cuci := makePrice(laundryID, "Cuci Kering", 7_000, true)
	setrika := makePrice(laundryID, "Setrika", 4_000, true)

	build, err := BuildOrderItems(
		[]OrderItemRequest{
			{PriceID: cuci.LaundryPriceID, Quantity: 3},
			{PriceID: setrika.LaundryPriceID, Quantity: 2},
		},
		[]laundryModel.LaundryPriceModel{cuci, setrika},
	)
	if err != nil {
		t.Fatalf("BuildOrderItems error: %v", err)
	}
	// 3×7rb + 2×4rb = 29rb
	if build.Total != 29_000 {
		t.Errorf("Total = %d, want 29000", build.Total)
	}
	if build.LaundryID != laundryID {
		t.Error("LaundryID salah")
	}
	if build.Items[1].LaundryOrderItemSubtotal != 8_000 {
		t.Errorf("subtotal item kedua = %d, want 8000", build.Items[1].LaundryOrderItemSubtotal)
	}
}

func TestBuildOrderItemsMissingPrice(t *testing.T) {
	laundryID := uuid.New()
	cuci := makePrice(laundryID, "Cuci Kering", 7_000, true)

	_, err := BuildOrderItems(
		[]OrderItemRequest{
			{PriceID: cuci.LaundryPriceID, Quantity: 1},
			{PriceID: uuid.New(), Quantity: 1},
		},
		[]laundryModel.LaundryPriceModel{cuci},
	)
	if err == nil {
		t.Fatal("layanan hilang harus error")
	}
	if fiberCode(t, err) != fiber.StatusNotFound {
		t.Errorf("layanan hilang harus 404, got %d", fiberCode(t, err))
	}
}

func TestBuildOrderItemsUnavailablePrice(t *testing.T) {
	laundryID := uuid.New()
	tutup := makePrice(laundryID, "Cuci Karpet", 25_000, false)

	_, err := BuildOrderItems(
		[]OrderItemRequest{{PriceID: tutup.LaundryPriceID, Quantity: 1}},
		[]laundryModel.LaundryPriceModel{tutup},
	)
	if err == nil {
		t.Fatal("layanan nonaktif harus ditolak")
	}
	// layanan nonaktif diperlakukan sama dengan layanan hilang
	if fiberCode(t, err) != fiber.StatusNotFound {
		t.Errorf("layanan nonaktif harus 404, got %d", fiberCode(t, err))
	}
}

func TestBuildOrderItemsMixedProviders(t *testing.T) {
	a := makePrice(uuid.New(), "Cuci A", 7_000, true)
	b := makePrice(uuid.New(), "Cuci B", 7_000, true)

	_, err := BuildOrderItems(
		[]OrderItemRequest{
			{PriceID: a.LaundryPriceID, Quantity: 1},
			{PriceID: b.LaundryPriceID, Quantity: 1},
		},
		[]laundryModel.LaundryPriceModel{a, b},
	)
	if err == nil {
		t.Fatal("dua penyedia dalam satu pesanan harus ditolak")
	}
	if fiberCode(t, err) != fiber.StatusBadRequest {
		t.Errorf("lintas penyedia harus 400, got %d", fiberCode(t, err))
	}
}

func TestValidateStatusTransition(t *testing.T) {
	valid := []struct{ from, to string }{
		{laundryModel.OrderStatusPending, laundryModel.OrderStatusDiterima},
		{laundryModel.OrderStatusSelesai, laundryModel.OrderStatusDiambil},
		{laundryModel.OrderStatusDiterima, laundryModel.OrderStatusSelesai},
	}
	for _, tt := range valid {
		if err := ValidateStatusTransition(tt.from, tt.to); err != nil {
			t.Errorf("%s → %s harus boleh: %v", tt.from, tt.to, err)
		}
	}

	invalid := []struct{ from, to string }{
		{laundryModel.OrderStatusDiambil, laundryModel.OrderStatusSelesai},
		{laundryModel.OrderStatusDibatalkan, laundryModel.OrderStatusDiterima},
		{laundryModel.OrderStatusDiterima, laundryModel.OrderStatusDiterima},
	}
	for _, tt := range invalid {
		if err := ValidateStatusTransition(tt.from, tt.to); err == nil {
			t.Errorf("%s → %s harus ditolak", tt.from, tt.to)
		}
	}
}

func TestValidateCancellation(t *testing.T) {
	// laundry: jendela cancel lebih longgar — PENDING dan DITERIMA
	for _, status := range []string{
		laundryModel.OrderStatusPending,
		laundryModel.OrderStatusDiterima,
	} {
		if err := ValidateCancellation(status); err != nil {
			t.Errorf("cancel dari %s harus boleh: %v", status, err)
		}
	}

	for _, status := range []string{
		laundryModel.OrderStatusDiproses,
		laundryModel.OrderStatusSelesai,
		laundryModel.OrderStatusDiambil,
		laundryModel.OrderStatusDibatalkan,
	} {
		if err := ValidateCancellation(status); err == nil {
			t.Errorf("cancel dari %s harus ditolak", status)
		}
	}
}
