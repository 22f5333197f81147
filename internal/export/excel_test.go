package export

import (
	"testing"

	"resortfront/internal/booking"
	"resortfront/internal/upstream"
)

func TestBookingsWorkbook(t *testing.T) {
	bookings := []upstream.Booking{
		{
			ID:             "b1",
			User:           upstream.BookingUser{Email: "user@example.com"},
			Resort:         upstream.BookingResort{ID: "r1", Name: "Lakeview"},
			CheckInDate:    "2026-09-01",
			CheckOutDate:   "2026-09-05",
			NumberOfGuests: 2,
			Status:         booking.StatusPending,
		},
		{
			ID:     "b2",
			User:   upstream.BookingUser{Email: "other@example.com"},
			Resort: upstream.BookingResort{ID: "r2", Name: "Hillside"},
			Status: booking.StatusConfirmed,
		},
	}

	f, err := BookingsWorkbook(bookings)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue(sheetName, "A1")
	if err != nil || got != "Booking ID" {
		t.Fatalf("A1 = %q, err %v", got, err)
	}
	got, _ = f.GetCellValue(sheetName, "B2")
	if got != "user@example.com" {
		t.Fatalf("B2 = %q", got)
	}
	got, _ = f.GetCellValue(sheetName, "C3")
	if got != "Hillside" {
		t.Fatalf("C3 = %q", got)
	}
	got, _ = f.GetCellValue(sheetName, "G2")
	if got != "Pending" {
		t.Fatalf("G2 = %q", got)
	}
	got, _ = f.GetCellValue(sheetName, "G3")
	if got != "Confirmed" {
		t.Fatalf("G3 = %q", got)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
}

func TestBookingsWorkbookEmpty(t *testing.T) {
	f, err := BookingsWorkbook(nil)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
