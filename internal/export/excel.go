package export

import (
	"fmt"

	"resortfront/internal/upstream"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

var headers = []string{"Booking ID", "User", "Resort", "Check-in", "Check-out", "Guests", "Status"}

// BookingsWorkbook renders bookings into a spreadsheet, one row per
// booking, header row styled.
func BookingsWorkbook(bookings []upstream.Booking) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		headerStyle = 0
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, h)
		if headerStyle != 0 {
			f.SetCellStyle(sheetName, cell, cell, headerStyle)
		}
	}

	for i, b := range bookings {
		row := i + 2
		values := []any{
			b.ID,
			b.User.Email,
			b.Resort.Name,
			b.CheckInDate,
			b.CheckOutDate,
			b.NumberOfGuests,
			b.Status.Title(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	return f, nil
}
