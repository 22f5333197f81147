package upstream

import (
	"resortfront/internal/booking"
	"resortfront/internal/resort"
)

// User is the authenticated identity as the booking API reports it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MenuEntry is a server-declared navigable path. The server decides the
// navigation surface per role; the portal renders it verbatim.
type MenuEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  User        `json:"user"`
	Menus []MenuEntry `json:"menus"`
}

type pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

type resortListResponse struct {
	Data       []resort.Resort `json:"data"`
	Pagination pagination      `json:"pagination"`
}

type bookingListResponse struct {
	Data       []Booking  `json:"data"`
	Pagination pagination `json:"pagination"`
}

type BookingUser struct {
	Email string `json:"email"`
}

type BookingResort struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Booking struct {
	ID             string         `json:"_id"`
	User           BookingUser    `json:"user"`
	Resort         BookingResort  `json:"resort"`
	CheckInDate    string         `json:"checkInDate"`
	CheckOutDate   string         `json:"checkOutDate"`
	NumberOfGuests int            `json:"numberOfGuests"`
	Status         booking.Status `json:"status"`
}

// BookingInput deliberately has no status field: the server creates
// every booking pending, whatever the client asks.
type BookingInput struct {
	Resort         string `json:"resort"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	NumberOfGuests int    `json:"numberOfGuests"`
}

type ResortInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Image       string          `json:"image"`
	Gallery     []string        `json:"gallery,omitempty"`
	Pool        bool            `json:"pool"`
	Turf        bool            `json:"turf"`
	Facilities  map[string]bool `json:"facilities,omitempty"`
}
