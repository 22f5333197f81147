package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"resortfront/internal/booking"
	"resortfront/internal/paging"
)

func (c *Client) CreateBooking(ctx context.Context, token string, in BookingInput) error {
	_, err := c.doJSON(ctx, "create_booking", http.MethodPost, "/bookings", token, in, nil)
	return err
}

// ListBookings fetches one page of all bookings (administrator view).
// statusFilter narrows by lifecycle state; empty means every status.
func (c *Client) ListBookings(ctx context.Context, token string, cur paging.Cursor, statusFilter string) ([]Booking, paging.Cursor, error) {
	return c.listBookings(ctx, "list_bookings", "/bookings", token, cur, statusFilter)
}

// MyBookings fetches one page of the caller's own bookings.
func (c *Client) MyBookings(ctx context.Context, token string, cur paging.Cursor, statusFilter string) ([]Booking, paging.Cursor, error) {
	return c.listBookings(ctx, "my_bookings", "/bookings/my", token, cur, statusFilter)
}

func (c *Client) listBookings(ctx context.Context, op, path, token string, cur paging.Cursor, statusFilter string) ([]Booking, paging.Cursor, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(cur.Limit))
	q.Set("skip", fmt.Sprint(cur.Skip()))
	if statusFilter != "" {
		q.Set("status", statusFilter)
	}

	var res bookingListResponse
	_, err := c.doJSON(ctx, op, http.MethodGet, path+"?"+q.Encode(), token, nil, &res)
	if err != nil {
		return nil, cur, err
	}
	return res.Data, cur.WithPages(res.Pagination.Pages), nil
}

type statusRequest struct {
	Status booking.Status `json:"status"`
}

// SetBookingStatus issues the administrator's decision over a pending
// booking. Callers re-fetch the list afterwards; the server state is
// authoritative and nothing is mutated locally.
func (c *Client) SetBookingStatus(ctx context.Context, token, id string, status booking.Status) error {
	_, err := c.doJSON(ctx, "set_booking_status", http.MethodPatch,
		"/bookings/"+url.PathEscape(id)+"/status", token, statusRequest{Status: status}, nil)
	return err
}
