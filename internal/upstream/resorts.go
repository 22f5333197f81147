package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"resortfront/internal/paging"
	"resortfront/internal/resort"
)

// ListResorts fetches one catalog page. The cursor's page/limit are
// translated to the API's limit/skip pair; the returned cursor carries
// the authoritative page count from the response.
func (c *Client) ListResorts(ctx context.Context, token string, cur paging.Cursor) ([]resort.Resort, paging.Cursor, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(cur.Limit))
	q.Set("skip", fmt.Sprint(cur.Skip()))

	var res resortListResponse
	_, err := c.doJSON(ctx, "list_resorts", http.MethodGet, "/resorts?"+q.Encode(), token, nil, &res)
	if err != nil {
		return nil, cur, err
	}
	return res.Data, cur.WithPages(res.Pagination.Pages), nil
}

func (c *Client) CreateResort(ctx context.Context, token string, in ResortInput) error {
	_, err := c.doJSON(ctx, "create_resort", http.MethodPost, "/resorts", token, in, nil)
	return err
}

func (c *Client) UpdateResort(ctx context.Context, token, id string, in ResortInput) error {
	_, err := c.doJSON(ctx, "update_resort", http.MethodPut, "/resorts/"+url.PathEscape(id), token, in, nil)
	return err
}

func (c *Client) DeleteResort(ctx context.Context, token, id string) error {
	_, err := c.doJSON(ctx, "delete_resort", http.MethodDelete, "/resorts/"+url.PathEscape(id), token, nil, nil)
	return err
}
