package paging

// Cursor is the transient pagination state for a single list view. It is
// recomputed from every list response and never persisted.
type Cursor struct {
	Page  int
	Limit int
	Pages int
}

func New(page, limit int) Cursor {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return Cursor{Page: page, Limit: limit, Pages: 1}
}

// Skip is the offset sent to the upstream API for the current page.
func (c Cursor) Skip() int {
	return (c.Page - 1) * c.Limit
}

// WithPages returns the cursor updated from a list response.
func (c Cursor) WithPages(pages int) Cursor {
	if pages < 1 {
		pages = 1
	}
	c.Pages = pages
	return c
}

// WithFilter resets the cursor to the first page when the status filter
// changes. Narrowing the result set must not leave the view on an
// out-of-range page.
func (c Cursor) WithFilter(oldFilter, newFilter string) Cursor {
	if oldFilter != newFilter {
		c.Page = 1
	}
	return c
}

func (c Cursor) HasPrev() bool {
	return c.Page > 1
}

func (c Cursor) HasNext() bool {
	return c.Page < c.Pages
}

func (c Cursor) Prev() int {
	if c.Page <= 1 {
		return 1
	}
	return c.Page - 1
}

func (c Cursor) Next() int {
	if c.Page >= c.Pages {
		return c.Pages
	}
	return c.Page + 1
}
