package domain

// Pagination is the page metadata computed for a listing response.
// Pure arithmetic over (page, limit, total); nothing here touches a store.
type Pagination struct {
	// Page is the 1-based page number of this result
	Page int `json:"page"`

	// Limit is the page size that was applied
	Limit int `json:"limit"`

	// Total is the number of tours matching the filter before pagination
	Total int64 `json:"total"`

	// TotalPages is ceil(Total/Limit), or 0 when Total is 0
	TotalPages int `json:"totalPages"`

	// HasNext reports whether a later page exists
	HasNext bool `json:"hasNext"`

	// HasPrev reports whether an earlier page exists
	HasPrev bool `json:"hasPrev"`
}

// NewPagination computes page metadata from the requested page, the page
// size, and the total match count.
//
// A page beyond TotalPages is not an error: the store returns an empty
// page and HasPrev may still be true while the result set is empty.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// TourPage is one page of discovery results with its pagination metadata.
type TourPage struct {
	// Tours is the page of matching tours, in sort order
	Tours []Tour `json:"tours"`

	// Pagination describes the page within the full result set
	Pagination Pagination `json:"pagination"`
}
