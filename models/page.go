package models

// Page is one slice of a paginated backend listing. Endpoints that answer
// with a bare JSON array are represented as a single, last page.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Last          bool  `json:"last"`
}

// PageRequest selects a page of a listing. Page numbers start at zero.
type PageRequest struct {
	Page int
	Size int
}

// Next returns the request for the page following r.
func (r PageRequest) Next() PageRequest {
	return PageRequest{Page: r.Page + 1, Size: r.Size}
}
