package gateway

import (
	"hr-dashboard/internal/client"
	"hr-dashboard/internal/shared/pagination"
)

// ListViewState adalah seluruh state yang dibutuhkan halaman list dalam
// satu response: records, meta pagination, window halaman, dan query
// yang sedang aktif supaya UI bisa me-render ulang tanpa state lokal.
type ListViewState struct {
	Records    []client.Employee `json:"records"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	PrevPage   int               `json:"prevPage"`
	NextPage   int               `json:"nextPage"`
	Pages      []string          `json:"pages"`
	SortBy     string            `json:"sortBy"`
	SortOrder  string            `json:"sortOrder"`
	Search     string            `json:"search,omitempty"`
}

// DetailViewState membedakan found vs not-found secara eksplisit;
// halaman detail tidak pernah melihat error mentah.
type DetailViewState struct {
	Found    bool             `json:"found"`
	Employee *client.Employee `json:"employee,omitempty"`
}

// CreateViewState adalah hasil submit form create: kalau fieldErrors
// terisi, form tetap di tempat dan menandai field bermasalah.
type CreateViewState struct {
	Created     bool              `json:"created"`
	Employee    *client.Employee  `json:"employee,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Error       string            `json:"error,omitempty"`
}

func NewListViewState(result client.ListResult, sortBy, sortOrder, search string) ListViewState {
	totalPages := pagination.TotalPages(result.Total, result.Limit)

	window := pagination.Window(result.Page, totalPages)
	pages := make([]string, 0, len(window))
	for _, entry := range window {
		pages = append(pages, entry.String())
	}

	return ListViewState{
		Records:    result.Records,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: totalPages,
		PrevPage:   pagination.ClampPrev(result.Page),
		NextPage:   pagination.ClampNext(result.Page, totalPages),
		Pages:      pages,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
		Search:     search,
	}
}
