package listquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "desc"
)

// Raw menampung query param mentah persis seperti yang diterima; semua string
// karena belum tentu valid.
type Raw struct {
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
	Search    string
}

// Query adalah hasil normalisasi: selalu bounded, tidak pernah invalid.
type Query struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string // sudah di-trim; "" berarti tidak ada search
}

func FromGin(c *gin.Context) Raw {
	return Raw{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Search:    c.Query("search"),
	}
}

func FromValues(v url.Values) Raw {
	return Raw{
		Page:      v.Get("page"),
		Limit:     v.Get("limit"),
		SortBy:    v.Get("sortBy"),
		SortOrder: v.Get("sortOrder"),
		Search:    v.Get("search"),
	}
}

// Normalize tidak pernah gagal: input rusak diam-diam jatuh ke default agar
// bad input tidak pernah memblokir list view.
func Normalize(raw Raw) Query {
	q := Query{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}

	if page, err := strconv.Atoi(raw.Page); err == nil && page >= 1 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(raw.Limit); err == nil && limit >= 1 {
		q.Limit = limit
	}
	if raw.SortBy != "" {
		q.SortBy = raw.SortBy
	}
	if raw.SortOrder == "asc" || raw.SortOrder == "desc" {
		q.SortOrder = raw.SortOrder
	}
	q.Search = strings.TrimSpace(raw.Search)

	return q
}

// Values membangun query param untuk outgoing request.
// search kosong tidak pernah dikirim, bahkan sebagai string kosong.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("sortBy", q.SortBy)
	v.Set("sortOrder", q.SortOrder)
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}
