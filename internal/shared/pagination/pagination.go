package pagination

import "strconv"

const windowMax = 7

// Entry adalah satu slot pada pagination bar: nomor halaman atau ellipsis.
type Entry struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func pageEntry(p int) Entry { return Entry{Page: p} }

func ellipsisEntry() Entry { return Entry{Ellipsis: true} }

func (e Entry) IsPage() bool { return !e.Ellipsis }

func (e Entry) String() string {
	if e.Ellipsis {
		return "..."
	}
	return strconv.Itoa(e.Page)
}

// TotalPages tidak pernah mengembalikan 0 agar "page 1 of 1" tetap
// well-defined untuk result set kosong.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		return 1
	}
	return pages
}

// Window menghasilkan deretan nomor halaman yang ditampilkan, dikompresi
// dengan ellipsis. Entry numerik selalu strictly increasing tanpa duplikat.
func Window(current, totalPages int) []Entry {
	entries := make([]Entry, 0, windowMax+2)

	if totalPages <= windowMax {
		for i := 1; i <= totalPages; i++ {
			entries = append(entries, pageEntry(i))
		}
		return entries
	}

	// Halaman pertama selalu tampil
	entries = append(entries, pageEntry(1))

	if current > 3 {
		entries = append(entries, ellipsisEntry())
	}

	start := current - 1
	if start < 2 {
		start = 2
	}
	end := current + 1
	if end > totalPages-1 {
		end = totalPages - 1
	}
	for i := start; i <= end; i++ {
		entries = append(entries, pageEntry(i))
	}

	if current < totalPages-2 {
		entries = append(entries, ellipsisEntry())
	}

	// Halaman terakhir selalu tampil
	if totalPages > 1 {
		entries = append(entries, pageEntry(totalPages))
	}

	return entries
}

// ClampPrev: previous di halaman 1 adalah no-op, bukan error.
func ClampPrev(current int) int {
	if current <= 1 {
		return 1
	}
	return current - 1
}

// ClampNext: next di halaman terakhir adalah no-op, bukan error.
func ClampNext(current, totalPages int) int {
	if current >= totalPages {
		return totalPages
	}
	return current + 1
}

// Meta adalah blok pagination yang dikirim bersama list view state.
type Meta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
}

func NewMeta(total int64, page, limit int) Meta {
	return Meta{
		Total:      total,
		TotalPages: TotalPages(total, limit),
		Page:       page,
		Limit:      limit,
	}
}
