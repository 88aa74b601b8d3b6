package listquery_test

import (
	"net/url"
	"testing"

	"hr-dashboard/internal/shared/listquery"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Defaults(t *testing.T) {
	q := listquery.Normalize(listquery.Raw{})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "createdAt", q.SortBy)
	assert.Equal(t, "desc", q.SortOrder)
	assert.Empty(t, q.Search)
}

func TestNormalize_MalformedPageAndLimit(t *testing.T) {
	cases := []struct {
		name  string
		page  string
		limit string
	}{
		{"non numeric", "abc", "xyz"},
		{"negative", "-3", "-1"},
		{"zero", "0", "0"},
		{"absent", "", ""},
		{"float", "1.5", "2.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := listquery.Normalize(listquery.Raw{Page: tc.page, Limit: tc.limit})
			assert.Equal(t, 1, q.Page)
			assert.Equal(t, 10, q.Limit)
		})
	}
}

func TestNormalize_ValidValuesPassThrough(t *testing.T) {
	q := listquery.Normalize(listquery.Raw{
		Page:      "3",
		Limit:     "25",
		SortBy:    "firstName",
		SortOrder: "asc",
		Search:    "  jane ",
	})

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "firstName", q.SortBy)
	assert.Equal(t, "asc", q.SortOrder)
	assert.Equal(t, "jane", q.Search)
}

func TestNormalize_SortOrderMustBeExact(t *testing.T) {
	for _, bad := range []string{"ASC", "descending", "up", "", "Desc"} {
		q := listquery.Normalize(listquery.Raw{SortOrder: bad})
		assert.Equal(t, "desc", q.SortOrder, "sortOrder %q should fall back to desc", bad)
	}
}

func TestValues_OmitsBlankSearch(t *testing.T) {
	for _, blank := range []string{"", "   ", "\t\n"} {
		q := listquery.Normalize(listquery.Raw{Search: blank})
		v := q.Values()

		_, present := v["search"]
		assert.False(t, present, "search %q should be omitted entirely", blank)
	}
}

func TestValues_IncludesTrimmedSearch(t *testing.T) {
	q := listquery.Normalize(listquery.Raw{Search: " doe "})
	v := q.Values()

	assert.Equal(t, "doe", v.Get("search"))
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "10", v.Get("limit"))
	assert.Equal(t, "createdAt", v.Get("sortBy"))
	assert.Equal(t, "desc", v.Get("sortOrder"))
}

func TestFromValues_RoundTrip(t *testing.T) {
	v := url.Values{}
	v.Set("page", "2")
	v.Set("limit", "20")
	v.Set("sortOrder", "asc")

	q := listquery.Normalize(listquery.FromValues(v))

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, "asc", q.SortOrder)
}
