package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 20, 45)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 45, p.Total)

	p = NewPagination(3, 20, 45)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 3, p.Pages)

	p = NewPagination(1, 20, 0)
	assert.Equal(t, 0, p.Pages)

	p = NewPagination(1, 20, 20)
	assert.Equal(t, 1, p.Pages)

	p = NewPagination(0, 0, 10)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestNewPageEncodesEmptySlice(t *testing.T) {
	page := NewPage[int](nil, 1, 20, 0)
	require.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
}

func TestPageParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/transactions?page=3&limit=10", nil)
	page, limit := PageParams(r)
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, limit)

	r = httptest.NewRequest("GET", "/api/transactions", nil)
	page, limit = PageParams(r)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)

	r = httptest.NewRequest("GET", "/api/transactions?page=-2&limit=abc", nil)
	page, limit = PageParams(r)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)
}
