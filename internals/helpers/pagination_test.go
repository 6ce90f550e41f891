package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookColumns = map[string]string{
	"price":      "book_price_idr",
	"created_at": "book_created_at",
}

func TestSafeOrderClause(t *testing.T) {
	p := Params{SortBy: "price", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(bookColumns, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "book_price_idr ASC", clause)
}

func TestSafeOrderClause_DefaultDesc(t *testing.T) {
	p := Params{SortBy: "price"}
	clause, err := p.SafeOrderClause(bookColumns, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "book_price_idr DESC", clause)
}

func TestSafeOrderClause_KolomAsingJatuhKeDefault(t *testing.T) {
	// kolom di luar whitelist tidak boleh bocor ke SQL
	p := Params{SortBy: "book_price_idr; DROP TABLE books", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(bookColumns, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "book_created_at ASC", clause)
}

func TestSafeOrderClause_TanpaDefaultValid(t *testing.T) {
	p := Params{SortBy: "siapa"}
	_, err := p.SafeOrderClause(bookColumns, "juga-tidak-ada")
	require.Error(t, err)
}

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestBuildPagination(t *testing.T) {
	p := Params{Page: 2, PerPage: 10}
	pg := BuildPagination(35, p)

	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 10, pg.PerPage)
	assert.Equal(t, int64(35), pg.Total)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
}

func TestBuildPagination_Kosong(t *testing.T) {
	pg := BuildPagination(0, Params{Page: 1, PerPage: 10})

	assert.Zero(t, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestBuildPagination_HalamanTerakhir(t *testing.T) {
	pg := BuildPagination(30, Params{Page: 3, PerPage: 10})

	assert.Equal(t, 3, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
}
