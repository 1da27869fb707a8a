package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

func makeLeads(n int) []entity.Lead {
	leads := make([]entity.Lead, n)
	for i := range leads {
		leads[i] = entity.Lead{ID: int64(i + 1)}
	}
	return leads
}

func TestPaginateEmptyCollectionStillHasOnePage(t *testing.T) {
	items, totalPages := PaginateLeads(nil, 10, 1)

	assert.Empty(t, items)
	assert.Equal(t, 1, totalPages)
}

func TestPaginateSlicesFixedPages(t *testing.T) {
	leads := makeLeads(25)

	first, totalPages := PaginateLeads(leads, 10, 1)
	assert.Equal(t, 3, totalPages)
	assert.Len(t, first, 10)
	assert.Equal(t, int64(1), first[0].ID)
	assert.Equal(t, int64(10), first[9].ID)

	last, _ := PaginateLeads(leads, 10, 3)
	assert.Len(t, last, 5)
	assert.Equal(t, int64(21), last[0].ID)
	assert.Equal(t, int64(25), last[4].ID)
}

func TestPaginateExactMultiple(t *testing.T) {
	leads := makeLeads(20)

	_, totalPages := PaginateLeads(leads, 10, 1)
	assert.Equal(t, 2, totalPages)
}

func TestTotalPagesNeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}
