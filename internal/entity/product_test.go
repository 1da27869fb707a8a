package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProductStartsActiveWithID(t *testing.T) {
	p := NewProduct("Auto", "dimarzio-auto")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Auto", p.Name)
	assert.Equal(t, "dimarzio-auto", p.Slug)
	assert.True(t, p.Active)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCatalogDisplayNameFallsBack(t *testing.T) {
	catalog := Catalog{
		{Slug: "dimarzio-auto", Name: "Auto"},
		{Slug: "dimarzio-vida", Name: "Vida"},
	}

	assert.Equal(t, "Vida", catalog.DisplayName("dimarzio-vida", "Dimarzio Seguros"))
	assert.Equal(t, "Dimarzio Seguros", catalog.DisplayName("desconhecido", "Dimarzio Seguros"))
}

func TestCatalogActiveSlugsPreservesOrder(t *testing.T) {
	catalog := Catalog{
		{Slug: "dimarzio-auto", Active: true},
		{Slug: "dimarzio-rural", Active: false},
		{Slug: "dimarzio-vida", Active: true},
	}

	assert.Equal(t, []string{"dimarzio-auto", "dimarzio-vida"}, catalog.ActiveSlugs())
}
