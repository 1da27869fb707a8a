package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product é uma linha de seguro que o lead pode ter interesse.
// O slug é a chave estável usada pelo backend metropole (ex: "dimarzio-auto").
type Product struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProduct(name, slug string) *Product {
	return &Product{
		ID:        uuid.New().String(),
		Slug:      slug,
		Name:      name,
		Active:    true,
		CreatedAt: time.Now(),
	}
}

// Catalog é o conjunto de produtos de um tenant.
type Catalog []Product

// DisplayName resolve o nome de exibição de um slug. Slugs fora do catálogo
// caem no fallback (normalmente o nome da empresa).
func (c Catalog) DisplayName(slug, fallback string) string {
	for _, p := range c {
		if p.Slug == slug {
			return p.Name
		}
	}
	return fallback
}

// ActiveSlugs retorna os slugs ativos preservando a ordem do catálogo.
func (c Catalog) ActiveSlugs() []string {
	slugs := make([]string, 0, len(c))
	for _, p := range c {
		if p.Active {
			slugs = append(slugs, p.Slug)
		}
	}
	return slugs
}
