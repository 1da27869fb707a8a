package database

import (
	"context"
	"database/sql"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

// CatalogRepository guarda o catálogo de produtos do tenant. O catálogo é
// editável pelo time comercial; os leads em si nunca são persistidos aqui.
type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) List(ctx context.Context) (entity.Catalog, error) {
	query := `
		SELECT id, slug, name, active, created_at
		FROM products
		ORDER BY name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog entity.Catalog
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		catalog = append(catalog, p)
	}

	return catalog, rows.Err()
}

func (r *CatalogRepository) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, slug, name, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.DB.ExecContext(ctx, query, p.ID, p.Slug, p.Name, p.Active, p.CreatedAt)
	return err
}

func (r *CatalogRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `
		UPDATE products
		SET active = $2
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query, id, active)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Seed insere o catálogo de fábrica sem sobrescrever edições do tenant.
func (r *CatalogRepository) Seed(ctx context.Context, defaults entity.Catalog) error {
	query := `
		INSERT INTO products (id, slug, name, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO NOTHING
	`

	for _, p := range defaults {
		if _, err := r.DB.ExecContext(ctx, query, p.ID, p.Slug, p.Name, p.Active, p.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}
