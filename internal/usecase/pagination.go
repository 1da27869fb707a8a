package usecase

import "github.com/levamidia/dimarzio-crm/internal/entity"

// TotalPages calcula ceil(total/pageSize), nunca menor que 1: uma coleção
// vazia ainda tem uma página (vazia).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PaginateLeads fatia a coleção já filtrada e ordenada.
// Pré-condição: 1 <= page <= TotalPages. Quem muda o filtro ou o produto
// precisa voltar para a página 1; esta função não faz clamp.
func PaginateLeads(leads []entity.Lead, pageSize, page int) ([]entity.Lead, int) {
	totalPages := TotalPages(len(leads), pageSize)
	if pageSize <= 0 {
		return []entity.Lead{}, totalPages
	}

	start := (page - 1) * pageSize
	if start < 0 || start >= len(leads) {
		return []entity.Lead{}, totalPages
	}

	end := start + pageSize
	if end > len(leads) {
		end = len(leads)
	}
	return leads[start:end], totalPages
}
