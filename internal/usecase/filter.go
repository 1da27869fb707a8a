package usecase

import (
	"strings"

	"github.com/levamidia/dimarzio-crm/internal/config"
	"github.com/levamidia/dimarzio-crm/internal/entity"
)

// ProductRule decide se um lead pertence a este deployment. O modo vem da
// configuração do tenant: slug exato ou prefixo de namespace. A regra nunca
// é hardcoded porque o backend mistura leads de vários clientes.
type ProductRule struct {
	Mode  string
	Value string
}

func (r ProductRule) Eligible(productID string) bool {
	switch r.Mode {
	case config.MatchPrefix:
		return strings.HasPrefix(productID, r.Value)
	default:
		return productID == r.Value
	}
}

// MatchesSearch faz busca case-insensitive por substring nos campos visíveis
// do lead, incluindo o nome de exibição do produto no catálogo. Termo vazio
// casa com qualquer lead.
func MatchesSearch(l entity.Lead, term string, catalog entity.Catalog) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}

	needle := strings.ToLower(term)
	fields := []string{
		l.Name,
		l.Email,
		l.CellPhone,
		l.Product,
		l.InteressePrincipal,
		l.Field01,
		l.Field02,
		l.Field18,
		l.Field19,
		catalog.DisplayName(l.Product, ""),
	}

	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// FilterLeads aplica elegibilidade e busca em uma passada, preservando a
// ordem relativa da entrada.
func FilterLeads(leads []entity.Lead, term string, rule ProductRule, catalog entity.Catalog) []entity.Lead {
	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if rule.Eligible(l.Product) && MatchesSearch(l, term, catalog) {
			out = append(out, l)
		}
	}
	return out
}
