package usecase

import (
	"context"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

// AllProducts é o valor do seletor de produto que dispara o fan-out por
// todos os produtos ativos do catálogo.
const AllProducts = "todos"

type ListLeadsInput struct {
	Product string
	Search  string
	Page    int
}

// LeadView é o lead cru enriquecido com os campos derivados que o dashboard
// mostra: status normalizado, nome de exibição do produto, interesse e
// observações resolvidos dos fieldNN.
type LeadView struct {
	entity.Lead
	Status      string `json:"status"`
	ProductName string `json:"productName"`
	Cidade      string `json:"cidade"`
	Interesse   string `json:"interesse"`
	Observacoes string `json:"observacoes"`
}

type ListLeadsOutput struct {
	Leads      []LeadView `json:"leads"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Total      int        `json:"total"`
}

type ListLeadsUseCase struct {
	Gateway        *LeadGateway
	Catalog        CatalogRepositoryInterface
	Rule           ProductRule
	TenantID       int
	DefaultProduct string
	CompanyName    string
	PageSize       int
}

func NewListLeadsUseCase(
	gateway *LeadGateway,
	catalogRepo CatalogRepositoryInterface,
	rule ProductRule,
	tenantID int,
	defaultProduct string,
	companyName string,
	pageSize int,
) *ListLeadsUseCase {
	return &ListLeadsUseCase{
		Gateway:        gateway,
		Catalog:        catalogRepo,
		Rule:           rule,
		TenantID:       tenantID,
		DefaultProduct: defaultProduct,
		CompanyName:    companyName,
		PageSize:       pageSize,
	}
}

// Execute monta a visão paginada: fan-out (cacheado) por produto, ordenação
// do mais recente para o mais antigo, filtro de elegibilidade + busca e
// fatia da página. Página fora do intervalo volta para a primeira, porque a
// coleção filtrada pode ter encolhido desde o último request.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	catalog, err := uc.Catalog.List(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "CATALOG_ERROR",
			Message: "falha ao carregar catálogo: " + err.Error(),
		}
	}

	var productIDs []string
	switch input.Product {
	case "", AllProducts:
		productIDs = catalog.ActiveSlugs()
		if len(productIDs) == 0 {
			productIDs = []string{uc.DefaultProduct}
		}
	default:
		productIDs = []string{input.Product}
	}

	leads := uc.Gateway.FetchLeadsForProducts(ctx, uc.TenantID, productIDs)
	SortLeadsByNewest(leads)
	filtered := FilterLeads(leads, input.Search, uc.Rule, catalog)

	page := input.Page
	if page < 1 {
		page = 1
	}
	if page > TotalPages(len(filtered), uc.PageSize) {
		page = 1
	}

	items, totalPages := PaginateLeads(filtered, uc.PageSize, page)

	views := make([]LeadView, 0, len(items))
	for _, l := range items {
		views = append(views, LeadView{
			Lead:        l,
			Status:      l.Status(),
			ProductName: catalog.DisplayName(l.Product, uc.CompanyName),
			Cidade:      l.City(),
			Interesse:   l.Interest(),
			Observacoes: l.Notes(),
		})
	}

	return &ListLeadsOutput{
		Leads:      views,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(filtered),
	}, nil
}
