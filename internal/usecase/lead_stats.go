package usecase

import (
	"context"
	"time"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

type LeadStatsInput struct {
	Product string
	Search  string
}

type LeadStatsOutput struct {
	Total             int            `json:"total"`
	ByStatus          map[string]int `json:"by_status"`
	ByCity            map[string]int `json:"by_city"`
	ByInterest        map[string]int `json:"by_interest"`
	ByProduct         map[string]int `json:"by_product"`
	ByDay             []DayCount     `json:"by_day"`
	QualificationRate float64        `json:"qualification_rate"`
	ConversionRate    float64        `json:"conversion_rate"`
	Recent            int            `json:"recent"`
}

type LeadStatsUseCase struct {
	Gateway        *LeadGateway
	Catalog        CatalogRepositoryInterface
	Rule           ProductRule
	TenantID       int
	DefaultProduct string
	CompanyName    string
	RecentWindow   time.Duration
	DayBuckets     int

	now func() time.Time
}

func NewLeadStatsUseCase(
	gateway *LeadGateway,
	catalogRepo CatalogRepositoryInterface,
	rule ProductRule,
	tenantID int,
	defaultProduct string,
	companyName string,
	recentWindow time.Duration,
	dayBuckets int,
) *LeadStatsUseCase {
	return &LeadStatsUseCase{
		Gateway:        gateway,
		Catalog:        catalogRepo,
		Rule:           rule,
		TenantID:       tenantID,
		DefaultProduct: defaultProduct,
		CompanyName:    companyName,
		RecentWindow:   recentWindow,
		DayBuckets:     dayBuckets,
		now:            time.Now,
	}
}

// Execute deriva todas as estatísticas do conjunto filtrado em memória.
// O fan-out passa pelo mesmo cache do listing, então abrir a aba de
// estatísticas logo depois da lista não gera novas chamadas de rede.
func (uc *LeadStatsUseCase) Execute(ctx context.Context, input LeadStatsInput) (*LeadStatsOutput, error) {
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
	filtered := FilterLeads(leads, input.Search, uc.Rule, catalog)

	return &LeadStatsOutput{
		Total:      len(filtered),
		ByStatus:   CountByStatus(filtered),
		ByCity:     CountByField(filtered, entity.Lead.City),
		ByInterest: CountByField(filtered, entity.Lead.Interest),
		ByProduct: CountByField(filtered, func(l entity.Lead) string {
			return catalog.DisplayName(l.Product, uc.CompanyName)
		}),
		ByDay:             CountByDay(filtered, uc.DayBuckets),
		QualificationRate: QualificationRate(filtered),
		ConversionRate:    ConversionRate(filtered),
		Recent:            RecentCount(filtered, uc.RecentWindow, uc.now()),
	}, nil
}
