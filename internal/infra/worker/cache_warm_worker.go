package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/levamidia/dimarzio-crm/internal/usecase"
)

// CacheWarmWorker renova o feed de leads dos produtos ativos em segundo
// plano para o dashboard quase sempre bater em cache quente. O intervalo
// acompanha o TTL do cache: renovar mais rápido que isso só queimaria
// chamada no backend.
type CacheWarmWorker struct {
	gateway      *usecase.LeadGateway
	catalog      usecase.CatalogRepositoryInterface
	tenantID     int
	tickInterval time.Duration
}

func NewCacheWarmWorker(gateway *usecase.LeadGateway, catalog usecase.CatalogRepositoryInterface, tenantID int, ttl time.Duration) *CacheWarmWorker {
	return &CacheWarmWorker{
		gateway:      gateway,
		catalog:      catalog,
		tenantID:     tenantID,
		tickInterval: ttl,
	}
}

func (w *CacheWarmWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.tickInterval).Msg("cache warm worker iniciado")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.warm(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("cache warm worker encerrado")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CacheWarmWorker) warm(ctx context.Context) {
	catalog, err := w.catalog.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cache warm: falha ao carregar catálogo")
		return
	}

	slugs := catalog.ActiveSlugs()
	leads := w.gateway.FetchLeadsForProducts(ctx, w.tenantID, slugs)
	log.Debug().
		Int("products", len(slugs)).
		Int("leads", len(leads)).
		Msg("cache warm: feed renovado")
}
