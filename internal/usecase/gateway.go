package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/levamidia/dimarzio-crm/internal/entity"
	"github.com/levamidia/dimarzio-crm/internal/infra/http/middleware"
	"github.com/levamidia/dimarzio-crm/internal/infra/integration/metropole"
)

type cacheEntry struct {
	leads     []entity.Lead
	fetchedAt time.Time
}

// LeadGateway envolve o client metropole com um cache de TTL curto por
// tenant+produto e fan-out concorrente. É o único dono do cache: nenhum
// outro componente lê ou escreve entradas.
type LeadGateway struct {
	client LeadAPIClient
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

func NewLeadGateway(client LeadAPIClient, ttl time.Duration) *LeadGateway {
	return &LeadGateway{
		client: client,
		ttl:    ttl,
		now:    time.Now,
		cache:  make(map[string]cacheEntry),
	}
}

// FetchLeads retorna o payload cacheado enquanto a entrada é válida
// (now - fetchedAt < TTL); caso contrário busca no backend. Falha de rede ou
// status não-2xx degrada para lista vazia: um produto fora do ar não pode
// derrubar o dashboard inteiro.
func (g *LeadGateway) FetchLeads(ctx context.Context, tenantID int, productID string) []entity.Lead {
	key := fmt.Sprintf("%d-%s", tenantID, productID)

	g.mu.Lock()
	entry, ok := g.cache[key]
	g.mu.Unlock()

	if ok && g.now().Sub(entry.fetchedAt) < g.ttl {
		middleware.RecordCacheLookup("hit")
		return entry.leads
	}
	middleware.RecordCacheLookup("miss")

	leads, err := g.client.ListLeads(ctx, tenantID, productID)
	if err != nil {
		middleware.RecordUpstreamFetch(productID, "error")
		log.Warn().Err(err).
			Str("product", productID).
			Msg("falha ao buscar leads; seguindo com lista vazia")
		return []entity.Lead{}
	}
	middleware.RecordUpstreamFetch(productID, "ok")

	// Duas buscas simultâneas da mesma chave podem ambas perder o cache e
	// ambas escrever; a última vence. Aceitável para cache read-mostly de
	// TTL curto. A chamada de rede acontece fora do lock de propósito.
	g.mu.Lock()
	g.cache[key] = cacheEntry{leads: leads, fetchedAt: g.now()}
	g.mu.Unlock()

	return leads
}

// FetchLeadsForProducts dispara um FetchLeads por produto em paralelo e
// concatena os resultados na ordem em que os produtos foram pedidos,
// independente da ordem de término das chamadas.
func (g *LeadGateway) FetchLeadsForProducts(ctx context.Context, tenantID int, productIDs []string) []entity.Lead {
	results := make([][]entity.Lead, len(productIDs))

	var wg sync.WaitGroup
	for i, productID := range productIDs {
		wg.Add(1)
		go func(i int, productID string) {
			defer wg.Done()
			results[i] = g.FetchLeads(ctx, tenantID, productID)
		}(i, productID)
	}
	wg.Wait()

	merged := make([]entity.Lead, 0)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// UpdateStatus confirma a escrita no backend antes de qualquer coisa; o
// chamador só atualiza a cópia local depois do retorno sem erro.
func (g *LeadGateway) UpdateStatus(ctx context.Context, leadID int64, status string) error {
	return g.client.UpdateStatus(ctx, leadID, status)
}

func (g *LeadGateway) SubmitLead(ctx context.Context, input metropole.SubmitLeadInput) error {
	return g.client.SubmitLead(ctx, input)
}

// SortLeadsByNewest ordena in place do mais recente para o mais antigo.
// Datas ilegíveis vão para o fim.
func SortLeadsByNewest(leads []entity.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		ti, _ := leads[i].CreatedTime()
		tj, _ := leads[j].CreatedTime()
		return ti.After(tj)
	})
}
