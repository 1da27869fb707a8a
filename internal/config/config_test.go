package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 6, cfg.TenantID)
	assert.Equal(t, "dimarzio-auto", cfg.DefaultProduct)
	assert.Equal(t, MatchPrefix, cfg.ProductMatchMode)
	assert.Equal(t, "dimarzio-", cfg.ProductNamespace)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 24*time.Hour, cfg.RecentWindow)
	assert.Equal(t, 15, cfg.DayBuckets)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CRM_TENANT_ID", "12")
	t.Setenv("CRM_CACHE_TTL", "90s")
	t.Setenv("CRM_PRODUCT_MATCH_MODE", MatchExact)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://crm.example.com, https://admin.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 12, cfg.TenantID)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, MatchExact, cfg.ProductMatchMode)
	assert.Equal(t, []string{"https://crm.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CRM_TENANT_ID", "nao-e-numero")
	t.Setenv("CRM_CACHE_TTL", "cinco minutos")

	cfg := Load()

	assert.Equal(t, 6, cfg.TenantID)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestDefaultCatalogIsFullyActive(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Len(t, catalog, 13)
	assert.Len(t, catalog.ActiveSlugs(), 13)
	assert.Equal(t, "Auto", catalog.DisplayName("dimarzio-auto", ""))
	assert.Equal(t, "Fiança Locatícia", catalog.DisplayName("dimarzio-fianca-locaticia", ""))
}
