package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/levamidia/dimarzio-crm/internal/config"
	"github.com/levamidia/dimarzio-crm/internal/entity"
)

func TestLeadStatsAggregatesFilteredSet(t *testing.T) {
	client := new(MockLeadAPIClient)
	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("List", mock.Anything).Return(testCatalog(), nil)

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	client.On("ListLeads", mock.Anything, 6, "dimarzio-auto").
		Return([]entity.Lead{
			{ID: 1, Product: "dimarzio-auto", Field03: entity.StatusFechado, Field01: "Campinas", CreatedAt: "2024-06-10T08:00:00Z"},
			{ID: 2, Product: "dimarzio-auto", Field03: entity.StatusQualificado, Field01: "Campinas", CreatedAt: "2024-06-09T08:00:00Z"},
		}, nil)
	client.On("ListLeads", mock.Anything, 6, "dimarzio-vida").
		Return([]entity.Lead{
			{ID: 3, Product: "dimarzio-vida", CreatedAt: "2024-06-10T09:00:00Z"},
			{ID: 4, Product: "fora-do-namespace", Field03: entity.StatusFechado},
		}, nil)

	gateway := NewLeadGateway(client, 5*time.Minute)
	rule := ProductRule{Mode: config.MatchPrefix, Value: "dimarzio-"}
	uc := NewLeadStatsUseCase(gateway, catalogRepo, rule, 6, "dimarzio-auto", "Dimarzio Seguros", 24*time.Hour, 15)
	uc.now = func() time.Time { return now }

	out, err := uc.Execute(context.Background(), LeadStatsInput{Product: AllProducts})

	assert.NoError(t, err)
	// O lead fora do namespace não conta em nada.
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.ByStatus[entity.StatusFechado])
	assert.Equal(t, 1, out.ByStatus[entity.StatusQualificado])
	assert.Equal(t, 1, out.ByStatus[entity.StatusNovo])
	assert.Equal(t, 2, out.ByCity["Campinas"])
	assert.Equal(t, 1, out.ByCity[entity.Unspecified])
	assert.Equal(t, 2, out.ByProduct["Auto"])
	assert.Equal(t, 1, out.ByProduct["Vida"])
	assert.Equal(t, 33.3, out.QualificationRate)
	assert.Equal(t, 33.3, out.ConversionRate)
	assert.Equal(t, 2, out.Recent)

	assert.Equal(t, []DayCount{
		{Date: "09/06/2024", Count: 1},
		{Date: "10/06/2024", Count: 2},
	}, out.ByDay)
}

func TestLeadStatsEmptySetYieldsZeroedOutput(t *testing.T) {
	client := new(MockLeadAPIClient)
	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("List", mock.Anything).Return(testCatalog(), nil)

	client.On("ListLeads", mock.Anything, 6, mock.Anything).Return([]entity.Lead{}, nil)

	gateway := NewLeadGateway(client, 5*time.Minute)
	rule := ProductRule{Mode: config.MatchPrefix, Value: "dimarzio-"}
	uc := NewLeadStatsUseCase(gateway, catalogRepo, rule, 6, "dimarzio-auto", "Dimarzio Seguros", 24*time.Hour, 15)

	out, err := uc.Execute(context.Background(), LeadStatsInput{})

	assert.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Equal(t, 0.0, out.QualificationRate)
	assert.Equal(t, 0.0, out.ConversionRate)
	assert.Empty(t, out.ByDay)
	assert.Len(t, out.ByStatus, len(entity.LeadStatuses))
}
