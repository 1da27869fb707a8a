package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusDefaultsToNovo(t *testing.T) {
	assert.Equal(t, StatusNovo, Lead{}.Status())
	assert.Equal(t, StatusProposta, Lead{Field03: StatusProposta}.Status())
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range LeadStatuses {
		assert.True(t, IsValidStatus(s), "status %s", s)
	}
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("novo"))
	assert.False(t, IsValidStatus("EM_ANDAMENTO"))
}

func TestLeadCityFallsBackToUnspecified(t *testing.T) {
	assert.Equal(t, "Campinas", Lead{Field01: "Campinas"}.City())
	assert.Equal(t, Unspecified, Lead{}.City())
}

func TestLeadInterestResolutionOrder(t *testing.T) {
	assert.Equal(t, "Seguro auto", Lead{Field19: "Seguro auto", InteressePrincipal: "Outro"}.Interest())
	assert.Equal(t, "Outro", Lead{InteressePrincipal: "Outro"}.Interest())
	assert.Equal(t, Unspecified, Lead{}.Interest())
}

func TestLeadNotesResolutionOrder(t *testing.T) {
	assert.Equal(t, "anotação", Lead{Field18: "anotação", Field01: "Campinas"}.Notes())
	assert.Equal(t, "Campinas", Lead{Field01: "Campinas", Field02: "extra"}.Notes())
	assert.Equal(t, "extra", Lead{Field02: "extra"}.Notes())
	assert.Equal(t, "", Lead{}.Notes())
}

func TestLeadCreatedTimeAcceptsBackendFormats(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2024-06-10T08:30:00.123Z", time.Date(2024, 6, 10, 8, 30, 0, 123000000, time.UTC)},
		{"2024-06-10T08:30:00Z", time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)},
		{"2024-06-10T08:30:00", time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)},
		{"2024-06-10", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, ok := Lead{CreatedAt: tc.raw}.CreatedTime()
		assert.True(t, ok, "formato %q", tc.raw)
		assert.True(t, tc.want.Equal(got), "formato %q", tc.raw)
	}

	_, ok := Lead{CreatedAt: "10/06/2024"}.CreatedTime()
	assert.False(t, ok)
	_, ok = Lead{}.CreatedTime()
	assert.False(t, ok)
}
