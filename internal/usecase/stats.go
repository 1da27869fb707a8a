package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

// DayCount é um bucket da série temporal, rotulado em dd/mm/aaaa.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CountByStatus conta leads por status. Todos os status do funil aparecem no
// resultado, mesmo com zero; leads sem field03 contam como NOVO.
func CountByStatus(leads []entity.Lead) map[string]int {
	counts := make(map[string]int, len(entity.LeadStatuses))
	for _, status := range entity.LeadStatuses {
		counts[status] = 0
	}

	for _, l := range leads {
		counts[l.Status()]++
	}
	return counts
}

// CountByField agrupa por uma chave extraída do lead (cidade, interesse,
// produto). Chave vazia cai no bucket "Não especificado".
func CountByField(leads []entity.Lead, extract func(entity.Lead) string) map[string]int {
	counts := make(map[string]int)
	for _, l := range leads {
		key := extract(l)
		if key == "" {
			key = entity.Unspecified
		}
		counts[key]++
	}
	return counts
}

// CountByDay agrupa por dia de criação (data do calendário, não hora),
// ordena pela data real e corta para os maxDays buckets mais recentes.
// maxDays é densidade de exibição (7 em telas estreitas, 15 em largas).
func CountByDay(leads []entity.Lead, maxDays int) []DayCount {
	counts := make(map[time.Time]int)
	for _, l := range leads {
		t, ok := l.CreatedTime()
		if !ok {
			continue
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		counts[day]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	if maxDays > 0 && len(days) > maxDays {
		days = days[len(days)-maxDays:]
	}

	out := make([]DayCount, 0, len(days))
	for _, day := range days {
		out = append(out, DayCount{Date: day.Format("02/01/2006"), Count: counts[day]})
	}
	return out
}

// QualificationRate é o percentual de leads qualificados (QUALIFICADO ou
// QUALIFICADO_OP), com uma casa decimal. Coleção vazia retorna 0.
func QualificationRate(leads []entity.Lead) float64 {
	if len(leads) == 0 {
		return 0
	}

	qualified := 0
	for _, l := range leads {
		if s := l.Status(); s == entity.StatusQualificado || s == entity.StatusQualificadoOp {
			qualified++
		}
	}
	return round1(float64(qualified) / float64(len(leads)) * 100)
}

// ConversionRate é o percentual de leads FECHADO, mesma regra de arredondamento.
func ConversionRate(leads []entity.Lead) float64 {
	if len(leads) == 0 {
		return 0
	}

	closed := 0
	for _, l := range leads {
		if l.Status() == entity.StatusFechado {
			closed++
		}
	}
	return round1(float64(closed) / float64(len(leads)) * 100)
}

// RecentCount conta leads criados dentro da janela. Timestamps no futuro
// (clock skew do backend) não contam como recentes.
func RecentCount(leads []entity.Lead, window time.Duration, now time.Time) int {
	recent := 0
	for _, l := range leads {
		t, ok := l.CreatedTime()
		if !ok {
			continue
		}
		elapsed := now.Sub(t)
		if elapsed >= 0 && elapsed < window {
			recent++
		}
	}
	return recent
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
