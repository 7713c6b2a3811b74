// Package reporting aggregates production records into the dashboard and
// period-report views. All figures are derived on demand; nothing is stored.
package reporting

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/repository/mongodb"
)

const (
	dateLayout        = "02/01"
	recentAlertsLimit = 10
	defaultReportDays = 30
)

// Service exposes read-only analytics over production records.
type Service struct {
	records mongodb.RecordStore
	alerts  mongodb.AlertStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a reporting service instance.
func NewService(records mongodb.RecordStore, alerts mongodb.AlertStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{records: records, alerts: alerts, logger: logger, now: time.Now}
}

// DailyProduction is one point of the 7-day dashboard series.
type DailyProduction struct {
	Date    string `json:"fecha"`
	Total   int    `json:"total"`
	Fertile int    `json:"fertiles"`
}

// CategoryShare is one slice of the category-distribution chart.
type CategoryShare struct {
	Name    string  `json:"nombre"`
	Count   int     `json:"cantidad"`
	Percent float64 `json:"porcentaje"`
}

// Dashboard is the landing-page aggregate.
type Dashboard struct {
	RecordsToday    int               `json:"registrosHoy"`
	EggsToday       int               `json:"totalHuevosHoy"`
	WeeklyAverage   int               `json:"promedioProduccionSemana"`
	WeeklyMortality int               `json:"mortalidadSemana"`
	ProductionByDay []DailyProduction `json:"produccionPorDia"`
	Distribution    []CategoryShare   `json:"distribucionTipos"`
	Alerts          []models.Alert    `json:"alertas"`
}

// Dashboard aggregates today's submissions, the trailing week and the most
// recent alerts.
func (s *Service) Dashboard(ctx context.Context, actor identity.Actor) (Dashboard, error) {
	if !actor.Authenticated() {
		return Dashboard{}, models.ErrUnauthenticated
	}

	now := s.now()
	today := startOfDay(now)
	weekAgo := today.AddDate(0, 0, -6)

	week, err := s.records.ListBetween(ctx, weekAgo, now)
	if err != nil {
		return Dashboard{}, err
	}

	var d Dashboard
	weekTotal := 0
	for _, r := range week {
		weekTotal += r.TotalEggs
		d.WeeklyMortality += r.MortalityFemale
		if !r.Date.Before(today) {
			d.RecordsToday++
			d.EggsToday += r.TotalEggs
		}
	}
	if len(week) > 0 {
		d.WeeklyAverage = int(math.Round(float64(weekTotal) / 7))
	}

	d.ProductionByDay = make([]DailyProduction, 0, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		point := DailyProduction{Date: day.Format(dateLayout)}
		for _, r := range week {
			if sameDay(r.Date, day) {
				point.Total += r.TotalEggs
				point.Fertile += r.TotalFertile
			}
		}
		d.ProductionByDay = append(d.ProductionByDay, point)
	}

	d.Distribution = categoryDistribution(week, true)

	alerts, err := s.alerts.Recent(ctx, recentAlertsLimit)
	if err != nil {
		return Dashboard{}, err
	}
	d.Alerts = alerts

	return d, nil
}

// ReportTotals are the headline figures of a period report.
type ReportTotals struct {
	Production   int     `json:"produccionTotal"`
	DailyAverage int     `json:"promedioDiario"`
	AvgFertility float64 `json:"fertilidadPromedio"`
	Mortality    int     `json:"mortalidadTotal"`
	AvgMortality float64 `json:"mortalidadPromedio"`
	Efficiency   float64 `json:"eficiencia"`
}

// EvolutionPoint is one day of the report evolution series.
type EvolutionPoint struct {
	Date      string `json:"fecha"`
	Total     int    `json:"total"`
	Fertile   int    `json:"fertiles"`
	Defective int    `json:"defectuosos"`
}

// FeedProductionPoint relates feed consumed to eggs produced for one day.
type FeedProductionPoint struct {
	Date       string  `json:"fecha"`
	FeedKg     float64 `json:"alimentoTotal"`
	Production int     `json:"produccion"`
}

// Indicator is one row of the report indicator table.
type Indicator struct {
	Name   string `json:"nombre"`
	Value  string `json:"valor"`
	Status string `json:"estado"`
}

// Report is the period-report aggregate.
type Report struct {
	Totals           ReportTotals          `json:"totales"`
	DailyEvolution   []EvolutionPoint      `json:"evolucionDiaria"`
	Distribution     []CategoryShare       `json:"distribucionCategorias"`
	FeedVsProduction []FeedProductionPoint `json:"alimentacionProduccion"`
	Indicators       []Indicator           `json:"indicadores"`
}

// Report aggregates the last N days of records. Operators are not allowed in.
func (s *Service) Report(ctx context.Context, actor identity.Actor, days int) (Report, error) {
	if !actor.Authenticated() {
		return Report{}, models.ErrUnauthenticated
	}
	if actor.Role == models.RoleOperario {
		return Report{}, models.ErrForbidden
	}
	if days < 1 {
		days = defaultReportDays
	}

	now := s.now()
	today := startOfDay(now)
	start := today.AddDate(0, 0, -days)

	records, err := s.records.ListBetween(ctx, start, now)
	if err != nil {
		return Report{}, err
	}

	var rep Report
	var feedTotal float64
	var defectiveTotal, fertileTotal int
	for _, r := range records {
		rep.Totals.Production += r.TotalEggs
		fertileTotal += r.TotalFertile
		rep.Totals.Mortality += r.MortalityFemale
		defectiveTotal += r.EggCracked + r.EggDiscard
		feedTotal += r.FeedFemaleKg + r.FeedMaleKg
	}

	if len(records) > 0 {
		rep.Totals.DailyAverage = int(math.Round(float64(rep.Totals.Production) / float64(days)))
		rep.Totals.AvgMortality = round1(float64(rep.Totals.Mortality) / float64(days))
	}
	if rep.Totals.Production > 0 {
		rep.Totals.AvgFertility = round1(float64(fertileTotal) / float64(rep.Totals.Production) * 100)
		rep.Totals.Efficiency = round1(float64(rep.Totals.Production-defectiveTotal) / float64(rep.Totals.Production) * 100)
	}

	rep.DailyEvolution = make([]EvolutionPoint, 0, days)
	rep.FeedVsProduction = make([]FeedProductionPoint, 0, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-(days-1))
		evo := EvolutionPoint{Date: day.Format(dateLayout)}
		fvp := FeedProductionPoint{Date: day.Format(dateLayout)}
		for _, r := range records {
			if !sameDay(r.Date, day) {
				continue
			}
			evo.Total += r.TotalEggs
			evo.Fertile += r.TotalFertile
			evo.Defective += r.EggCracked + r.EggDiscard
			fvp.FeedKg += r.FeedFemaleKg + r.FeedMaleKg
			fvp.Production += r.TotalEggs
		}
		rep.DailyEvolution = append(rep.DailyEvolution, evo)
		rep.FeedVsProduction = append(rep.FeedVsProduction, fvp)
	}

	rep.Distribution = categoryDistribution(records, false)
	rep.Indicators = buildIndicators(rep.Totals, feedTotal, fertileTotal, defectiveTotal, len(records), days)

	return rep, nil
}

// DailySummary formats a one-line production summary for the given day, used
// by the nightly scheduler log.
func (s *Service) DailySummary(ctx context.Context, at time.Time) (string, error) {
	day := startOfDay(at)
	records, err := s.records.ListBetween(ctx, day, day.AddDate(0, 0, 1).Add(-time.Nanosecond))
	if err != nil {
		return "", fmt.Errorf("load daily records: %w", err)
	}

	if len(records) == 0 {
		return fmt.Sprintf("Resumen %s: sin registros.", day.Format("2006-01-02")), nil
	}

	var eggs, fertile, mortality int
	var feed float64
	for _, r := range records {
		eggs += r.TotalEggs
		fertile += r.TotalFertile
		mortality += r.MortalityFemale + r.MortalityMale
		feed += r.FeedFemaleKg + r.FeedMaleKg
	}

	return fmt.Sprintf("Resumen %s: %d huevos (%d fértiles), mortalidad %d, alimento %.1f kg en %d registros.",
		day.Format("2006-01-02"), eggs, fertile, mortality, feed, len(records)), nil
}

func categoryDistribution(records []models.ProductionRecord, skipEmpty bool) []CategoryShare {
	labels := []struct {
		name  string
		count func(models.ProductionRecord) int
	}{
		{"Fértil A", func(r models.ProductionRecord) int { return r.EggFertileA }},
		{"Fértil B", func(r models.ProductionRecord) int { return r.EggFertileB }},
		{"Jumbo", func(r models.ProductionRecord) int { return r.EggJumbo }},
		{"Grande", func(r models.ProductionRecord) int { return r.EggLarge }},
		{"Mediano", func(r models.ProductionRecord) int { return r.EggMedium }},
		{"Pequeño", func(r models.ProductionRecord) int { return r.EggSmall }},
	}

	var total int
	counts := make([]int, len(labels))
	for i, l := range labels {
		for _, r := range records {
			counts[i] += l.count(r)
		}
		total += counts[i]
	}

	shares := make([]CategoryShare, 0, len(labels))
	for i, l := range labels {
		if skipEmpty && counts[i] == 0 {
			continue
		}
		share := CategoryShare{Name: l.name, Count: counts[i]}
		if total > 0 {
			share.Percent = round1(float64(counts[i]) / float64(total) * 100)
		}
		shares = append(shares, share)
	}
	return shares
}

func buildIndicators(totals ReportTotals, feedTotal float64, fertileTotal, defectiveTotal, recordCount, days int) []Indicator {
	status := func(ok bool, good, bad string) string {
		if ok {
			return good
		}
		return bad
	}

	return []Indicator{
		{"Producción Total", fmt.Sprintf("%d huevos", totals.Production), "Óptimo"},
		{"Producción Promedio Diaria", fmt.Sprintf("%d huevos/día", totals.DailyAverage), status(totals.DailyAverage > 300, "Óptimo", "Aceptable")},
		{"Fertilidad Promedio", fmt.Sprintf("%.1f%%", totals.AvgFertility), status(totals.AvgFertility >= 85, "Óptimo", "Revisar")},
		{"Mortalidad Total", fmt.Sprintf("%d hembras", totals.Mortality), status(float64(totals.Mortality) < float64(days)*0.5, "Óptimo", "Revisar")},
		{"Mortalidad Promedio", fmt.Sprintf("%.1f hembras/día", totals.AvgMortality), status(totals.AvgMortality < 0.5, "Óptimo", "Revisar")},
		{"Eficiencia", fmt.Sprintf("%.1f%%", totals.Efficiency), status(totals.Efficiency > 90, "Óptimo", "Aceptable")},
		{"Huevos Fértiles", fmt.Sprintf("%d", fertileTotal), "Óptimo"},
		{"Huevos Defectuosos", fmt.Sprintf("%d", defectiveTotal), status(float64(defectiveTotal) < float64(totals.Production)*0.05, "Óptimo", "Revisar")},
		{"Alimento Total Consumido", fmt.Sprintf("%.1f kg", feedTotal), "Óptimo"},
		{"Días con Registros", fmt.Sprintf("%d de %d", recordCount, days), status(recordCount >= days*9/10, "Óptimo", "Aceptable")},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
