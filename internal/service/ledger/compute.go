package ledger

import (
	"time"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// FeedBalance is the net feed stock per sex, in kilograms.
type FeedBalance struct {
	Female float64 `json:"hembra"`
	Male   float64 `json:"macho"`
	Total  float64 `json:"total"`
}

// BirdBalance surfaces ingress and mortality as separate figures per sex.
// They are deliberately not netted into a stock balance.
type BirdBalance struct {
	IngressFemale   int `json:"ingresoHembra"`
	IngressMale     int `json:"ingresoMacho"`
	MortalityFemale int `json:"mortalidadHembra"`
	MortalityMale   int `json:"mortalidadMacho"`
	MortalityTotal  int `json:"mortalidadTotal"`
}

// EggBalance is the net egg stock per category plus the derived rollups.
type EggBalance struct {
	FertilA int `json:"fertilA"`
	FertilB int `json:"fertilB"`
	Jumbo   int `json:"jumbo"`
	Grande  int `json:"grande"`
	Mediano int `json:"mediano"`
	Pequeno int `json:"pequeno"`
	Picado  int `json:"picado"`
	Desecho int `json:"desecho"`

	Total      int `json:"total"`
	Fertile    int `json:"fertil"`
	Commercial int `json:"comercial"`
	Discarded  int `json:"descartado"`
}

// Summary is the balances response for one lookback window.
type Summary struct {
	PeriodDays int         `json:"periodoDias"`
	Start      time.Time   `json:"fechaInicio"`
	End        time.Time   `json:"fechaFin"`
	Feed       FeedBalance `json:"alimento"`
	Birds      BirdBalance `json:"aves"`
	Eggs       EggBalance  `json:"produccion"`
}

// ComputeFeed reduces feed movements into per-sex net balances
// (ingress minus consumption). An empty set yields all zeros.
func ComputeFeed(movements []models.FeedMovement) FeedBalance {
	var b FeedBalance
	for _, m := range movements {
		var delta float64
		switch m.Type {
		case models.MovementIngress:
			delta = m.QuantityKg
		case models.MovementConsumption:
			delta = -m.QuantityKg
		default:
			continue
		}
		switch m.Sex {
		case models.SexFemale:
			b.Female += delta
		case models.SexMale:
			b.Male += delta
		}
	}
	b.Total = b.Female + b.Male
	return b
}

// ComputeBirds reduces bird movements into per-sex ingress and mortality
// totals. An empty set yields all zeros.
func ComputeBirds(movements []models.BirdMovement) BirdBalance {
	var b BirdBalance
	for _, m := range movements {
		switch {
		case m.Type == models.MovementIngress && m.Sex == models.SexFemale:
			b.IngressFemale += m.Quantity
		case m.Type == models.MovementIngress && m.Sex == models.SexMale:
			b.IngressMale += m.Quantity
		case m.Type == models.MovementMortality && m.Sex == models.SexFemale:
			b.MortalityFemale += m.Quantity
		case m.Type == models.MovementMortality && m.Sex == models.SexMale:
			b.MortalityMale += m.Quantity
		}
	}
	b.MortalityTotal = b.MortalityFemale + b.MortalityMale
	return b
}

// ComputeEggs reduces egg movements into per-category net balances
// (ingress minus egress) and the derived rollups. An empty set yields all
// zeros.
func ComputeEggs(movements []models.EggMovement) EggBalance {
	byCategory := make(map[models.EggCategory]int, len(models.EggCategories))
	for _, m := range movements {
		switch m.Type {
		case models.MovementIngress:
			byCategory[m.Category] += m.Quantity
		case models.MovementEgress:
			byCategory[m.Category] -= m.Quantity
		}
	}

	b := EggBalance{
		FertilA: byCategory[models.EggFertilA],
		FertilB: byCategory[models.EggFertilB],
		Jumbo:   byCategory[models.EggJumbo],
		Grande:  byCategory[models.EggGrande],
		Mediano: byCategory[models.EggMediano],
		Pequeno: byCategory[models.EggPequeno],
		Picado:  byCategory[models.EggPicado],
		Desecho: byCategory[models.EggDesecho],
	}

	b.Fertile = b.FertilA + b.FertilB
	b.Commercial = b.Jumbo + b.Grande + b.Mediano + b.Pequeno + b.Picado
	b.Discarded = b.Desecho
	b.Total = b.Fertile + b.Commercial + b.Discarded
	return b
}
