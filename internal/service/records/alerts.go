package records

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// Fixed evaluation thresholds. FarmConfiguration exposes configurable
// equivalents but the evaluator does not read them; the admin fields remain
// informational only.
const (
	highMortalityThreshold = 5
	lowProductionThreshold = 100
	minFertilityPercent    = 85.0
)

// EvaluateAlerts inspects a persisted record and returns zero or more alert
// drafts. The three conditions are independent; a single record can raise all
// of them.
func EvaluateAlerts(record models.ProductionRecord) []models.Alert {
	var ref *primitive.ObjectID
	if !record.ID.IsZero() {
		id := record.ID
		ref = &id
	}

	var alerts []models.Alert

	if record.MortalityFemale > highMortalityThreshold {
		alerts = append(alerts, models.Alert{
			Type:        models.AlertHighMortality,
			Severity:    models.SeverityCritical,
			Title:       "Mortalidad Alta Detectada",
			Description: fmt.Sprintf("Se registraron %d muertes de hembras hoy. Revisar condiciones.", record.MortalityFemale),
			Date:        record.Date,
			RecordID:    ref,
		})
	}

	if record.TotalEggs < lowProductionThreshold {
		alerts = append(alerts, models.Alert{
			Type:        models.AlertLowProduction,
			Severity:    models.SeverityWarning,
			Title:       "Producción Baja",
			Description: fmt.Sprintf("Solo se produjeron %d huevos hoy.", record.TotalEggs),
			Date:        record.Date,
			RecordID:    ref,
		})
	}

	// Fertility is undefined without eggs; the guard doubles as division-by-zero
	// protection.
	if record.TotalEggs > 0 {
		pct := (float64(record.TotalFertile) / float64(record.TotalEggs)) * 100
		if pct < minFertilityPercent {
			alerts = append(alerts, models.Alert{
				Type:        models.AlertLowFertility,
				Severity:    models.SeverityWarning,
				Title:       "Fertilidad Baja",
				Description: fmt.Sprintf("La fertilidad es del %.1f%%, por debajo del 85%% esperado.", pct),
				Date:        record.Date,
				RecordID:    ref,
			})
		}
	}

	return alerts
}
