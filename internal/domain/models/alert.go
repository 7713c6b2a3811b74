package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AlertType enumerates the conditions the evaluator can raise.
type AlertType string

const (
	AlertHighMortality AlertType = "MORTALIDAD_ALTA"
	AlertLowProduction AlertType = "PRODUCCION_BAJA"
	AlertLowFertility  AlertType = "FERTILIDAD_BAJA"
)

// AlertSeverity indicates how urgent an alert is.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "CRITICAL"
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityInfo     AlertSeverity = "INFO"
)

// Alert is a system-generated notification derived from a production record.
// Resolved is mutated by a separate workflow; the evaluator always creates
// alerts unresolved.
type Alert struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type        AlertType           `bson:"tipo" json:"tipo"`
	Severity    AlertSeverity       `bson:"severidad" json:"severidad"`
	Title       string              `bson:"titulo" json:"titulo"`
	Description string              `bson:"descripcion" json:"descripcion"`
	Resolved    bool                `bson:"resuelta" json:"resuelta"`
	Date        time.Time           `bson:"fecha" json:"fecha"`
	RecordID    *primitive.ObjectID `bson:"registro_id,omitempty" json:"registroId,omitempty"`
}
