package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovementType is the direction of an inventory ledger entry.
type MovementType string

const (
	MovementIngress     MovementType = "INGRESO"
	MovementConsumption MovementType = "CONSUMO"    // feed only
	MovementMortality   MovementType = "MORTALIDAD" // birds only
	MovementEgress      MovementType = "SALIDA"     // eggs only
)

// Sex is the flock dimension for feed and bird movements.
type Sex string

const (
	SexFemale Sex = "HEMBRA"
	SexMale   Sex = "MACHO"
)

// EggCategory enumerates the eight commercial egg classifications.
type EggCategory string

const (
	EggFertilA EggCategory = "FERTIL_A"
	EggFertilB EggCategory = "FERTIL_B"
	EggJumbo   EggCategory = "JUMBO"
	EggGrande  EggCategory = "GRANDE"
	EggMediano EggCategory = "MEDIANO"
	EggPequeno EggCategory = "PEQUENO"
	EggPicado  EggCategory = "PICADO"
	EggDesecho EggCategory = "DESECHO"
)

// EggCategories lists all categories in reporting order.
var EggCategories = []EggCategory{
	EggFertilA, EggFertilB, EggJumbo, EggGrande,
	EggMediano, EggPequeno, EggPicado, EggDesecho,
}

// ValidEggCategory reports whether the value is a recognized category.
func ValidEggCategory(c EggCategory) bool {
	for _, known := range EggCategories {
		if c == known {
			return true
		}
	}
	return false
}

// FeedMovement is an append-only entry in the feed ledger, in kilograms.
// RecordID is nil for manually entered movements.
type FeedMovement struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Date       time.Time           `bson:"fecha" json:"fecha"`
	Type       MovementType        `bson:"tipo" json:"tipo"`
	Sex        Sex                 `bson:"sexo" json:"sexo"`
	QuantityKg float64             `bson:"cantidad_kg" json:"cantidadKg"`
	RecordID   *primitive.ObjectID `bson:"registro_id,omitempty" json:"registroId,omitempty"`
}

// BirdMovement is an append-only entry in the bird ledger.
type BirdMovement struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Date     time.Time           `bson:"fecha" json:"fecha"`
	Type     MovementType        `bson:"tipo" json:"tipo"`
	Sex      Sex                 `bson:"sexo" json:"sexo"`
	Quantity int                 `bson:"cantidad" json:"cantidad"`
	RecordID *primitive.ObjectID `bson:"registro_id,omitempty" json:"registroId,omitempty"`
}

// EggMovement is an append-only entry in the egg ledger.
type EggMovement struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Date     time.Time           `bson:"fecha" json:"fecha"`
	Type     MovementType        `bson:"tipo" json:"tipo"`
	Category EggCategory         `bson:"categoria" json:"categoria"`
	Quantity int                 `bson:"cantidad" json:"cantidad"`
	RecordID *primitive.ObjectID `bson:"registro_id,omitempty" json:"registroId,omitempty"`
}
