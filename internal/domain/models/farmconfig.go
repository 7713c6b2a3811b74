package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FarmConfiguration is the singleton farm-wide settings document.
//
// The three threshold percentages are part of the admin contract but the alert
// evaluator intentionally works off fixed constants; see service/records.
type FarmConfiguration struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"nombre_granja" json:"nombreGranja"`
	TotalFemales        int                `bson:"total_hembras" json:"totalHembras"`
	TotalMales          int                `bson:"total_machos" json:"totalMachos"`
	MaxMortalityPercent float64            `bson:"porcentaje_mortalidad_maximo" json:"porcentajeMortalidadMaximo"`
	FeedFemaleMinKg     float64            `bson:"consumo_alimento_hembra_min" json:"consumoAlimentoHembraMin"`
	FeedFemaleMaxKg     float64            `bson:"consumo_alimento_hembra_max" json:"consumoAlimentoHembraMax"`
	FeedMaleMinKg       float64            `bson:"consumo_alimento_macho_min" json:"consumoAlimentoMachoMin"`
	FeedMaleMaxKg       float64            `bson:"consumo_alimento_macho_max" json:"consumoAlimentoMachoMax"`
	MinProductionPct    float64            `bson:"porcentaje_produccion_minimo" json:"porcentajeProduccionMinimo"`
	MinFertilityPct     float64            `bson:"porcentaje_fertilidad_minimo" json:"porcentajeFertilidadMinimo"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updatedAt"`
}

// DefaultFarmConfiguration returns the document created lazily on first read.
func DefaultFarmConfiguration() FarmConfiguration {
	return FarmConfiguration{
		Name:                "Granja Reproductora",
		TotalFemales:        1000,
		TotalMales:          100,
		MaxMortalityPercent: 0.5,
		FeedFemaleMinKg:     120,
		FeedFemaleMaxKg:     150,
		FeedMaleMinKg:       130,
		FeedMaleMaxKg:       160,
		MinProductionPct:    85,
		MinFertilityPct:     90,
	}
}

// FarmConfigurationInput is the admin update payload; the document is replaced
// wholesale.
type FarmConfigurationInput struct {
	Name                string  `json:"nombreGranja" binding:"required"`
	TotalFemales        int     `json:"totalHembras"`
	TotalMales          int     `json:"totalMachos"`
	MaxMortalityPercent float64 `json:"porcentajeMortalidadMaximo"`
	FeedFemaleMinKg     float64 `json:"consumoAlimentoHembraMin"`
	FeedFemaleMaxKg     float64 `json:"consumoAlimentoHembraMax"`
	FeedMaleMinKg       float64 `json:"consumoAlimentoMachoMin"`
	FeedMaleMaxKg       float64 `json:"consumoAlimentoMachoMax"`
	MinProductionPct    float64 `json:"porcentajeProduccionMinimo"`
	MinFertilityPct     float64 `json:"porcentajeFertilidadMinimo"`
}
