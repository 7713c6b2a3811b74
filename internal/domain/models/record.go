package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductionRecord captures one day of production data for the breeder farm.
// TotalEggs and TotalFertile are always recomputed server-side from the eight
// category counts; client-supplied totals are ignored.
type ProductionRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date            time.Time          `bson:"fecha" json:"fecha"`
	MortalityFemale int                `bson:"mortalidad_hembra" json:"mortalidadHembra"`
	MortalityMale   int                `bson:"mortalidad_macho" json:"mortalidadMacho"`
	FeedFemaleKg    float64            `bson:"alimento_hembra" json:"alimentoHembra"`
	FeedMaleKg      float64            `bson:"alimento_macho" json:"alimentoMacho"`
	EggFertileA     int                `bson:"huevo_fertil_a" json:"huevoFertilA"`
	EggFertileB     int                `bson:"huevo_fertil_b" json:"huevoFertilB"`
	EggJumbo        int                `bson:"huevo_jumbo" json:"huevoJumbo"`
	EggLarge        int                `bson:"huevo_grande" json:"huevoGrande"`
	EggMedium       int                `bson:"huevo_mediano" json:"huevoMediano"`
	EggSmall        int                `bson:"huevo_pequeno" json:"huevoPequeno"`
	EggCracked      int                `bson:"huevo_picado" json:"huevoPicado"`
	EggDiscard      int                `bson:"huevo_desecho" json:"huevoDesecho"`
	TotalEggs       int                `bson:"total_huevos" json:"totalHuevos"`
	TotalFertile    int                `bson:"total_fertiles" json:"totalFertiles"`
	Notes           string             `bson:"observaciones,omitempty" json:"observaciones,omitempty"`
	SubmittedBy     primitive.ObjectID `bson:"usuario_id" json:"usuarioId"`
	SubmittedByName string             `bson:"usuario_nombre,omitempty" json:"usuarioNombre,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}

// EggCategoryCounts returns the per-category counts keyed by wire category,
// in declaration order.
func (r ProductionRecord) EggCategoryCounts() []EggCategoryCount {
	return []EggCategoryCount{
		{EggFertilA, r.EggFertileA},
		{EggFertilB, r.EggFertileB},
		{EggJumbo, r.EggJumbo},
		{EggGrande, r.EggLarge},
		{EggMediano, r.EggMedium},
		{EggPequeno, r.EggSmall},
		{EggPicado, r.EggCracked},
		{EggDesecho, r.EggDiscard},
	}
}

// EggCategoryCount pairs a category with its count.
type EggCategoryCount struct {
	Category EggCategory
	Count    int
}

// SubmitRecordInput is the raw daily submission. Absent numeric fields decode
// to zero and are accepted as such. The ingreso/salida fields are manual
// inventory adjustments that feed the ledgers but are not persisted on the
// record itself.
type SubmitRecordInput struct {
	Date            *time.Time `json:"fecha"`
	MortalityFemale int        `json:"mortalidadHembra"`
	MortalityMale   int        `json:"mortalidadMacho"`
	FeedFemaleKg    float64    `json:"alimentoHembra"`
	FeedMaleKg      float64    `json:"alimentoMacho"`
	EggFertileA     int        `json:"huevoFertilA"`
	EggFertileB     int        `json:"huevoFertilB"`
	EggJumbo        int        `json:"huevoJumbo"`
	EggLarge        int        `json:"huevoGrande"`
	EggMedium       int        `json:"huevoMediano"`
	EggSmall        int        `json:"huevoPequeno"`
	EggCracked      int        `json:"huevoPicado"`
	EggDiscard      int        `json:"huevoDesecho"`
	Notes           string     `json:"observaciones"`

	FeedIngressFemaleKg float64 `json:"ingresoAlimentoHembra"`
	FeedIngressMaleKg   float64 `json:"ingresoAlimentoMacho"`
	BirdIngressFemale   int     `json:"ingresoAvesHembra"`
	BirdIngressMale     int     `json:"ingresoAvesMacho"`

	EggEgressFertileA int `json:"salidaHuevoFertilA"`
	EggEgressFertileB int `json:"salidaHuevoFertilB"`
	EggEgressJumbo    int `json:"salidaHuevoJumbo"`
	EggEgressLarge    int `json:"salidaHuevoGrande"`
	EggEgressMedium   int `json:"salidaHuevoMediano"`
	EggEgressSmall    int `json:"salidaHuevoPequeno"`
	EggEgressCracked  int `json:"salidaHuevoPicado"`
	EggEgressDiscard  int `json:"salidaHuevoDesecho"`
}

// EggEgressCounts returns declared per-category egress quantities, in the same
// order as ProductionRecord.EggCategoryCounts.
func (in SubmitRecordInput) EggEgressCounts() []EggCategoryCount {
	return []EggCategoryCount{
		{EggFertilA, in.EggEgressFertileA},
		{EggFertilB, in.EggEgressFertileB},
		{EggJumbo, in.EggEgressJumbo},
		{EggGrande, in.EggEgressLarge},
		{EggMediano, in.EggEgressMedium},
		{EggPequeno, in.EggEgressSmall},
		{EggPicado, in.EggEgressCracked},
		{EggDesecho, in.EggEgressDiscard},
	}
}

// Period enumerates supported calendar windows for record listing.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Pagination describes page metadata returned alongside record listings.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}
