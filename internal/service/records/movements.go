package records

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// BuildMovements derives ledger entries from a persisted record plus the
// manual ingress/egress quantities declared on the raw submission. A draft is
// emitted only when its quantity is strictly positive; zero or negative
// quantities are dropped silently.
func BuildMovements(record models.ProductionRecord, input models.SubmitRecordInput) ([]models.FeedMovement, []models.BirdMovement, []models.EggMovement) {
	var ref *primitive.ObjectID
	if !record.ID.IsZero() {
		id := record.ID
		ref = &id
	}

	var feed []models.FeedMovement
	addFeed := func(t models.MovementType, sex models.Sex, kg float64) {
		if kg <= 0 {
			return
		}
		feed = append(feed, models.FeedMovement{
			Date: record.Date, Type: t, Sex: sex, QuantityKg: kg, RecordID: ref,
		})
	}
	addFeed(models.MovementConsumption, models.SexFemale, record.FeedFemaleKg)
	addFeed(models.MovementConsumption, models.SexMale, record.FeedMaleKg)
	addFeed(models.MovementIngress, models.SexFemale, input.FeedIngressFemaleKg)
	addFeed(models.MovementIngress, models.SexMale, input.FeedIngressMaleKg)

	var birds []models.BirdMovement
	addBird := func(t models.MovementType, sex models.Sex, qty int) {
		if qty <= 0 {
			return
		}
		birds = append(birds, models.BirdMovement{
			Date: record.Date, Type: t, Sex: sex, Quantity: qty, RecordID: ref,
		})
	}
	addBird(models.MovementMortality, models.SexFemale, record.MortalityFemale)
	addBird(models.MovementMortality, models.SexMale, record.MortalityMale)
	addBird(models.MovementIngress, models.SexFemale, input.BirdIngressFemale)
	addBird(models.MovementIngress, models.SexMale, input.BirdIngressMale)

	var eggs []models.EggMovement
	addEgg := func(t models.MovementType, cat models.EggCategory, qty int) {
		if qty <= 0 {
			return
		}
		eggs = append(eggs, models.EggMovement{
			Date: record.Date, Type: t, Category: cat, Quantity: qty, RecordID: ref,
		})
	}
	for _, c := range record.EggCategoryCounts() {
		addEgg(models.MovementIngress, c.Category, c.Count)
	}
	for _, c := range input.EggEgressCounts() {
		addEgg(models.MovementEgress, c.Category, c.Count)
	}

	return feed, birds, eggs
}
