package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

func TestComputeFeedNetsPerSex(t *testing.T) {
	movements := []models.FeedMovement{
		{Type: models.MovementIngress, Sex: models.SexFemale, QuantityKg: 500},
		{Type: models.MovementConsumption, Sex: models.SexFemale, QuantityKg: 120.5},
		{Type: models.MovementConsumption, Sex: models.SexFemale, QuantityKg: 118},
		{Type: models.MovementIngress, Sex: models.SexMale, QuantityKg: 100},
		{Type: models.MovementConsumption, Sex: models.SexMale, QuantityKg: 30},
	}

	b := ComputeFeed(movements)
	assert.InDelta(t, 261.5, b.Female, 1e-9)
	assert.InDelta(t, 70, b.Male, 1e-9)
	assert.InDelta(t, 331.5, b.Total, 1e-9)
}

func TestComputeFeedEmpty(t *testing.T) {
	assert.Equal(t, FeedBalance{}, ComputeFeed(nil))
}

func TestComputeBirdsKeepsIngressAndMortalitySeparate(t *testing.T) {
	movements := []models.BirdMovement{
		{Type: models.MovementIngress, Sex: models.SexFemale, Quantity: 100},
		{Type: models.MovementMortality, Sex: models.SexFemale, Quantity: 6},
		{Type: models.MovementMortality, Sex: models.SexFemale, Quantity: 2},
		{Type: models.MovementMortality, Sex: models.SexMale, Quantity: 1},
	}

	b := ComputeBirds(movements)
	assert.Equal(t, 100, b.IngressFemale)
	assert.Equal(t, 0, b.IngressMale)
	assert.Equal(t, 8, b.MortalityFemale)
	assert.Equal(t, 1, b.MortalityMale)
	assert.Equal(t, 9, b.MortalityTotal)
}

func TestComputeBirdsEmpty(t *testing.T) {
	assert.Equal(t, BirdBalance{}, ComputeBirds(nil))
}

func TestComputeEggsRollups(t *testing.T) {
	movements := []models.EggMovement{
		{Type: models.MovementIngress, Category: models.EggFertilA, Quantity: 180},
		{Type: models.MovementIngress, Category: models.EggFertilB, Quantity: 160},
		{Type: models.MovementIngress, Category: models.EggJumbo, Quantity: 10},
		{Type: models.MovementIngress, Category: models.EggGrande, Quantity: 20},
		{Type: models.MovementIngress, Category: models.EggMediano, Quantity: 15},
		{Type: models.MovementIngress, Category: models.EggPequeno, Quantity: 10},
		{Type: models.MovementIngress, Category: models.EggPicado, Quantity: 3},
		{Type: models.MovementIngress, Category: models.EggDesecho, Quantity: 2},
		{Type: models.MovementEgress, Category: models.EggJumbo, Quantity: 4},
	}

	b := ComputeEggs(movements)
	assert.Equal(t, 180, b.FertilA)
	assert.Equal(t, 6, b.Jumbo)
	assert.Equal(t, 340, b.Fertile)
	assert.Equal(t, 44, b.Commercial)
	assert.Equal(t, 2, b.Discarded)
	assert.Equal(t, 386, b.Total)
}

func TestComputeEggsCanGoNegative(t *testing.T) {
	movements := []models.EggMovement{
		{Type: models.MovementIngress, Category: models.EggJumbo, Quantity: 5},
		{Type: models.MovementEgress, Category: models.EggJumbo, Quantity: 8},
	}

	b := ComputeEggs(movements)
	assert.Equal(t, -3, b.Jumbo)
}

func TestComputeEggsIdempotent(t *testing.T) {
	movements := []models.EggMovement{
		{Type: models.MovementIngress, Category: models.EggGrande, Quantity: 12},
		{Type: models.MovementEgress, Category: models.EggGrande, Quantity: 5},
	}

	assert.Equal(t, ComputeEggs(movements), ComputeEggs(movements))
}
