package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
)

func TestNormalizeRecomputesTotals(t *testing.T) {
	actor := testActor()
	now := time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)

	record, err := Normalize(models.SubmitRecordInput{
		EggFertileA: 100,
		EggFertileB: 50,
		EggJumbo:    5,
		EggDiscard:  3,
	}, actor, now)
	require.NoError(t, err)

	assert.Equal(t, 158, record.TotalEggs)
	assert.Equal(t, 150, record.TotalFertile)
}

func TestNormalizeDefaultsDateToToday(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)

	record, err := Normalize(models.SubmitRecordInput{}, testActor(), now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, now, record.CreatedAt)
}

func TestNormalizeTruncatesExplicitDate(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)
	explicit := time.Date(2024, 3, 12, 18, 45, 12, 0, time.UTC)

	record, err := Normalize(models.SubmitRecordInput{Date: &explicit}, testActor(), now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), record.Date)
}

func TestNormalizeAttributesActor(t *testing.T) {
	actor := testActor()

	record, err := Normalize(models.SubmitRecordInput{Notes: "  turno de la mañana  "}, actor, time.Now())
	require.NoError(t, err)

	assert.Equal(t, actor.UserID, record.SubmittedBy)
	assert.Equal(t, actor.Name, record.SubmittedByName)
	assert.Equal(t, "turno de la mañana", record.Notes)
}

func TestNormalizeRequiresIdentity(t *testing.T) {
	_, err := Normalize(models.SubmitRecordInput{}, identity.Actor{}, time.Now())
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}
