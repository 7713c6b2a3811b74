package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
)

type fakeMovementStore struct {
	feed  []models.FeedMovement
	birds []models.BirdMovement
	eggs  []models.EggMovement

	feedRange [2]time.Time
}

func (f *fakeMovementStore) InsertFeed(_ context.Context, m []models.FeedMovement) error {
	f.feed = append(f.feed, m...)
	return nil
}

func (f *fakeMovementStore) InsertBirds(_ context.Context, m []models.BirdMovement) error {
	f.birds = append(f.birds, m...)
	return nil
}

func (f *fakeMovementStore) InsertEggs(_ context.Context, m []models.EggMovement) error {
	f.eggs = append(f.eggs, m...)
	return nil
}

func (f *fakeMovementStore) FeedBetween(_ context.Context, start, end time.Time) ([]models.FeedMovement, error) {
	f.feedRange = [2]time.Time{start, end}
	return f.feed, nil
}

func (f *fakeMovementStore) BirdsBetween(_ context.Context, start, end time.Time) ([]models.BirdMovement, error) {
	return f.birds, nil
}

func (f *fakeMovementStore) EggsBetween(_ context.Context, start, end time.Time) ([]models.EggMovement, error) {
	return f.eggs, nil
}

func supervisorActor() identity.Actor {
	return identity.Actor{UserID: primitive.NewObjectID(), Name: "María Supervisora", Role: models.RoleSupervisor}
}

func newTestService(store *fakeMovementStore) *Service {
	svc := NewService(store, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestBalancesWindowBounds(t *testing.T) {
	store := &fakeMovementStore{}
	svc := newTestService(store)

	summary, err := svc.Balances(context.Background(), supervisorActor(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.PeriodDays)
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), summary.Start)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), summary.End)
	assert.Equal(t, summary.Start, store.feedRange[0])
}

func TestBalancesDefaultsWindow(t *testing.T) {
	svc := newTestService(&fakeMovementStore{})

	summary, err := svc.Balances(context.Background(), supervisorActor(), 0)
	require.NoError(t, err)
	assert.Equal(t, 7, summary.PeriodDays)
}

func TestBalancesEmptyLedgers(t *testing.T) {
	svc := newTestService(&fakeMovementStore{})

	summary, err := svc.Balances(context.Background(), supervisorActor(), 30)
	require.NoError(t, err)
	assert.Equal(t, FeedBalance{}, summary.Feed)
	assert.Equal(t, BirdBalance{}, summary.Birds)
	assert.Equal(t, EggBalance{}, summary.Eggs)
}

func TestBalancesRequiresIdentity(t *testing.T) {
	svc := newTestService(&fakeMovementStore{})

	_, err := svc.Balances(context.Background(), identity.Actor{}, 7)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestAddFeedMovementValidation(t *testing.T) {
	store := &fakeMovementStore{}
	svc := newTestService(store)
	actor := supervisorActor()

	_, err := svc.AddFeedMovement(context.Background(), actor, models.MovementMortality, models.SexFemale, 10)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.AddFeedMovement(context.Background(), actor, models.MovementIngress, "OTRO", 10)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.AddFeedMovement(context.Background(), actor, models.MovementIngress, models.SexFemale, 0)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	movement, err := svc.AddFeedMovement(context.Background(), actor, models.MovementIngress, models.SexFemale, 250)
	require.NoError(t, err)
	assert.Nil(t, movement.RecordID)
	require.Len(t, store.feed, 1)
	assert.Equal(t, 250.0, store.feed[0].QuantityKg)
}

func TestAddBirdMovementValidation(t *testing.T) {
	store := &fakeMovementStore{}
	svc := newTestService(store)
	actor := supervisorActor()

	_, err := svc.AddBirdMovement(context.Background(), actor, models.MovementEgress, models.SexMale, 5)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	movement, err := svc.AddBirdMovement(context.Background(), actor, models.MovementMortality, models.SexMale, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, movement.Quantity)
	assert.Len(t, store.birds, 1)
}

func TestAddEggMovementValidation(t *testing.T) {
	store := &fakeMovementStore{}
	svc := newTestService(store)
	actor := supervisorActor()

	_, err := svc.AddEggMovement(context.Background(), actor, models.MovementConsumption, models.EggJumbo, 5)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.AddEggMovement(context.Background(), actor, models.MovementEgress, "EXTRA", 5)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	movement, err := svc.AddEggMovement(context.Background(), actor, models.MovementEgress, models.EggFertilA, 120)
	require.NoError(t, err)
	assert.Equal(t, models.EggFertilA, movement.Category)
	assert.Len(t, store.eggs, 1)
}
