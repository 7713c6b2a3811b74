package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/repository/mongodb"
)

type fakeRecordStore struct {
	records   []models.ProductionRecord
	insertErr error
}

func (f *fakeRecordStore) Insert(_ context.Context, record models.ProductionRecord) (models.ProductionRecord, error) {
	if f.insertErr != nil {
		return models.ProductionRecord{}, f.insertErr
	}
	record.ID = primitive.NewObjectID()
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeRecordStore) List(_ context.Context, filter mongodb.RecordFilter) ([]models.ProductionRecord, int64, error) {
	var matched []models.ProductionRecord
	for _, r := range f.records {
		if filter.UserID != nil && r.SubmittedBy != *filter.UserID {
			continue
		}
		if filter.Start != nil && r.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && r.Date.After(*filter.End) {
			continue
		}
		matched = append(matched, r)
	}
	total := int64(len(matched))
	if filter.Limit > 0 {
		if filter.Skip < int64(len(matched)) {
			matched = matched[filter.Skip:]
		} else {
			matched = nil
		}
		if int64(len(matched)) > filter.Limit {
			matched = matched[:filter.Limit]
		}
	}
	return matched, total, nil
}

func (f *fakeRecordStore) ListBetween(_ context.Context, start, end time.Time) ([]models.ProductionRecord, error) {
	var matched []models.ProductionRecord
	for _, r := range f.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeRecordStore) CountByUser(_ context.Context, userID primitive.ObjectID) (int64, error) {
	var count int64
	for _, r := range f.records {
		if r.SubmittedBy == userID {
			count++
		}
	}
	return count, nil
}

type fakeMovementStore struct {
	feed  []models.FeedMovement
	birds []models.BirdMovement
	eggs  []models.EggMovement

	feedErr, birdsErr, eggsErr error
}

func (f *fakeMovementStore) InsertFeed(_ context.Context, m []models.FeedMovement) error {
	if f.feedErr != nil {
		return f.feedErr
	}
	f.feed = append(f.feed, m...)
	return nil
}

func (f *fakeMovementStore) InsertBirds(_ context.Context, m []models.BirdMovement) error {
	if f.birdsErr != nil {
		return f.birdsErr
	}
	f.birds = append(f.birds, m...)
	return nil
}

func (f *fakeMovementStore) InsertEggs(_ context.Context, m []models.EggMovement) error {
	if f.eggsErr != nil {
		return f.eggsErr
	}
	f.eggs = append(f.eggs, m...)
	return nil
}

func (f *fakeMovementStore) FeedBetween(_ context.Context, start, end time.Time) ([]models.FeedMovement, error) {
	return f.feed, nil
}

func (f *fakeMovementStore) BirdsBetween(_ context.Context, start, end time.Time) ([]models.BirdMovement, error) {
	return f.birds, nil
}

func (f *fakeMovementStore) EggsBetween(_ context.Context, start, end time.Time) ([]models.EggMovement, error) {
	return f.eggs, nil
}

type fakeAlertStore struct {
	alerts    []models.Alert
	batches   int
	insertErr error
}

func (f *fakeAlertStore) InsertBatch(_ context.Context, alerts []models.Alert) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.batches++
	f.alerts = append(f.alerts, alerts...)
	return nil
}

func (f *fakeAlertStore) Recent(_ context.Context, limit int64) ([]models.Alert, error) {
	return f.alerts, nil
}

func testActor() identity.Actor {
	return identity.Actor{UserID: primitive.NewObjectID(), Name: "Juan Operario", Role: models.RoleOperario}
}

func newTestService(records *fakeRecordStore, movements *fakeMovementStore, alerts *fakeAlertStore) *Service {
	svc := NewService(records, movements, alerts, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC) }
	return svc
}

func TestSubmitFullDay(t *testing.T) {
	recordStore := &fakeRecordStore{}
	movementStore := &fakeMovementStore{}
	alertStore := &fakeAlertStore{}
	svc := newTestService(recordStore, movementStore, alertStore)

	record, err := svc.Submit(context.Background(), testActor(), models.SubmitRecordInput{
		MortalityFemale: 6,
		EggFertileA:     180,
		EggFertileB:     160,
		EggJumbo:        10,
		EggLarge:        20,
		EggMedium:       15,
		EggSmall:        10,
		EggCracked:      3,
		EggDiscard:      2,
	})
	require.NoError(t, err)

	assert.Equal(t, 400, record.TotalEggs)
	assert.Equal(t, 340, record.TotalFertile)
	assert.False(t, record.ID.IsZero())

	// 85.0% fertility sits exactly on the threshold, so only the mortality
	// alert fires.
	require.Len(t, alertStore.alerts, 1)
	alert := alertStore.alerts[0]
	assert.Equal(t, models.AlertHighMortality, alert.Type)
	assert.Equal(t, models.SeverityCritical, alert.Severity)
	assert.Contains(t, alert.Description, "6 muertes")

	// One ingress movement per non-zero egg category, no feed movements, one
	// female mortality movement.
	assert.Len(t, movementStore.eggs, 8)
	for _, m := range movementStore.eggs {
		assert.Equal(t, models.MovementIngress, m.Type)
		assert.Positive(t, m.Quantity)
		require.NotNil(t, m.RecordID)
		assert.Equal(t, record.ID, *m.RecordID)
	}
	assert.Empty(t, movementStore.feed)
	require.Len(t, movementStore.birds, 1)
	assert.Equal(t, models.MovementMortality, movementStore.birds[0].Type)
	assert.Equal(t, models.SexFemale, movementStore.birds[0].Sex)
	assert.Equal(t, 6, movementStore.birds[0].Quantity)
}

func TestSubmitEmptyDay(t *testing.T) {
	recordStore := &fakeRecordStore{}
	movementStore := &fakeMovementStore{}
	alertStore := &fakeAlertStore{}
	svc := newTestService(recordStore, movementStore, alertStore)

	record, err := svc.Submit(context.Background(), testActor(), models.SubmitRecordInput{})
	require.NoError(t, err)

	assert.Equal(t, 0, record.TotalEggs)
	assert.Empty(t, movementStore.eggs)
	assert.Empty(t, movementStore.feed)
	assert.Empty(t, movementStore.birds)

	// Zero eggs: low production fires, low fertility is guarded.
	require.Len(t, alertStore.alerts, 1)
	assert.Equal(t, models.AlertLowProduction, alertStore.alerts[0].Type)
}

func TestSubmitRejectsUnauthenticated(t *testing.T) {
	svc := newTestService(&fakeRecordStore{}, &fakeMovementStore{}, &fakeAlertStore{})

	_, err := svc.Submit(context.Background(), identity.Actor{}, models.SubmitRecordInput{})
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestSubmitDegradedSuccessOnMovementFailure(t *testing.T) {
	recordStore := &fakeRecordStore{}
	movementStore := &fakeMovementStore{eggsErr: errors.New("mongo down")}
	alertStore := &fakeAlertStore{}
	svc := newTestService(recordStore, movementStore, alertStore)

	record, err := svc.Submit(context.Background(), testActor(), models.SubmitRecordInput{
		EggFertileA: 50,
	})

	// The record write is the transaction of record: downstream ledger failure
	// is logged, not surfaced.
	require.NoError(t, err)
	assert.False(t, record.ID.IsZero())
	assert.Len(t, recordStore.records, 1)
	assert.Empty(t, movementStore.eggs)

	// Alert evaluation still runs after the failed movement stage.
	assert.NotEmpty(t, alertStore.alerts)
}

func TestSubmitDegradedSuccessOnAlertFailure(t *testing.T) {
	recordStore := &fakeRecordStore{}
	alertStore := &fakeAlertStore{insertErr: errors.New("mongo down")}
	svc := newTestService(recordStore, &fakeMovementStore{}, alertStore)

	_, err := svc.Submit(context.Background(), testActor(), models.SubmitRecordInput{})
	require.NoError(t, err)
	assert.Len(t, recordStore.records, 1)
}

func TestSubmitPropagatesRecordInsertFailure(t *testing.T) {
	recordStore := &fakeRecordStore{insertErr: errors.New("mongo down")}
	svc := newTestService(recordStore, &fakeMovementStore{}, &fakeAlertStore{})

	_, err := svc.Submit(context.Background(), testActor(), models.SubmitRecordInput{})
	assert.Error(t, err)
}

func TestListScopesOperatorToOwnRecords(t *testing.T) {
	operator := testActor()
	other := primitive.NewObjectID()

	recordStore := &fakeRecordStore{records: []models.ProductionRecord{
		{ID: primitive.NewObjectID(), SubmittedBy: operator.UserID, Date: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		{ID: primitive.NewObjectID(), SubmittedBy: other, Date: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newTestService(recordStore, &fakeMovementStore{}, &fakeAlertStore{})

	list, pagination, err := svc.List(context.Background(), operator, ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, operator.UserID, list[0].SubmittedBy)
	require.NotNil(t, pagination)
	assert.Equal(t, int64(1), pagination.Total)

	supervisor := identity.Actor{UserID: primitive.NewObjectID(), Role: models.RoleSupervisor}
	list, _, err = svc.List(context.Background(), supervisor, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListPaginationMetadata(t *testing.T) {
	recordStore := &fakeRecordStore{}
	for i := 0; i < 25; i++ {
		recordStore.records = append(recordStore.records, models.ProductionRecord{
			ID:          primitive.NewObjectID(),
			SubmittedBy: primitive.NewObjectID(),
			Date:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		})
	}
	svc := newTestService(recordStore, &fakeMovementStore{}, &fakeAlertStore{})
	admin := identity.Actor{UserID: primitive.NewObjectID(), Role: models.RoleAdmin}

	list, pagination, err := svc.List(context.Background(), admin, ListOptions{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 5)
	require.NotNil(t, pagination)
	assert.Equal(t, 3, pagination.Page)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, int64(3), pagination.Pages)
}

func TestListExportBypassesPagination(t *testing.T) {
	recordStore := &fakeRecordStore{}
	for i := 0; i < 25; i++ {
		recordStore.records = append(recordStore.records, models.ProductionRecord{
			ID:          primitive.NewObjectID(),
			SubmittedBy: primitive.NewObjectID(),
			Date:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		})
	}
	svc := newTestService(recordStore, &fakeMovementStore{}, &fakeAlertStore{})
	admin := identity.Actor{UserID: primitive.NewObjectID(), Role: models.RoleAdmin}

	list, pagination, err := svc.List(context.Background(), admin, ListOptions{ExportAll: true})
	require.NoError(t, err)
	assert.Len(t, list, 25)
	assert.Nil(t, pagination)
}

func TestListPeriodFiltersByWindow(t *testing.T) {
	// now is Thursday 2024-03-14; the Monday-start week covers 03-11..03-17.
	recordStore := &fakeRecordStore{records: []models.ProductionRecord{
		{ID: primitive.NewObjectID(), SubmittedBy: primitive.NewObjectID(), Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{ID: primitive.NewObjectID(), SubmittedBy: primitive.NewObjectID(), Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newTestService(recordStore, &fakeMovementStore{}, &fakeAlertStore{})
	admin := identity.Actor{UserID: primitive.NewObjectID(), Role: models.RoleAdmin}

	list, _, err := svc.List(context.Background(), admin, ListOptions{Period: models.PeriodWeek})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 11, list[0].Date.Day())
}
