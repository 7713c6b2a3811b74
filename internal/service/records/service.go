package records

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/repository/mongodb"
)

const defaultPageSize = 10

// Service runs the production-record ingestion pipeline and serves listings.
type Service struct {
	records   mongodb.RecordStore
	movements mongodb.MovementStore
	alerts    mongodb.AlertStore
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a records service instance.
func NewService(records mongodb.RecordStore, movements mongodb.MovementStore, alerts mongodb.AlertStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		records:   records,
		movements: movements,
		alerts:    alerts,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit runs the ingestion pipeline: normalize the raw input, persist the
// record, derive ledger movements, evaluate alerts. The three writes are
// separate operations, not a transaction. Once the record itself is persisted
// the submission succeeds; movement-batch or alert-batch failures are logged
// with the record id for manual reconciliation and do not fail the request.
func (s *Service) Submit(ctx context.Context, actor identity.Actor, input models.SubmitRecordInput) (models.ProductionRecord, error) {
	record, err := Normalize(input, actor, s.now())
	if err != nil {
		return models.ProductionRecord{}, err
	}

	persisted, err := s.records.Insert(ctx, record)
	if err != nil {
		s.logger.Error("record insert failed", zap.Error(err))
		return models.ProductionRecord{}, err
	}

	s.applyMovements(ctx, persisted, input)
	s.applyAlerts(ctx, persisted)

	return persisted, nil
}

func (s *Service) applyMovements(ctx context.Context, record models.ProductionRecord, input models.SubmitRecordInput) {
	feed, birds, eggs := BuildMovements(record, input)

	if err := s.movements.InsertFeed(ctx, feed); err != nil {
		s.logger.Error("feed movement batch failed",
			zap.String("record_id", record.ID.Hex()), zap.Error(err))
	}
	if err := s.movements.InsertBirds(ctx, birds); err != nil {
		s.logger.Error("bird movement batch failed",
			zap.String("record_id", record.ID.Hex()), zap.Error(err))
	}
	if err := s.movements.InsertEggs(ctx, eggs); err != nil {
		s.logger.Error("egg movement batch failed",
			zap.String("record_id", record.ID.Hex()), zap.Error(err))
	}
}

func (s *Service) applyAlerts(ctx context.Context, record models.ProductionRecord) {
	alerts := EvaluateAlerts(record)
	if len(alerts) == 0 {
		return
	}
	if err := s.alerts.InsertBatch(ctx, alerts); err != nil {
		s.logger.Error("alert batch failed",
			zap.String("record_id", record.ID.Hex()),
			zap.Int("alerts", len(alerts)), zap.Error(err))
		return
	}
	s.logger.Info("alerts generated",
		zap.String("record_id", record.ID.Hex()), zap.Int("alerts", len(alerts)))
}

// ListOptions controls pagination and filtering of record listings.
type ListOptions struct {
	Page      int
	Limit     int
	Period    models.Period
	ExportAll bool
}

// List returns records visible to the actor, newest first. Operators only see
// their own submissions. When ExportAll is set pagination is bypassed and no
// page metadata is returned.
func (s *Service) List(ctx context.Context, actor identity.Actor, opts ListOptions) ([]models.ProductionRecord, *models.Pagination, error) {
	if !actor.Authenticated() {
		return nil, nil, models.ErrUnauthenticated
	}

	var filter mongodb.RecordFilter
	if actor.Role == models.RoleOperario {
		uid := actor.UserID
		filter.UserID = &uid
	}

	if opts.Period != "" {
		start, end, err := PeriodRange(s.now(), opts.Period)
		if err != nil {
			return nil, nil, err
		}
		filter.Start = &start
		filter.End = &end
	}

	if opts.ExportAll {
		records, _, err := s.records.List(ctx, filter)
		return records, nil, err
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	filter.Skip = int64(page-1) * int64(limit)
	filter.Limit = int64(limit)

	records, total, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return records, &models.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}, nil
}
