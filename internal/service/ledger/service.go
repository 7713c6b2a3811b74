// Package ledger owns the three inventory ledgers: manual movement entry and
// date-ranged balance aggregation. Balances are always derived from the
// movement set, never stored.
package ledger

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/repository/mongodb"
)

const defaultWindowDays = 7

// Service exposes ledger operations.
type Service struct {
	movements mongodb.MovementStore
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a ledger service instance.
func NewService(movements mongodb.MovementStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{movements: movements, logger: logger, now: time.Now}
}

// Balances aggregates the three ledgers over a lookback window of the given
// number of days (today included). The aggregation reads a snapshot and
// performs no mutation; repeated calls over unchanged ledgers yield identical
// results.
func (s *Service) Balances(ctx context.Context, actor identity.Actor, days int) (Summary, error) {
	if !actor.Authenticated() {
		return Summary{}, models.ErrUnauthenticated
	}
	if days < 1 {
		days = defaultWindowDays
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -(days - 1))

	feed, err := s.movements.FeedBetween(ctx, start, now)
	if err != nil {
		return Summary{}, err
	}
	birds, err := s.movements.BirdsBetween(ctx, start, now)
	if err != nil {
		return Summary{}, err
	}
	eggs, err := s.movements.EggsBetween(ctx, start, now)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		PeriodDays: days,
		Start:      start,
		End:        today,
		Feed:       ComputeFeed(feed),
		Birds:      ComputeBirds(birds),
		Eggs:       ComputeEggs(eggs),
	}, nil
}

// AddFeedMovement records a manual feed ledger entry with no originating
// record.
func (s *Service) AddFeedMovement(ctx context.Context, actor identity.Actor, movementType models.MovementType, sex models.Sex, quantityKg float64) (models.FeedMovement, error) {
	if !actor.Authenticated() {
		return models.FeedMovement{}, models.ErrUnauthenticated
	}
	if movementType != models.MovementIngress && movementType != models.MovementConsumption {
		return models.FeedMovement{}, fmt.Errorf("%w: tipo %q no aplica al alimento", models.ErrInvalidInput, movementType)
	}
	if sex != models.SexFemale && sex != models.SexMale {
		return models.FeedMovement{}, fmt.Errorf("%w: sexo %q", models.ErrInvalidInput, sex)
	}
	if quantityKg <= 0 {
		return models.FeedMovement{}, fmt.Errorf("%w: la cantidad debe ser positiva", models.ErrInvalidInput)
	}

	movement := models.FeedMovement{
		Date:       s.now(),
		Type:       movementType,
		Sex:        sex,
		QuantityKg: quantityKg,
	}
	if err := s.movements.InsertFeed(ctx, []models.FeedMovement{movement}); err != nil {
		return models.FeedMovement{}, err
	}
	return movement, nil
}

// AddBirdMovement records a manual bird ledger entry. The handler layer
// restricts this to supervisors.
func (s *Service) AddBirdMovement(ctx context.Context, actor identity.Actor, movementType models.MovementType, sex models.Sex, quantity int) (models.BirdMovement, error) {
	if !actor.Authenticated() {
		return models.BirdMovement{}, models.ErrUnauthenticated
	}
	if movementType != models.MovementIngress && movementType != models.MovementMortality {
		return models.BirdMovement{}, fmt.Errorf("%w: tipo %q no aplica a las aves", models.ErrInvalidInput, movementType)
	}
	if sex != models.SexFemale && sex != models.SexMale {
		return models.BirdMovement{}, fmt.Errorf("%w: sexo %q", models.ErrInvalidInput, sex)
	}
	if quantity <= 0 {
		return models.BirdMovement{}, fmt.Errorf("%w: la cantidad debe ser positiva", models.ErrInvalidInput)
	}

	movement := models.BirdMovement{
		Date:     s.now(),
		Type:     movementType,
		Sex:      sex,
		Quantity: quantity,
	}
	if err := s.movements.InsertBirds(ctx, []models.BirdMovement{movement}); err != nil {
		return models.BirdMovement{}, err
	}
	return movement, nil
}

// AddEggMovement records a manual egg ledger entry.
func (s *Service) AddEggMovement(ctx context.Context, actor identity.Actor, movementType models.MovementType, category models.EggCategory, quantity int) (models.EggMovement, error) {
	if !actor.Authenticated() {
		return models.EggMovement{}, models.ErrUnauthenticated
	}
	if movementType != models.MovementIngress && movementType != models.MovementEgress {
		return models.EggMovement{}, fmt.Errorf("%w: tipo %q no aplica a los huevos", models.ErrInvalidInput, movementType)
	}
	if !models.ValidEggCategory(category) {
		return models.EggMovement{}, fmt.Errorf("%w: categoría %q", models.ErrInvalidInput, category)
	}
	if quantity <= 0 {
		return models.EggMovement{}, fmt.Errorf("%w: la cantidad debe ser positiva", models.ErrInvalidInput)
	}

	movement := models.EggMovement{
		Date:     s.now(),
		Type:     movementType,
		Category: category,
		Quantity: quantity,
	}
	if err := s.movements.InsertEggs(ctx, []models.EggMovement{movement}); err != nil {
		return models.EggMovement{}, err
	}
	return movement, nil
}
