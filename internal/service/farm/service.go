// Package farm manages the farm-configuration singleton.
package farm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/repository/mongodb"
)

// Service exposes admin-only read/update of the configuration document.
type Service struct {
	configs mongodb.ConfigStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a farm-configuration service instance.
func NewService(configs mongodb.ConfigStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{configs: configs, logger: logger, now: time.Now}
}

// GetOrInit returns the configuration, creating it with defaults when absent.
// The find-then-insert is not serialized: two concurrent first reads can both
// insert. That is tolerated for this read-mostly admin document; each caller
// uses the document its own call returned.
func (s *Service) GetOrInit(ctx context.Context, actor identity.Actor) (models.FarmConfiguration, error) {
	if !actor.Is(models.RoleAdmin) {
		return models.FarmConfiguration{}, models.ErrForbidden
	}

	cfg, err := s.configs.Find(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.FarmConfiguration{}, err
	}

	cfg = models.DefaultFarmConfiguration()
	cfg.UpdatedAt = s.now()
	created, err := s.configs.Insert(ctx, cfg)
	if err != nil {
		return models.FarmConfiguration{}, err
	}
	s.logger.Info("farm configuration initialized with defaults")
	return created, nil
}

// Update replaces the configuration wholesale, creating it when absent.
func (s *Service) Update(ctx context.Context, actor identity.Actor, input models.FarmConfigurationInput) (models.FarmConfiguration, error) {
	if !actor.Is(models.RoleAdmin) {
		return models.FarmConfiguration{}, models.ErrForbidden
	}

	next := models.FarmConfiguration{
		Name:                input.Name,
		TotalFemales:        input.TotalFemales,
		TotalMales:          input.TotalMales,
		MaxMortalityPercent: input.MaxMortalityPercent,
		FeedFemaleMinKg:     input.FeedFemaleMinKg,
		FeedFemaleMaxKg:     input.FeedFemaleMaxKg,
		FeedMaleMinKg:       input.FeedMaleMinKg,
		FeedMaleMaxKg:       input.FeedMaleMaxKg,
		MinProductionPct:    input.MinProductionPct,
		MinFertilityPct:     input.MinFertilityPct,
		UpdatedAt:           s.now(),
	}

	current, err := s.configs.Find(ctx)
	if errors.Is(err, models.ErrNotFound) {
		return s.configs.Insert(ctx, next)
	}
	if err != nil {
		return models.FarmConfiguration{}, err
	}

	next.ID = current.ID
	return s.configs.Replace(ctx, next)
}
