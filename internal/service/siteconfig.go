package service

import (
	"context"
	"fmt"

	"minecoin/internal/model"
	"minecoin/internal/repository"
	"minecoin/internal/store"
)

// SiteConfigService handles the singleton site configuration.
type SiteConfigService struct {
	config repository.ConfigRepository
}

// NewSiteConfigService creates a new site config service.
func NewSiteConfigService(config repository.ConfigRepository) *SiteConfigService {
	return &SiteConfigService{config: config}
}

// Get returns the current site configuration, falling back to defaults if
// the singleton has not been persisted yet.
func (s *SiteConfigService) Get(ctx context.Context) (*model.SiteConfig, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}
	if cfg == nil {
		def := store.DefaultConfig()
		cfg = &def
	}
	return cfg, nil
}

// Update merges the non-nil fields of the update onto the stored singleton
// and returns the merged result. The singleton is never fully replaced.
func (s *SiteConfigService) Update(ctx context.Context, update *model.SiteConfigUpdate) (*model.SiteConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Apply(update)
	if err := s.config.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save site config: %w", err)
	}
	return cfg, nil
}
