package service

import (
	"github.com/letybo/ordering/internal/config"
	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/loyalty"
	"github.com/letybo/ordering/internal/logger"
	"github.com/samber/lo"
)

// LoadCatalog returns the catalog file named in config, or the built-in
// reference catalog when none is set. An invalid file fails startup.
func LoadCatalog(cfg *config.Configuration, log *logger.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.File == "" {
		log.Infow("using reference catalog")
		return catalog.Reference(), nil
	}

	c, err := catalog.LoadFile(cfg.Catalog.File)
	if err != nil {
		log.Errorw("catalog failed to load", "file", cfg.Catalog.File, "error", err)
		return nil, err
	}

	log.Infow("loaded catalog",
		"file", cfg.Catalog.File,
		"strategy", c.PricingStrategy,
		"tiers", len(c.Tiers),
		"plans", len(c.Plans),
	)
	return c, nil
}

// NewLoyaltyTracker builds the tracker from loyalty.tiers, falling back to
// the default ladder
func NewLoyaltyTracker(cfg *config.Configuration) (*loyalty.Tracker, error) {
	if len(cfg.Loyalty.Tiers) == 0 {
		return loyalty.NewTracker(loyalty.DefaultLadder())
	}

	ladder := lo.Map(cfg.Loyalty.Tiers, func(t config.LoyaltyTierConfig, _ int) loyalty.TierName {
		return loyalty.TierName{Name: t.Name, Threshold: t.Threshold}
	})
	return loyalty.NewTracker(ladder)
}
