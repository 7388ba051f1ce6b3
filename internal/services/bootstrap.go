package services

import (
	"context"
	"errors"
	"fmt"

	"packcatalog/internal/cache"
	"packcatalog/internal/domain"
	applog "packcatalog/internal/log"
)

const AdminUsername = "admin"

var seedProducts = []domain.InsertProduct{
	{
		Name:        "25ml Measuring Cup",
		Category:    "Measuring Cups",
		Description: "High quality PP measuring cup for syrups and liquid medicines.",
		Specs: domain.Specs{
			"material": "Polypropylene (PP)",
			"capacity": "25ml",
			"weight":   "2.5g",
			"shape":    "Cylindrical",
		},
		Images:          domain.Images{"https://placehold.co/600x400?text=Measuring+Cup"},
		WhatsappEnabled: true,
	},
	{
		Name:        "Aluminum Blister Foil",
		Category:    "Foils",
		Description: "Pharmaceutical grade aluminum blister foil for tablet packaging.",
		Specs: domain.Specs{
			"material":      "Aluminum",
			"supplyAbility": "500 Tons/Month",
			"deliveryTime":  "7-10 Days",
		},
		Images:          domain.Images{"https://placehold.co/600x400?text=Blister+Foil"},
		WhatsappEnabled: true,
	},
	{
		Name:        "Plastic Pharma Tray",
		Category:    "Trays",
		Description: "Durable plastic trays for ampoules and vials.",
		Specs: domain.Specs{
			"material": "PVC",
			"shape":    "Rectangular",
			"capacity": "10 Ampoules",
		},
		Images:          domain.Images{"https://placehold.co/600x400?text=Pharma+Tray"},
		WhatsappEnabled: true,
	},
}

// Bootstrap seeds the admin user and the example catalog when they are
// missing. It relies on existence checks only: two instances starting
// against an empty store at the same time can both try to seed.
// Seeding products drops cached listings from c, which may be nil.
func Bootstrap(ctx context.Context, store Storage, c cache.Cache, adminPassword string) error {
	l := applog.Get()

	_, err := store.GetUserByUsername(ctx, AdminUsername)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		hash, err := HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		if _, err := store.CreateUser(ctx, domain.InsertUser{Username: AdminUsername, Password: hash, IsAdmin: true}); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		l.Info().Str("username", AdminUsername).Msg("seed: created admin user")
	case err != nil:
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	existing, err := store.GetProducts(ctx, "", "")
	if err != nil {
		return fmt.Errorf("seed products lookup: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, p := range seedProducts {
		if _, err := store.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	l.Info().Int("count", len(seedProducts)).Msg("seed: inserted example products")

	if c != nil {
		if err := c.Invalidate(ctx, productListPrefix); err != nil {
			l.Warn().Err(err).Msg("seed: product cache invalidation failed")
		}
	}
	return nil
}
