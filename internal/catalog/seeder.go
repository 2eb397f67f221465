package catalog

import (
	"context"
	"fmt"
	"time"

	"canasta/internal/model"
	"canasta/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seeder imports catalogue seed files into the product table. Products are
// upserted by SKU, so running the same seed twice is idempotent and an
// updated seed refreshes names and descriptions in place.
type Seeder struct {
	loader   Loader
	products repository.ProductRepository
	logger   zerolog.Logger
}

// NewSeeder creates a new catalogue seeder.
func NewSeeder(loader Loader, products repository.ProductRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:   loader,
		products: products,
		logger:   logger.With().Str("component", "catalog-seeder").Logger(),
	}
}

// Run imports every given seed source in order. It fails fast: a bad file
// aborts the run so a partial catalogue is noticed at startup, not later.
func (s *Seeder) Run(ctx context.Context, sources []string) error {
	started := time.Now()
	total := 0

	for _, source := range sources {
		records, err := s.loader.Load(ctx, source)
		if err != nil {
			return fmt.Errorf("failed to load seed source %s: %w", source, err)
		}

		for _, record := range records {
			now := time.Now()
			product := &model.Product{
				ID:          uuid.New(),
				SKU:         record.SKU,
				Name:        record.Name,
				Description: record.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			}

			if err := s.products.UpsertBySKU(ctx, product); err != nil {
				return fmt.Errorf("failed to import product %s: %w", record.SKU, err)
			}
		}

		total += len(records)
	}

	s.logger.Info().
		Int("sources", len(sources)).
		Int("products", total).
		Dur("duration", time.Since(started)).
		Msg("catalogue seed completed")

	return nil
}
