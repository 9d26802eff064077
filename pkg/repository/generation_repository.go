package repository

import (
	"context"
	"fmt"

	"github.com/dskvich/location-images/pkg/domain"
	"github.com/uptrace/bun"
)

type generationRepository struct {
	db *bun.DB
}

func NewGenerationRepository(db *bun.DB) *generationRepository {
	return &generationRepository{db: db}
}

func (g *generationRepository) Save(ctx context.Context, gen *domain.Generation) error {
	_, err := g.db.NewInsert().
		Model(gen).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("saving generation %s/%s: %w", gen.Category, gen.Slug, err)
	}

	return nil
}
