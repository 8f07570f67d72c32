package repository

import (
	"context"
	"fmt"

	"github.com/nahidasmakeover/boutique/internal/kv"
	"github.com/nahidasmakeover/boutique/internal/models"
)

// OverlayRepository persists submitted reviews as one snapshot document.
type OverlayRepository interface {
	Load(ctx context.Context) (models.ReviewOverlay, error)
	Save(ctx context.Context, overlay models.ReviewOverlay) error
}

type overlayRepository struct {
	store kv.Store
	key   string
}

func NewOverlayRepo(store kv.Store, key string) OverlayRepository {
	return &overlayRepository{store: store, key: key}
}

// Load returns an empty overlay when nothing has been saved yet.
func (r *overlayRepository) Load(ctx context.Context) (models.ReviewOverlay, error) {

	overlay := models.ReviewOverlay{}

	found, err := r.store.Get(ctx, r.key, &overlay)
	if err != nil {
		return nil, fmt.Errorf("loading review overlay: %w", err)
	}

	if !found || overlay == nil {
		return models.ReviewOverlay{}, nil
	}

	return overlay, nil
}

// Save overwrites the stored snapshot.
func (r *overlayRepository) Save(ctx context.Context, overlay models.ReviewOverlay) error {

	if err := r.store.Set(ctx, r.key, overlay); err != nil {
		return fmt.Errorf("saving review overlay: %w", err)
	}

	return nil
}
