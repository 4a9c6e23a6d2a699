package storage

import (
	"context"

	"go-items-api/internal/models"
	"go-items-api/internal/transport/dto"
)

// ItemRepository defines the interface for item data operations.
type ItemRepository interface {
	// List returns at most limit items, skipping the first offset rows in
	// primary key order. A non-empty titleFilter restricts the result to
	// case-insensitive substring matches. An empty result is an empty
	// slice, never nil and never an error.
	List(ctx context.Context, offset, limit int, titleFilter string) ([]models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, req *dto.CreateItemRequest) (*models.Item, error)
	// Update applies only the fields present in req and returns the
	// refreshed record, or ErrNotFound if the id is absent.
	Update(ctx context.Context, id int64, req *dto.UpdateItemRequest) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
}
