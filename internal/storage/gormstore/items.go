package gormstore

import (
	"context"
	"errors"
	"strings"

	"go-items-api/internal/models"
	"go-items-api/internal/storage"
	"go-items-api/internal/transport/dto"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ItemRepo implements the storage.ItemRepository interface on top of GORM.
type ItemRepo struct {
	db *gorm.DB
}

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(db *gorm.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// Compile-time check to ensure ItemRepo implements ItemRepository
var _ storage.ItemRepository = (*ItemRepo)(nil)

func (r *ItemRepo) List(ctx context.Context, offset, limit int, titleFilter string) ([]models.Item, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Order("id ASC").
		Offset(offset).
		Limit(limit)

	if titleFilter != "" {
		// Case-insensitive substring match, computed at the store layer.
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(titleFilter)+"%")
	}

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		logrus.Errorf("Error querying items: %v", err)
		return nil, err
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		logrus.Errorf("Error fetching item by ID %d: %v", id, err)
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) Create(ctx context.Context, req *dto.CreateItemRequest) (*models.Item, error) {
	item := models.Item{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		logrus.Errorf("Error creating item: %v", err)
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) Update(ctx context.Context, id int64, req *dto.UpdateItemRequest) (*models.Item, error) {
	var item models.Item

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		// Field-by-field conditional assignment: only the fields present
		// in the request change, omitted fields keep their stored values.
		if req.Title != nil {
			item.Title = *req.Title
		}
		if req.Description != nil {
			item.Description = req.Description
		}
		if req.Price != nil {
			item.Price = req.Price
		}

		return tx.Save(&item).Error
	})
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logrus.Errorf("Error updating item %d: %v", id, err)
		}
		return nil, err
	}

	return &item, nil
}

func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if result.Error != nil {
		logrus.Errorf("Error deleting item %d: %v", id, result.Error)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
