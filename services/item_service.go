package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/order-api/models"
	"gorm.io/gorm"
)

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

func (s *ItemService) Create(ctx context.Context, item *models.Item) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return writeError("create item", err)
		}
		return nil
	})
}

func (s *ItemService) Get(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("item", id)
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return &item, nil
}

func (s *ItemService) Update(ctx context.Context, id uint, item *models.Item) error {
	item.ID = id
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Item
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("item", id)
			}
			return fmt.Errorf("get item %d: %w", id, err)
		}

		// Select supaya price 0 tetap ikut di-update
		err := tx.Model(&existing).
			Select("name", "price").
			Updates(models.Item{Name: item.Name, Price: item.Price}).Error
		if err != nil {
			return writeError(fmt.Sprintf("update item %d", id), err)
		}
		return nil
	})
}

// Delete fails with ErrStillReferenced while any order still lists the item.
func (s *ItemService) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Item{}, id)
		if res.Error != nil {
			return deleteError("item", id, res.Error)
		}
		affected = res.RowsAffected
		return singleRowDeleted("item", id, affected)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
