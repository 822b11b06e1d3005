package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/order-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderItemService exposes single order_list rows as their own resource.
type OrderItemService struct {
	db *gorm.DB
}

func NewOrderItemService(db *gorm.DB) *OrderItemService {
	return &OrderItemService{db: db}
}

func requireLinkTargets(tx *gorm.DB, link *models.OrderItem) error {
	ok, err := ValidateOrderExists(tx, link.OrderID)
	if err != nil {
		return fmt.Errorf("check order %d: %w", link.OrderID, err)
	}
	if !ok {
		return notFound("order", link.OrderID)
	}
	return requireItems(tx, []uint{link.ItemID})
}

func (s *OrderItemService) Create(ctx context.Context, link *models.OrderItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireLinkTargets(tx, link); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(link).Error; err != nil {
			return writeError("create order_list", err)
		}
		return nil
	})
}

func (s *OrderItemService) Get(ctx context.Context, id uint) (*models.OrderItem, error) {
	var link models.OrderItem
	if err := s.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order_list", id)
		}
		return nil, fmt.Errorf("get order_list %d: %w", id, err)
	}
	return &link, nil
}

func (s *OrderItemService) Update(ctx context.Context, id uint, link *models.OrderItem) error {
	link.ID = id
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.OrderItem
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("order_list", id)
			}
			return fmt.Errorf("get order_list %d: %w", id, err)
		}

		if err := requireLinkTargets(tx, link); err != nil {
			return err
		}

		err := tx.Model(&existing).
			Omit(clause.Associations).
			Select("order_id", "item_id").
			Updates(models.OrderItem{OrderID: link.OrderID, ItemID: link.ItemID}).Error
		if err != nil {
			return writeError(fmt.Sprintf("update order_list %d", id), err)
		}
		return nil
	})
}

func (s *OrderItemService) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.OrderItem{}, id)
		if res.Error != nil {
			return deleteError("order_list", id, res.Error)
		}
		affected = res.RowsAffected
		return singleRowDeleted("order_list", id, affected)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
