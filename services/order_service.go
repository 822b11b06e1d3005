package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/order-api/models"
	"github.com/yeremiapane/order-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderService menangani order beserta baris order_list miliknya.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create memvalidasi customer dan semua item terlebih dahulu, lalu menulis
// order dan link-nya dalam satu transaksi. order.ID dan order.Items diisi
// setelah berhasil.
func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCustomer(tx, order.CustID); err != nil {
			return err
		}
		if err := requireItems(tx, order.ItemIDs); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return writeError("create order", err)
		}
		if err := insertLinks(tx, order.ID, order.ItemIDs); err != nil {
			return err
		}
		return loadItems(tx, order)
	})
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	db := s.db.WithContext(ctx)

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order", id)
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if err := loadItems(db, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Update adalah full replacement: notes, cust_id, timestamp dan daftar item
// semuanya diganti. Kalau salah satu referensi tidak valid, order dan
// link-nya tetap seperti sebelumnya.
func (s *OrderService) Update(ctx context.Context, id uint, order *models.Order) error {
	order.ID = id
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("order", id)
			}
			return fmt.Errorf("get order %d: %w", id, err)
		}

		if err := requireCustomer(tx, order.CustID); err != nil {
			return err
		}
		if err := ReplaceOrderItems(tx, id, order.ItemIDs); err != nil {
			return err
		}

		err := tx.Model(&existing).
			Omit(clause.Associations).
			Select("notes", "cust_id", "timestamp").
			Updates(models.Order{Notes: order.Notes, CustID: order.CustID, Timestamp: order.Timestamp}).Error
		if err != nil {
			return writeError(fmt.Sprintf("update order %d", id), err)
		}
		return loadItems(tx, order)
	})
}

// Delete menghapus link milik order lebih dulu, baru baris order-nya.
func (s *OrderService) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		links := tx.Where("order_id = ?", id).Delete(&models.OrderItem{})
		if links.Error != nil {
			return fmt.Errorf("delete links of order %d: %w", id, links.Error)
		}

		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return deleteError("order", id, res.Error)
		}
		affected = res.RowsAffected
		if err := singleRowDeleted("order", id, affected); err != nil {
			return err
		}

		utils.InfoLogger.WithField("order_id", id).Debugf("Removed %d order_list rows", links.RowsAffected)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// loadItems mengisi order.ItemIDs dan order.Items dari order_list, urut
// berdasarkan id link.
func loadItems(db *gorm.DB, order *models.Order) error {
	var links []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Order("id").Find(&links).Error; err != nil {
		return fmt.Errorf("get links of order %d: %w", order.ID, err)
	}

	order.ItemIDs = make([]uint, 0, len(links))
	order.Items = make([]models.Item, 0, len(links))
	if len(links) == 0 {
		return nil
	}

	unique := make([]uint, 0, len(links))
	seen := make(map[uint]bool, len(links))
	for _, l := range links {
		if !seen[l.ItemID] {
			seen[l.ItemID] = true
			unique = append(unique, l.ItemID)
		}
	}

	var items []models.Item
	if err := db.Where("id IN ?", unique).Find(&items).Error; err != nil {
		return fmt.Errorf("get items of order %d: %w", order.ID, err)
	}
	byID := make(map[uint]models.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	for _, l := range links {
		it, ok := byID[l.ItemID]
		if !ok {
			return fmt.Errorf("order %d links missing item %d", order.ID, l.ItemID)
		}
		order.ItemIDs = append(order.ItemIDs, l.ItemID)
		order.Items = append(order.Items, it)
	}
	return nil
}
