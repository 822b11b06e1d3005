package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/order-api/models"
	"gorm.io/gorm"
)

// CustomerService menangani operasi data customer
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// Create inserts customer and sets its generated ID.
func (s *CustomerService) Create(ctx context.Context, customer *models.Customer) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return writeError("create customer", err)
		}
		return nil
	})
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("customer", id)
		}
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &customer, nil
}

// Update mengganti seluruh atribut customer id dengan isi customer.
func (s *CustomerService) Update(ctx context.Context, id uint, customer *models.Customer) error {
	customer.ID = id
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("customer", id)
			}
			return fmt.Errorf("get customer %d: %w", id, err)
		}

		err := tx.Model(&existing).
			Select("name", "phone").
			Updates(models.Customer{Name: customer.Name, Phone: customer.Phone}).Error
		if err != nil {
			return writeError(fmt.Sprintf("update customer %d", id), err)
		}
		return nil
	})
}

// Delete returns the number of deleted rows, which is always 1 on success.
func (s *CustomerService) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Customer{}, id)
		if res.Error != nil {
			return deleteError("customer", id, res.Error)
		}
		affected = res.RowsAffected
		return singleRowDeleted("customer", id, affected)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
