package services

import (
	"fmt"

	"github.com/yeremiapane/order-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Semua fungsi di file ini menerima tx dari pemanggil supaya pengecekan dan
// penulisan terjadi di transaksi yang sama.

func ValidateCustomerExists(tx *gorm.DB, custID uint) (bool, error) {
	return exists(tx, &models.Customer{}, custID)
}

func ValidateItemExists(tx *gorm.DB, itemID uint) (bool, error) {
	return exists(tx, &models.Item{}, itemID)
}

func ValidateOrderExists(tx *gorm.DB, orderID uint) (bool, error) {
	return exists(tx, &models.Order{}, orderID)
}

func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// requireCustomer returns a NotFoundError naming custID when it is missing.
func requireCustomer(tx *gorm.DB, custID uint) error {
	ok, err := ValidateCustomerExists(tx, custID)
	if err != nil {
		return fmt.Errorf("check customer %d: %w", custID, err)
	}
	if !ok {
		return notFound("customer", custID)
	}
	return nil
}

// requireItems checks every id before anything is written. The first missing
// id, in request order, is reported.
func requireItems(tx *gorm.DB, itemIDs []uint) error {
	checked := make(map[uint]bool, len(itemIDs))
	for _, id := range itemIDs {
		if checked[id] {
			continue
		}
		ok, err := ValidateItemExists(tx, id)
		if err != nil {
			return fmt.Errorf("check item %d: %w", id, err)
		}
		if !ok {
			return notFound("item", id)
		}
		checked[id] = true
	}
	return nil
}

// ReplaceOrderItems mengganti seluruh baris order_list milik orderID dengan
// satu baris per id di itemIDs (urutan dan duplikat dipertahankan). Semua id
// divalidasi dulu; kalau ada yang tidak valid tidak ada yang diubah.
// Pemanggil wajib menjalankannya di dalam transaksi.
func ReplaceOrderItems(tx *gorm.DB, orderID uint, itemIDs []uint) error {
	if err := requireItems(tx, itemIDs); err != nil {
		return err
	}

	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		return fmt.Errorf("delete links of order %d: %w", orderID, err)
	}
	return insertLinks(tx, orderID, itemIDs)
}

// insertLinks writes one link per id without validating them.
func insertLinks(tx *gorm.DB, orderID uint, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	links := make([]models.OrderItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		links = append(links, models.OrderItem{OrderID: orderID, ItemID: id})
	}
	if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
		return writeError(fmt.Sprintf("insert links of order %d", orderID), err)
	}
	return nil
}
