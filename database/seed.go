package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeremiapane/order-api/models"
	"github.com/yeremiapane/order-api/utils"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedOrder is one entry of a seed file. Customers and items are not listed
// separately; they are derived from the orders.
type SeedOrder struct {
	Name      string     `json:"name" yaml:"name"`
	Phone     string     `json:"phone" yaml:"phone"`
	Notes     *string    `json:"notes" yaml:"notes"`
	Timestamp int64      `json:"timestamp" yaml:"timestamp"`
	Items     []SeedItem `json:"items" yaml:"items"`
}

type SeedItem struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

type SeedSummary struct {
	Customers int `json:"customers"`
	Items     int `json:"items"`
	Orders    int `json:"orders"`
	Links     int `json:"links"`
}

// LoadSeedFile membaca daftar order dari file .json, .yaml atau .yml.
func LoadSeedFile(path string) ([]SeedOrder, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var orders []SeedOrder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &orders)
	case ".json", "":
		err = json.Unmarshal(raw, &orders)
	default:
		return nil, fmt.Errorf("unsupported seed file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return orders, nil
}

// Seed memasukkan customer unik (berdasarkan phone), item unik (berdasarkan
// name), lalu setiap order beserta baris order_list-nya, semuanya dalam satu
// transaksi. Customer/item yang sudah ada di database dipakai ulang dan
// tidak dihitung di SeedSummary.
func Seed(ctx context.Context, db *gorm.DB, orders []SeedOrder) (SeedSummary, error) {
	var summary SeedSummary

	// Urutan kemunculan pertama dipertahankan, nilai terakhir yang menang.
	var phones, itemNames []string
	customerNames := map[string]string{}
	itemPrices := map[string]float64{}
	for _, o := range orders {
		if _, seen := customerNames[o.Phone]; !seen {
			phones = append(phones, o.Phone)
		}
		customerNames[o.Phone] = o.Name
		for _, it := range o.Items {
			if _, seen := itemPrices[it.Name]; !seen {
				itemNames = append(itemNames, it.Name)
			}
			itemPrices[it.Name] = it.Price
		}
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		custIDs := make(map[string]uint, len(phones))
		for _, phone := range phones {
			var customer models.Customer
			res := tx.Where("phone = ?", phone).Order("id").Limit(1).Find(&customer)
			if res.Error != nil {
				return fmt.Errorf("seed customer %s: %w", phone, res.Error)
			}
			if res.RowsAffected == 0 {
				customer = models.Customer{Name: customerNames[phone], Phone: phone}
				if err := tx.Create(&customer).Error; err != nil {
					return fmt.Errorf("seed customer %s: %w", phone, err)
				}
				summary.Customers++
			}
			custIDs[phone] = customer.ID
		}

		itemIDs := make(map[string]uint, len(itemNames))
		for _, name := range itemNames {
			var item models.Item
			res := tx.Where("name = ?", name).Order("id").Limit(1).Find(&item)
			if res.Error != nil {
				return fmt.Errorf("seed item %s: %w", name, res.Error)
			}
			if res.RowsAffected == 0 {
				item = models.Item{Name: name, Price: itemPrices[name]}
				if err := tx.Create(&item).Error; err != nil {
					return fmt.Errorf("seed item %s: %w", name, err)
				}
				summary.Items++
			}
			itemIDs[name] = item.ID
		}

		for i, o := range orders {
			order := models.Order{
				Notes:     o.Notes,
				CustID:    custIDs[o.Phone],
				Timestamp: o.Timestamp,
			}
			if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
				return fmt.Errorf("seed order #%d: %w", i, err)
			}
			summary.Orders++

			if len(o.Items) == 0 {
				continue
			}
			links := make([]models.OrderItem, 0, len(o.Items))
			for _, it := range o.Items {
				links = append(links, models.OrderItem{OrderID: order.ID, ItemID: itemIDs[it.Name]})
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("seed links of order #%d: %w", i, err)
			}
			summary.Links += len(links)
		}
		return nil
	})
	if err != nil {
		return SeedSummary{}, err
	}

	utils.InfoLogger.WithField("summary", summary).Info("Seed completed")
	return summary, nil
}
