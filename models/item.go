package models

type Item struct {
	ID    uint    `gorm:"primaryKey" json:"item_id"`
	Name  string  `gorm:"type:varchar(64);not null" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
