package models

type Customer struct {
	ID    uint   `gorm:"primaryKey" json:"cust_id"`
	Name  string `gorm:"type:varchar(64);not null" json:"name"`
	Phone string `gorm:"type:varchar(32);not null;index" json:"phone"`
}
