package models

// OrderItem is one link row: "this item is in this order". An order that
// contains the same item twice has two rows.
type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"order_list_id"`
	OrderID uint  `gorm:"not null" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ItemID  uint  `gorm:"not null" json:"item_id"`
	Item    Item  `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_list"
}
