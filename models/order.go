package models

// Order adalah header pesanan. Daftar item tidak disimpan di tabel orders,
// melainkan sebagai baris-baris OrderItem di tabel order_list.
type Order struct {
	ID        uint     `gorm:"primaryKey" json:"order_id"`
	Notes     *string  `gorm:"type:text" json:"notes"`
	CustID    uint     `gorm:"not null;index" json:"cust_id"`
	Customer  Customer `gorm:"foreignKey:CustID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Timestamp int64    `json:"timestamp"`

	// Diisi oleh service dari order_list, tidak dipetakan ke kolom.
	ItemIDs []uint `gorm:"-" json:"item_ids"`
	Items   []Item `gorm:"-" json:"items"`
}
