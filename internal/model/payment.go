package model

// Payment is part of the persisted schema but not served by any endpoint yet.
type Payment struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	AmountPaid    float64 `json:"amountPaid" gorm:"column:amountPaid;type:decimal(10,2);not null"`
	PaymentStatus string  `json:"paymentStatus" gorm:"column:paymentStatus;size:50;not null"`
}

// TableName keeps the original schema's table name.
func (Payment) TableName() string { return "Payments" }
