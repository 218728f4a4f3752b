package model

// Booking is part of the persisted schema but not served by any endpoint yet.
type Booking struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	SeatNumber int  `json:"seatNumber" gorm:"column:seatNumber;not null"`
}

// TableName keeps the original schema's table name.
func (Booking) TableName() string { return "Bookings" }
