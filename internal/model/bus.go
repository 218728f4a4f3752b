package model

// Bus represents a bus and its seat inventory. Seat counts are validated at
// creation; no mutation path exists afterwards.
type Bus struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	BusNumber      string `json:"busNumber" gorm:"column:busNumber;uniqueIndex;size:50;not null"`
	TotalSeats     int    `json:"totalSeats" gorm:"column:totalSeats;not null"`
	AvailableSeats int    `json:"availableSeats" gorm:"column:availableSeats;not null"`
}

// TableName keeps the original schema's table name.
func (Bus) TableName() string { return "Buses" }
