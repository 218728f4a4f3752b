package model

// User represents a registered passenger.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:255;not null"`
	Email string `json:"email" gorm:"uniqueIndex;size:255;not null"`
}

// TableName keeps the original schema's table name.
func (User) TableName() string { return "Users" }
