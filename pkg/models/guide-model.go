package models

import (
	"time"

	"gorm.io/gorm"
)

// Guide represents a tour guide available for bookings
type Guide struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name         string      `gorm:"not null" json:"name"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	Experience   int         `json:"experience"` // years
	Contact      string      `json:"contact,omitempty"`
	Languages    StringSlice `gorm:"type:text" json:"languages,omitempty"`
	Availability bool        `gorm:"default:true" json:"availability"`
}
