package models

import (
	"time"

	"gorm.io/gorm"
)

// Accommodation represents a lodging option tied to one destination
type Accommodation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	DestinationID uint        `gorm:"not null;index" json:"destinationId"`
	Destination   Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `gorm:"not null" json:"price"` // per night
	Image       string  `json:"image,omitempty"`       // served from the uploads path
}
