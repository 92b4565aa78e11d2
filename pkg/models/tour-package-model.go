package models

import (
	"time"

	"gorm.io/gorm"
)

// TourPackage represents a bundled, priced, multi-day offering
type TourPackage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title       string  `gorm:"not null" json:"title"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    string  `json:"duration,omitempty"` // e.g. "5 days"
	Description string  `json:"description,omitempty"`

	// Ordered day-by-day plans
	Highlights DayEntries `gorm:"type:text" json:"highlights,omitempty"`
	Itinerary  DayEntries `gorm:"type:text" json:"itinerary,omitempty"`

	Image  string `json:"image,omitempty"`
	Image1 string `json:"image1,omitempty"`
}
