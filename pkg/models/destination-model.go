package models

import (
	"time"

	"gorm.io/gorm"
)

// Homepage sections a destination can be curated into
const (
	SectionTopDestination = "TopDestination"
	SectionMoreToExplore  = "MoretoExplore"
)

// Destination represents a travel location with descriptive metadata and images
type Destination struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title           string `gorm:"not null" json:"title"`
	Description     string `json:"description,omitempty"`
	Location        string `gorm:"not null" json:"location"`
	Category        string `gorm:"not null;index" json:"category"`
	BestTimeToVisit string `json:"bestTimeToVisit,omitempty"`
	Section         string `gorm:"index" json:"section,omitempty"` // TopDestination, MoretoExplore

	// Up to three image file names served from the destinations_image path
	Image  string `json:"image,omitempty"`
	Image1 string `json:"image1,omitempty"`
	Image2 string `json:"image2,omitempty"`

	// Relationships
	Accommodations []Accommodation `gorm:"foreignKey:DestinationID" json:"accommodations,omitempty"`
}
