package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking represents a confirmed reservation linking a user, destination,
// accommodation, optional guide, and date range.
//
// Invariants enforced at creation time: CheckOutDate > CheckInDate and
// TotalPrice equals the nightly rate times the number of nights.
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	DestinationID uint        `gorm:"not null;index" json:"destinationId"`
	Destination   Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`

	AccommodationID uint          `gorm:"index" json:"accommodationId"`
	Accommodation   Accommodation `gorm:"foreignKey:AccommodationID" json:"accommodation,omitempty"`

	GuideID uint  `gorm:"index" json:"guideId"`
	Guide   Guide `gorm:"foreignKey:GuideID" json:"guide,omitempty"`

	CheckInDate  *time.Time `gorm:"index" json:"checkInDate"`
	CheckOutDate *time.Time `json:"checkOutDate"`
	TotalPrice   float64    `gorm:"not null" json:"totalPrice"`

	// Optional explicit status; when empty the lifecycle label is derived
	// from the date range at render time.
	Status string `json:"status,omitempty"`
}
