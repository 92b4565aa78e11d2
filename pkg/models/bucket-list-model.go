package models

import (
	"time"

	"gorm.io/gorm"
)

// BucketListItem is a denormalized snapshot of a destination a user wants to
// remember. Keyed by destination so toggling the same destination twice maps
// to a single row.
type BucketListItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	DestinationID uint   `gorm:"not null;index" json:"destinationId"`
	Title         string `gorm:"not null" json:"title"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location,omitempty"`
	Category      string `json:"category,omitempty"`
	Image         string `json:"image,omitempty"`
}
