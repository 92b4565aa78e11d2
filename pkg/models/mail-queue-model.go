package models

import (
	"time"

	"gorm.io/gorm"
)

// QueueStatus enum
type QueueStatus string

const (
	QueueStatusPending    QueueStatus = "pending"
	QueueStatusProcessing QueueStatus = "processing"
	QueueStatusSent       QueueStatus = "sent"
	QueueStatusFailed     QueueStatus = "failed"
	QueueStatusCancelled  QueueStatus = "cancelled"
)

// Mail kinds
const (
	MailKindBookingConfirmation = "booking_confirmation"
	MailKindPasswordReset       = "password_reset"
)

// MailQueue handles delayed and scheduled outbound mail
type MailQueue struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Recipient string `gorm:"not null" json:"recipient"`
	Subject   string `gorm:"not null" json:"subject"`
	Body      string `json:"body"`
	Kind      string `gorm:"index" json:"kind"`

	// Queue metadata
	Status       QueueStatus `gorm:"default:'pending';index" json:"status"`
	ScheduledFor time.Time   `gorm:"index" json:"scheduled_for"`
	ProcessedAt  *time.Time  `json:"processed_at,omitempty"`

	// Retry logic
	Attempts    int        `gorm:"default:0" json:"attempts"`
	MaxAttempts int        `gorm:"default:3" json:"max_attempts"`
	NextRetryAt *time.Time `gorm:"index" json:"next_retry_at,omitempty"`

	// Error tracking
	LastError  string `json:"last_error,omitempty"`
	ErrorCount int    `gorm:"default:0" json:"error_count"`
}
