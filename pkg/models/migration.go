package models

import (
	"gorm.io/gorm"
)

// Database migration function
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Destination{},
		&Accommodation{},
		&TourPackage{},
		&Guide{},
		&Booking{},
		&BucketListItem{},
		&PasswordReset{},
		&MailQueue{},
	)
}

func CreateIndexes(db *gorm.DB) error {
	// Composite indexes for common queries
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_user_check_in ON bookings(user_id, check_in_date)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_bucket_list_user_destination ON bucket_list_items(user_id, destination_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_mail_queue_status_scheduled ON mail_queues(status, scheduled_for)").Error; err != nil {
		return err
	}

	return nil
}
