package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/kasmi00/yatrimap-frontend/pkg/models"
)

type TimeSeriesData struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type CategoryUsageData struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Repository provides database operations for specific models
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *DB {
	return r.db
}

// User repository methods
func (r *Repository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *Repository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *Repository) GetUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *Repository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *Repository) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// Destination repository methods
func (r *Repository) CreateDestination(destination *models.Destination) error {
	return r.db.Create(destination).Error
}

func (r *Repository) GetDestinations() ([]models.Destination, error) {
	var destinations []models.Destination
	err := r.db.Order("created_at DESC").Find(&destinations).Error
	return destinations, err
}

func (r *Repository) GetDestinationByID(id uint) (*models.Destination, error) {
	var destination models.Destination
	err := r.db.Preload("Accommodations").First(&destination, id).Error
	return &destination, err
}

func (r *Repository) GetDestinationsBySection(section string) ([]models.Destination, error) {
	var destinations []models.Destination
	err := r.db.Where("section = ?", section).Order("created_at DESC").Find(&destinations).Error
	return destinations, err
}

func (r *Repository) GetDestinationsByCategory(category string) ([]models.Destination, error) {
	var destinations []models.Destination
	err := r.db.Where("category = ?", category).Order("created_at DESC").Find(&destinations).Error
	return destinations, err
}

// GetDestinationCategories returns the category column of every destination,
// one entry per row, for derived category counts.
func (r *Repository) GetDestinationCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Destination{}).Pluck("category", &categories).Error
	return categories, err
}

func (r *Repository) UpdateDestination(destination *models.Destination) error {
	return r.db.Save(destination).Error
}

func (r *Repository) DeleteDestination(id uint) error {
	return r.db.Delete(&models.Destination{}, id).Error
}

// Accommodation repository methods
func (r *Repository) CreateAccommodation(accommodation *models.Accommodation) error {
	return r.db.Create(accommodation).Error
}

func (r *Repository) GetAccommodationByID(id uint) (*models.Accommodation, error) {
	var accommodation models.Accommodation
	err := r.db.Preload("Destination").First(&accommodation, id).Error
	return &accommodation, err
}

func (r *Repository) GetAccommodationsByDestinationID(destinationID uint) ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	err := r.db.Where("destination_id = ?", destinationID).Find(&accommodations).Error
	return accommodations, err
}

// TourPackage repository methods
func (r *Repository) CreateTourPackage(pkg *models.TourPackage) error {
	return r.db.Create(pkg).Error
}

func (r *Repository) GetTourPackages() ([]models.TourPackage, error) {
	var packages []models.TourPackage
	err := r.db.Order("created_at DESC").Find(&packages).Error
	return packages, err
}

func (r *Repository) GetTourPackageByID(id uint) (*models.TourPackage, error) {
	var pkg models.TourPackage
	err := r.db.First(&pkg, id).Error
	return &pkg, err
}

func (r *Repository) UpdateTourPackage(pkg *models.TourPackage) error {
	return r.db.Save(pkg).Error
}

func (r *Repository) DeleteTourPackage(id uint) error {
	return r.db.Delete(&models.TourPackage{}, id).Error
}

// Guide repository methods
func (r *Repository) CreateGuide(guide *models.Guide) error {
	return r.db.Create(guide).Error
}

func (r *Repository) GetGuides() ([]models.Guide, error) {
	var guides []models.Guide
	err := r.db.Order("name").Find(&guides).Error
	return guides, err
}

func (r *Repository) GetGuideByID(id uint) (*models.Guide, error) {
	var guide models.Guide
	err := r.db.First(&guide, id).Error
	return &guide, err
}

func (r *Repository) UpdateGuide(guide *models.Guide) error {
	return r.db.Save(guide).Error
}

// Booking repository methods
func (r *Repository) CreateBooking(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *Repository) GetBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("User").
		Preload("Destination").
		Preload("Accommodation").
		Preload("Guide").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *Repository) GetBookingsByUserID(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ?", userID).
		Preload("Destination").
		Preload("Accommodation").
		Preload("Guide").
		Order("check_in_date").
		Find(&bookings).Error
	return bookings, err
}

func (r *Repository) GetBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	return &booking, err
}

func (r *Repository) DeleteBooking(id uint) error {
	return r.db.Delete(&models.Booking{}, id).Error
}

// BucketList repository methods
func (r *Repository) GetBucketListByUserID(userID uint) ([]models.BucketListItem, error) {
	var items []models.BucketListItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *Repository) GetBucketListItem(userID, id uint) (*models.BucketListItem, error) {
	var item models.BucketListItem
	err := r.db.Where("user_id = ? AND id = ?", userID, id).First(&item).Error
	return &item, err
}

func (r *Repository) GetBucketListItemByDestination(userID, destinationID uint) (*models.BucketListItem, error) {
	var item models.BucketListItem
	err := r.db.Where("user_id = ? AND destination_id = ?", userID, destinationID).First(&item).Error
	return &item, err
}

func (r *Repository) CreateBucketListItem(item *models.BucketListItem) error {
	return r.db.Create(item).Error
}

// DeleteBucketListItem removes the row for good; a soft delete would collide
// with the unique (user, destination) index when the destination is re-added.
func (r *Repository) DeleteBucketListItem(id uint) error {
	return r.db.Unscoped().Delete(&models.BucketListItem{}, id).Error
}

// PasswordReset repository methods
func (r *Repository) CreatePasswordReset(reset *models.PasswordReset) error {
	return r.db.Create(reset).Error
}

func (r *Repository) GetPasswordResetByToken(token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.db.Where("token = ?", token).Preload("User").First(&reset).Error
	return &reset, err
}

func (r *Repository) MarkPasswordResetUsed(id uint) error {
	now := time.Now()
	return r.db.Model(&models.PasswordReset{}).Where("id = ?", id).Update("used_at", &now).Error
}

// CancelPendingResets invalidates earlier unused tokens for the same user
func (r *Repository) CancelPendingResets(userID uint) error {
	now := time.Now()
	return r.db.Model(&models.PasswordReset{}).
		Where("user_id = ? AND used_at IS NULL", userID).
		Update("used_at", &now).Error
}

// MailQueue repository methods
func (r *Repository) CreateMailQueueItem(item *models.MailQueue) error {
	return r.db.Create(item).Error
}

func (r *Repository) GetPendingMailItems(limit int) ([]models.MailQueue, error) {
	var items []models.MailQueue
	now := time.Now()
	err := r.db.Where("status = ? AND scheduled_for <= ?", models.QueueStatusPending, now).
		Or("status = ? AND next_retry_at <= ?", models.QueueStatusFailed, now).
		Order("scheduled_for").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *Repository) UpdateMailItemStatus(id uint, status models.QueueStatus) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if status == models.QueueStatusSent {
		now := time.Now()
		updates["processed_at"] = &now
	}
	return r.db.Model(&models.MailQueue{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) UpdateMailItem(item *models.MailQueue) error {
	return r.db.Save(item).Error
}

// PurgeSentMail removes sent items older than the cutoff
func (r *Repository) PurgeSentMail(olderThan time.Time) error {
	return r.db.Unscoped().
		Where("status = ? AND processed_at < ?", models.QueueStatusSent, olderThan).
		Delete(&models.MailQueue{}).Error
}

// Dashboard statistics
func (r *Repository) CountEntities() (map[string]int64, error) {
	counts := make(map[string]int64, 5)
	tables := map[string]interface{}{
		"users":        &models.User{},
		"destinations": &models.Destination{},
		"packages":     &models.TourPackage{},
		"guides":       &models.Guide{},
		"bookings":     &models.Booking{},
	}

	for name, model := range tables {
		var count int64
		if err := r.db.Model(model).Count(&count).Error; err != nil {
			return nil, err
		}
		counts[name] = count
	}

	return counts, nil
}

func (r *Repository) GetTotalRevenue() (float64, error) {
	var total *float64
	err := r.db.Model(&models.Booking{}).Select("SUM(total_price)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *Repository) GetBookingsOverTime(days int) ([]TimeSeriesData, error) {
	var data []TimeSeriesData
	startDate := time.Now().AddDate(0, 0, -days)

	err := r.db.Model(&models.Booking{}).
		Select("DATE(created_at) as date, COUNT(*) as count").
		Where("created_at >= ?", startDate).
		Group("DATE(created_at)").
		Order("date").
		Scan(&data).Error
	return data, err
}

func (r *Repository) GetDestinationCategoryUsage() ([]CategoryUsageData, error) {
	var data []CategoryUsageData
	err := r.db.Model(&models.Destination{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Order("count DESC").
		Scan(&data).Error
	return data, err
}

func (r *Repository) IsRecordNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
