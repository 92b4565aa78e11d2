package mail

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/kasmi00/yatrimap-frontend/pkg/config"
	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/log"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
)

// Worker represents a queue worker
type Worker struct {
	id     int
	config *config.Config
	db     *db.DB
	logger *log.Logger
	sender Sender
	stopCh chan struct{}
	wg     *sync.WaitGroup
}

// Manager manages multiple workers draining the outbound mail queue
type Manager struct {
	config  *config.Config
	db      *db.DB
	logger  *log.Logger
	sender  Sender
	workers []*Worker
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewManager creates a new queue manager. Without an SMTP host the manager
// falls back to a log-only sender.
func NewManager(cfg *config.Config, database *db.DB, logger *log.Logger) *Manager {
	var sender Sender
	if cfg.Mail.MailConfigured() {
		sender = NewSMTPSender(&cfg.Mail)
	} else {
		sender = NewLogSender(logger)
	}

	return &Manager{
		config: cfg,
		db:     database,
		logger: logger,
		sender: sender,
		stopCh: make(chan struct{}),
	}
}

// Start starts the queue manager and workers
func (m *Manager) Start(ctx context.Context) error {
	workerCount := m.config.Mail.WorkerCount
	if workerCount <= 0 {
		workerCount = 2
	}

	m.logger.WithField("worker_count", workerCount).Info("Starting mail workers")

	// Start workers
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			id:     i + 1,
			config: m.config,
			db:     m.db,
			logger: m.logger,
			sender: m.sender,
			stopCh: make(chan struct{}),
			wg:     &m.wg,
		}

		m.workers = append(m.workers, worker)
		m.wg.Add(1)
		go worker.start(ctx)
	}

	// Start cleanup goroutine
	m.wg.Add(1)
	go m.cleanupWorker(ctx)

	m.logger.Info("Mail queue manager started successfully")
	return nil
}

// Stop stops the queue manager and all workers
func (m *Manager) Stop() {
	m.logger.Info("Stopping mail queue manager...")

	close(m.stopCh)
	for _, worker := range m.workers {
		close(worker.stopCh)
	}

	m.wg.Wait()

	m.logger.Info("Mail queue manager stopped")
}

// Enqueue schedules a message for delivery
func (m *Manager) Enqueue(recipient, subject, body, kind string) error {
	item := &models.MailQueue{
		Recipient:    recipient,
		Subject:      subject,
		Body:         body,
		Kind:         kind,
		Status:       models.QueueStatusPending,
		ScheduledFor: time.Now(),
		MaxAttempts:  m.config.Mail.RetryAttempts,
	}
	return db.NewRepository(m.db).CreateMailQueueItem(item)
}

// start starts a single worker
func (w *Worker) start(ctx context.Context) {
	defer w.wg.Done()

	w.logger.WithField("worker_id", w.id).Info("Mail worker started")

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.WithField("worker_id", w.id).Info("Mail worker stopped by context")
			return
		case <-w.stopCh:
			w.logger.WithField("worker_id", w.id).Info("Mail worker stopped")
			return
		case <-ticker.C:
			w.processQueue()
		}
	}
}

// processQueue processes pending queue items
func (w *Worker) processQueue() {
	repo := db.NewRepository(w.db)

	items, err := repo.GetPendingMailItems(10)
	if err != nil {
		w.logger.WithError(err).Error("Failed to get pending mail items")
		return
	}

	if len(items) == 0 {
		return
	}

	w.logger.WithFields(map[string]interface{}{
		"worker_id": w.id,
		"count":     len(items),
	}).Debug("Processing mail queue items")

	for _, item := range items {
		w.processItem(repo, &item)
	}
}

func (w *Worker) processItem(repo *db.Repository, item *models.MailQueue) {
	if err := repo.UpdateMailItemStatus(item.ID, models.QueueStatusProcessing); err != nil {
		w.logger.WithError(err).Error("Failed to claim mail item")
		return
	}

	start := time.Now()
	err := w.sender.Send(item.Recipient, item.Subject, item.Body)
	if err != nil {
		w.handleFailure(repo, item, err.Error())
		return
	}

	if err := repo.UpdateMailItemStatus(item.ID, models.QueueStatusSent); err != nil {
		w.logger.WithError(err).Error("Failed to mark mail item sent")
		return
	}

	w.logger.WithFields(map[string]interface{}{
		"mail_id":     item.ID,
		"kind":        item.Kind,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Mail sent")
}

// handleFailure reschedules the item with backoff or fails it for good
func (w *Worker) handleFailure(repo *db.Repository, item *models.MailQueue, errorMsg string) {
	item.Attempts++
	item.ErrorCount++
	item.LastError = errorMsg

	if item.Attempts >= item.MaxAttempts {
		item.Status = models.QueueStatusFailed
		item.NextRetryAt = nil
		w.logger.WithFields(map[string]interface{}{
			"mail_id":  item.ID,
			"kind":     item.Kind,
			"attempts": item.Attempts,
			"error":    errorMsg,
		}).Error("Mail item failed permanently")
	} else {
		item.Status = models.QueueStatusFailed
		next := time.Now().Add(w.calculateBackoff(item.Attempts))
		item.NextRetryAt = &next
		w.logger.WithFields(map[string]interface{}{
			"mail_id":       item.ID,
			"attempts":      item.Attempts,
			"next_retry_at": next,
			"error":         errorMsg,
		}).Warn("Mail item rescheduled")
	}

	if err := repo.UpdateMailItem(item); err != nil {
		w.logger.WithError(err).Error("Failed to update mail item after failure")
	}
}

// calculateBackoff grows exponentially between the configured bounds
func (w *Worker) calculateBackoff(attempts int) time.Duration {
	min := w.config.Mail.RetryBackoffMin
	max := w.config.Mail.RetryBackoffMax
	if min <= 0 {
		min = 5
	}
	if max < min {
		max = min
	}

	backoff := float64(min) * math.Pow(2, float64(attempts-1))
	if backoff > float64(max) {
		backoff = float64(max)
	}
	return time.Duration(backoff) * time.Second
}

// cleanupWorker purges old sent mail once an hour
func (m *Manager) cleanupWorker(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.performCleanup()
		}
	}
}

func (m *Manager) performCleanup() {
	repo := db.NewRepository(m.db)
	cutoff := time.Now().AddDate(0, 0, -7)

	if err := repo.PurgeSentMail(cutoff); err != nil {
		m.logger.WithError(err).Error("Failed to purge sent mail")
		return
	}

	m.logger.WithField("cutoff", cutoff.Format(time.RFC3339)).Debug("Purged old sent mail")
}

// BookingConfirmationBody renders the confirmation message for a new booking
func BookingConfirmationBody(username, destination string, checkIn, checkOut time.Time, nights int, totalPrice float64) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s is confirmed.\n\nCheck-in: %s\nCheck-out: %s\nNights: %d\nTotal price: $%.2f\n\nHappy travels!\nThe YatriMap team\n",
		username, destination,
		checkIn.Format("January 2, 2006"), checkOut.Format("January 2, 2006"),
		nights, totalPrice,
	)
}

// PasswordResetBody renders the reset message with the tokenized link
func PasswordResetBody(username, resetURL string, validFor time.Duration) string {
	return fmt.Sprintf(
		"Hi %s,\n\nWe received a request to reset your password. Use the link below within %d minutes:\n\n%s\n\nIf you did not request this, you can ignore this message.\n\nThe YatriMap team\n",
		username, int(validFor.Minutes()), resetURL,
	)
}
