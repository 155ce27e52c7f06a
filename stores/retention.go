package stores

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// deleteStaleConversations removes conversations unchanged for cutoffDays,
// along with their messages and workflow traces. Shared by both store
// implementations.
func deleteStaleConversations(db *gorm.DB, cutoffDays int) (int64, error) {
	if cutoffDays <= 0 {
		return 0, fmt.Errorf("cutoff must be positive, got %d days", cutoffDays)
	}
	cutoff := time.Now().AddDate(0, 0, -cutoffDays)

	var stale []Conversation
	if err := db.Where("updated_at < ?", cutoff).Find(&stale).Error; err != nil {
		return 0, fmt.Errorf("failed to find stale conversations: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	ids := make([]string, len(stale))
	for i, c := range stale {
		ids[i] = c.ConversationID
	}

	tx := db.Begin()
	if err := tx.Where("conversation_id IN ?", ids).Delete(&Message{}).Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to delete stale messages: %w", err)
	}
	if err := tx.Where("conversation_id IN ?", ids).Delete(&WorkflowTrace{}).Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to delete stale traces: %w", err)
	}
	if err := tx.Where("conversation_id IN ?", ids).Delete(&Conversation{}).Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to delete stale conversations: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return int64(len(stale)), nil
}

// RetentionSweeper periodically deletes conversations that have gone
// untouched longer than the retention window.
type RetentionSweeper struct {
	store    MessageStore
	days     int
	schedule string
	cron     *cron.Cron
}

// NewRetentionSweeper builds a sweeper for the given store keeping days of
// history. The sweep runs daily at 03:00.
func NewRetentionSweeper(store MessageStore, days int) *RetentionSweeper {
	return &RetentionSweeper{
		store:    store,
		days:     days,
		schedule: "0 3 * * *",
	}
}

// WithSchedule overrides the cron expression used for the sweep.
func (r *RetentionSweeper) WithSchedule(spec string) *RetentionSweeper {
	r.schedule = spec
	return r
}

// Start schedules the sweep. Safe to call once per sweeper.
func (r *RetentionSweeper) Start() error {
	if r.cron != nil {
		return fmt.Errorf("retention sweeper already started")
	}
	c := cron.New()
	if _, err := c.AddFunc(r.schedule, r.Sweep); err != nil {
		return fmt.Errorf("failed to schedule retention sweep: %w", err)
	}
	r.cron = c
	c.Start()
	log.Printf("[RETENTION] sweeper started, schedule %q, keeping %d days", r.schedule, r.days)
	return nil
}

// Stop halts the scheduled sweep.
func (r *RetentionSweeper) Stop() {
	if r.cron != nil {
		r.cron.Stop()
		r.cron = nil
	}
}

// Sweep runs one retention pass immediately.
func (r *RetentionSweeper) Sweep() {
	deleted, err := r.store.DeleteConversationsBefore(r.days)
	if err != nil {
		log.Printf("[RETENTION] sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("[RETENTION] deleted %d conversations older than %d days", deleted, r.days)
	}
}
