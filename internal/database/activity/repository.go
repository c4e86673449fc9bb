package activity

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/librarytracker/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an activity event to the database.
func (r *Repository) LogEvent(event *entities.ActivityEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.Create(event).Error
}

// GetRecentEvents retrieves up to limit events for a session, most recent first,
// along with the total number of events recorded for it.
func (r *Repository) GetRecentEvents(sessionID string, limit int) ([]entities.ActivityEvent, int64, error) {
	var events []entities.ActivityEvent
	var total int64

	query := r.db.Model(&entities.ActivityEvent{}).Where("session_id = ?", sessionID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}

	err := query.Order("id DESC").Limit(limit).Find(&events).Error
	return events, total, err
}
