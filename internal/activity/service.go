package activity

import (
	"log"
	"slices"

	"github.com/google/uuid"

	"github.com/mrlokans/librarytracker/internal/database/activity"
	"github.com/mrlokans/librarytracker/internal/entities"
)

// Service journals catalog operations for one console session.
type Service struct {
	repo      *activity.Repository
	sessionID uuid.UUID
	limit     int
}

// NewService creates a journal bound to a fresh session ID. Events shows at
// most limit entries.
func NewService(repo *activity.Repository, limit int) *Service {
	return &Service{
		repo:      repo,
		sessionID: uuid.New(),
		limit:     limit,
	}
}

// SessionID identifies the events recorded by this service.
func (s *Service) SessionID() uuid.UUID {
	return s.sessionID
}

// Record journals one catalog operation. A nil opErr marks it successful.
// Storage failures are logged and otherwise ignored.
func (s *Service) Record(action entities.ActivityAction, index int, book entities.Book, opErr error) {
	event := &entities.ActivityEvent{
		SessionID:  s.sessionID.String(),
		Action:     action,
		BookIndex:  index,
		BookName:   book.Name,
		BookAuthor: book.Author,
		Status:     entities.ActivityStatusSuccess,
	}

	if opErr != nil {
		event.Status = entities.ActivityStatusFailed
		event.ErrorMsg = truncate(opErr.Error(), 500)
	}

	if err := s.repo.LogEvent(event); err != nil {
		log.Printf("Failed to log activity event: %v", err)
	}
}

// Events returns the most recent events of the session, oldest first.
func (s *Service) Events() ([]entities.ActivityEvent, error) {
	events, total, err := s.repo.GetRecentEvents(s.sessionID.String(), s.limit)
	if err != nil {
		return nil, err
	}
	if int64(len(events)) < total {
		log.Printf("Activity log truncated to %d of %d events", len(events), total)
	}
	slices.Reverse(events)
	return events, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
