package entities

import "time"

type ActivityAction string

const (
	ActivityAdd    ActivityAction = "add"
	ActivityBorrow ActivityAction = "borrow"
	ActivityReturn ActivityAction = "return"
)

type ActivityStatus string

const (
	ActivityStatusSuccess ActivityStatus = "success"
	ActivityStatusFailed  ActivityStatus = "failed"
)

// ActivityEvent is one journaled catalog operation within a console session.
type ActivityEvent struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SessionID  string         `gorm:"index;size:36" json:"session_id"`
	Action     ActivityAction `gorm:"index;size:20" json:"action"`
	BookIndex  int            `json:"book_index"`
	BookName   string         `gorm:"size:512" json:"book_name,omitempty"`   // Empty when the index was invalid
	BookAuthor string         `gorm:"size:256" json:"book_author,omitempty"` // Empty when the index was invalid
	Status     ActivityStatus `gorm:"size:20" json:"status"`
	ErrorMsg   string         `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}
