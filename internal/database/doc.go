// Package database provides the data access layer for the session journal.
//
// The journal lives in SQLite opened through gorm. The tracker always opens
// it in memory, so nothing outlives the process.
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── activity/        # Activity event storage
//
// # Usage
//
//	db, err := database.NewDatabase(config.JournalDSN, false)
//	defer db.Close()
//
//	repo := activity.NewRepository(db.DB)
//	err = repo.LogEvent(event)
package database
