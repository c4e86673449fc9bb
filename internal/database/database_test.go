package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarytracker/internal/entities"
)

func TestNewDatabase(t *testing.T) {
	db, err := NewDatabase(":memory:", false)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable(&entities.ActivityEvent{}))

	t.Run("schema survives across queries", func(t *testing.T) {
		event := &entities.ActivityEvent{
			SessionID: "session",
			Action:    entities.ActivityAdd,
			Status:    entities.ActivityStatusSuccess,
		}
		require.NoError(t, db.DB.Create(event).Error)

		var count int64
		require.NoError(t, db.DB.Model(&entities.ActivityEvent{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(":memory:", true)
	require.NoError(t, err)

	require.NoError(t, db.Close())

	err = db.DB.Create(&entities.ActivityEvent{}).Error
	assert.Error(t, err)
}
