package workers

import (
	"fmt"
	"testing"

	"event-results-system/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:sweepdb-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Event{}, &models.Participant{}, &models.Lap{}))
	return db
}

func TestSweepOrphanLaps(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Participant{
		ID: uuid.NewString(), EventID: "e1", ExternalID: "1", Name: "Anna",
	}).Error)
	require.NoError(t, db.Create(&[]models.Lap{
		{ID: uuid.NewString(), EventID: "e1", ExternalID: "1", LapIndex: 1},
		{ID: uuid.NewString(), EventID: "e1", ExternalID: "ghost", LapIndex: 1},
		{ID: uuid.NewString(), EventID: "e2", ExternalID: "1", LapIndex: 1},
	}).Error)

	removed, err := SweepOrphanLaps(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	var remaining []models.Lap
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "e1", remaining[0].EventID)
	assert.Equal(t, "1", remaining[0].ExternalID)
}

func TestSweepOrphanLaps_NothingToDo(t *testing.T) {
	db := newTestDB(t)

	removed, err := SweepOrphanLaps(db)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
