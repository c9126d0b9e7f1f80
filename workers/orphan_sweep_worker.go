package workers

import (
	"context"
	"log"
	"time"

	"event-results-system/models"

	"gorm.io/gorm"
)

// PollOrphanLaps periodically deletes laps whose (event_id, external_id)
// no longer matches any participant row. The write path never produces
// such rows itself — laps are only inserted alongside their participant
// batch — but a participant removed out of band (manual cleanup, older
// tooling) leaves its laps unreachable by the read fold, and this sweep
// reclaims them.
func PollOrphanLaps(ctx context.Context, db *gorm.DB, sweepInterval time.Duration) {
	log.Println("Starting orphaned lap sweep...")

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Orphaned lap sweep stopped.")
			return
		case <-ticker.C:
			removed, err := SweepOrphanLaps(db)
			if err != nil {
				log.Printf("❌ Error sweeping orphaned laps: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("🧹 Removed %d orphaned lap row(s)", removed)
			}
		}
	}
}

// SweepOrphanLaps deletes every lap row with no owning participant and
// reports how many were removed.
func SweepOrphanLaps(db *gorm.DB) (int64, error) {
	res := db.Where(
		"NOT EXISTS (SELECT 1 FROM participants p WHERE p.event_id = laps.event_id AND p.external_id = laps.external_id)",
	).Delete(&models.Lap{})
	return res.RowsAffected, res.Error
}
