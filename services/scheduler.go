// services/scheduler.go
package services

import (
	"log"
	"time"

	"event-results-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartExportScheduler re-exports snapshots for events whose results
// changed since the previous run, so the bucket tracks the store without
// operators having to trigger exports by hand.
func (s *ExportService) StartExportScheduler(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			var events []models.Event
			cutoff := time.Now().Add(-interval)
			err := s.DB.Where("updated_at >= ?", cutoff).Find(&events).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, e := range events {
				if _, err := s.exportEvent(e.ID); err != nil {
					log.Printf("[Scheduler] Failed to export event %s: %v", e.ID, err)
				} else {
					log.Printf("✅ Auto-exported event snapshot: %s", e.Name)
				}
			}
		}),
	)
}
