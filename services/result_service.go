package services

import (
	"errors"
	"log"
	"time"

	"event-results-system/metrics"
	"event-results-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResultService serves the two result operations: assembling the nested
// result document for an event, and reconciling a submitted document back
// into the events/participants/laps relations.
type ResultService struct {
	DB *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{DB: db}
}

// AssembleEventResults loads the event, its participants and its laps and
// folds them into one document. A missing event row yields a nil Event,
// not an error; any other store failure propagates.
func (s *ResultService) AssembleEventResults(eventID string) (*EventResultDoc, error) {
	var eventRec *EventRecord
	var event models.Event
	if err := s.DB.First(&event, "id = ?", eventID).Error; err == nil {
		rec := EventToWire(event)
		eventRec = &rec
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var participants []models.Participant
	if err := s.DB.Where("event_id = ?", eventID).Order("name ASC").Find(&participants).Error; err != nil {
		return nil, err
	}

	var laps []models.Lap
	if err := s.DB.Where("event_id = ?", eventID).Order("lap_index ASC").Find(&laps).Error; err != nil {
		return nil, err
	}

	return &EventResultDoc{
		Event:  eventRec,
		People: AssemblePeople(participants, laps),
	}, nil
}

// GetEventResults handles GET /events/:id
func (s *ResultService) GetEventResults(c *fiber.Ctx) error {
	start := time.Now()
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing event id"})
	}

	doc, err := s.AssembleEventResults(id)
	if err != nil {
		log.Printf("❌ [RESULTS] Failed to assemble results for event %s: %v", id, err)
		metrics.ResultFailures.WithLabelValues("read").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load event results"})
	}

	metrics.ResultReads.Inc()
	metrics.RequestDuration.WithLabelValues("read").Observe(time.Since(start).Seconds())
	return c.JSON(doc)
}

// ReplaceEventResults handles POST /events/:id — the full reconciliation.
// Steps run in order inside one transaction: upsert the event, upsert the
// participant batch by (event_id, external_id), wipe every lap of the
// event, then insert the freshly flattened lap rows. Lap identity is
// positional, so the wipe is scoped to the whole event — never to the
// submitted participant subset — or stale indices would survive.
func (s *ResultService) ReplaceEventResults(c *fiber.Ctx) error {
	start := time.Now()
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing event id"})
	}

	var submission ResultSubmission
	if err := c.BodyParser(&submission); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	event := NormalizeEvent(id, submission.Event)

	participants := make([]models.Participant, 0, len(submission.People))
	laps := make([]models.Lap, 0)
	for _, person := range submission.People {
		row, err := NormalizeParticipant(id, person)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		participants = append(participants, row)
		laps = append(laps, FlattenLaps(id, row.ExternalID, person.Laps)...)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Full attribute replace, not a patch — unsubmitted fields reset
		// to their defaults.
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "date", "place", "pen_p", "pen_h", "pen_g", "updated_at",
			}),
		}).Create(&event).Error; err != nil {
			return err
		}

		// Participants keyed by natural key; absent external ids are left
		// alone so historical registrants survive partial resubmissions.
		if len(participants) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "event_id"}, {Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "club", "klass", "updated_at",
				}),
			}).Create(&participants).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Lap{}).Error; err != nil {
			return err
		}

		if len(laps) > 0 {
			if err := tx.Create(&laps).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		log.Printf("❌ [RESULTS] Reconcile failed for event %s: %v", id, err)
		metrics.ResultFailures.WithLabelValues("write").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store event results"})
	}

	log.Printf("✅ [RESULTS] Event %s reconciled: %d participant(s), %d lap(s)", id, len(participants), len(laps))
	metrics.ResultWrites.Inc()
	metrics.RequestDuration.WithLabelValues("write").Observe(time.Since(start).Seconds())
	return c.JSON(fiber.Map{"ok": true})
}
