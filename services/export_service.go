package services

import (
	"encoding/json"
	"fmt"
	"log"

	"event-results-system/metrics"
	"event-results-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ExportService publishes result snapshots to R2. A snapshot is the exact
// read-path document, so whatever a client would GET is what lands in the
// bucket.
type ExportService struct {
	DB      *gorm.DB
	Results *ResultService
}

func NewExportService(db *gorm.DB, results *ResultService) *ExportService {
	return &ExportService{DB: db, Results: results}
}

// ExportEvent handles POST /events/:id/export (admin only).
func (s *ExportService) ExportEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing event id"})
	}

	url, err := s.exportEvent(id)
	if err != nil {
		if err == errExportNoEvent {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		log.Printf("❌ [EXPORT] Failed to export event %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to export event results"})
	}

	return c.JSON(fiber.Map{"ok": true, "url": url})
}

var errExportNoEvent = fmt.Errorf("no event row to export")

func (s *ExportService) exportEvent(eventID string) (string, error) {
	doc, err := s.Results.AssembleEventResults(eventID)
	if err != nil {
		return "", err
	}
	if doc.Event == nil {
		return "", errExportNoEvent
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	name := doc.Event.Name
	if name == "" {
		name = eventID
	}
	key := fmt.Sprintf("exports/%s-%s.json", slug.Make(name), eventID)

	url, err := utils.UploadJSONToR2(data, key)
	if err != nil {
		return "", err
	}

	metrics.Exports.Inc()
	log.Printf("✅ [EXPORT] Event %s snapshot uploaded: %s", eventID, url)
	return url, nil
}
