package models

import (
	"time"
)

// Participant is one registered competitor. ExternalID comes from the
// submitting system and is unique only within its event, so the natural
// key is (event_id, external_id). Participants are upserted in place on
// every write and never removed by a later write that omits them.
type Participant struct {
	ID         string `json:"id" gorm:"primaryKey"`
	EventID    string `json:"event_id" gorm:"not null;uniqueIndex:idx_participants_event_external"`
	ExternalID string `json:"external_id" gorm:"not null;uniqueIndex:idx_participants_event_external"`
	Name       string `json:"name"`
	Club       string `json:"club"`
	Klass      string `json:"klass"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
