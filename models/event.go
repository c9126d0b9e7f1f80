package models

import (
	"time"
)

// Event represents one timed multi-discipline competition event.
// The ID is caller-supplied and stable; writes fully overwrite every
// mutable attribute, events are never deleted through the API.
type Event struct {
	ID    string  `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name"`
	Date  string  `json:"date"`
	Place string  `json:"place"`
	PenP  float64 `json:"penP" gorm:"column:pen_p;default:0"` // penalty coefficient, discipline P
	PenH  float64 `json:"penH" gorm:"column:pen_h;default:0"` // penalty coefficient, discipline H
	PenG  float64 `json:"penG" gorm:"column:pen_g;default:0"` // penalty coefficient, discipline G

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
