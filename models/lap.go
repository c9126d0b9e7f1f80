package models

// Lap is one ordered measurement record: a time (t) and a marker count (m)
// for each of the three disciplines P/H/G, plus the point total. LapIndex
// is the 1-based position within the participant's submitted sequence —
// identity is positional, so writes wipe and reinsert all laps of an event
// rather than updating rows in place.
type Lap struct {
	ID         string  `json:"id" gorm:"primaryKey"`
	EventID    string  `json:"event_id" gorm:"not null;uniqueIndex:idx_laps_event_external_lap"`
	ExternalID string  `json:"external_id" gorm:"not null;uniqueIndex:idx_laps_event_external_lap"`
	LapIndex   int     `json:"lap_index" gorm:"column:lap_index;not null;uniqueIndex:idx_laps_event_external_lap"`
	TP         float64 `json:"tP" gorm:"column:t_p;default:0"`
	MP         float64 `json:"mP" gorm:"column:m_p;default:0"`
	TH         float64 `json:"tH" gorm:"column:t_h;default:0"`
	MH         float64 `json:"mH" gorm:"column:m_h;default:0"`
	TG         float64 `json:"tG" gorm:"column:t_g;default:0"`
	MG         float64 `json:"mG" gorm:"column:m_g;default:0"`
	Pt         float64 `json:"pt" gorm:"default:0"`
}
