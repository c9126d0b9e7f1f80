// services/mapping.go — wire ↔ storage field mapping
package services

import (
	"bytes"
	"fmt"
	"strconv"

	"event-results-system/models"

	"github.com/google/uuid"
)

// WireNumber is a lap/penalty value as submitted by clients. The legacy
// submitters send numbers, numeric strings or nothing at all, so decoding
// coerces anything non-numeric (null, "", garbage) to 0 instead of failing.
type WireNumber float64

func (n *WireNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			*n = 0
			return nil
		}
		raw = s
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = WireNumber(f)
	return nil
}

// EventUpdate is the wire-side event payload. Penalty coefficients are
// accepted under both the current camelCase spelling and the legacy
// snake_case one; when both are present the current spelling wins.
type EventUpdate struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Place string `json:"place"`

	PenP       *WireNumber `json:"penP"`
	PenPLegacy *WireNumber `json:"pen_p"`
	PenH       *WireNumber `json:"penH"`
	PenHLegacy *WireNumber `json:"pen_h"`
	PenG       *WireNumber `json:"penG"`
	PenGLegacy *WireNumber `json:"pen_g"`
}

// LapPayload carries one lap's six discipline measurements plus points.
type LapPayload struct {
	TP WireNumber `json:"tP"`
	MP WireNumber `json:"mP"`
	TH WireNumber `json:"tH"`
	MH WireNumber `json:"mH"`
	TG WireNumber `json:"tG"`
	MG WireNumber `json:"mG"`
	Pt WireNumber `json:"pt"`
}

// PersonPayload is one submitted participant with their ordered laps.
// The class field is accepted as both "klass" and the legacy "class".
type PersonPayload struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Club  string       `json:"club"`
	Klass *string      `json:"klass"`
	Class *string      `json:"class"`
	Laps  []LapPayload `json:"laps"`
}

// ResultSubmission is the full write body: event metadata plus every
// participant with their complete lap sequence.
type ResultSubmission struct {
	Event  EventUpdate     `json:"event"`
	People []PersonPayload `json:"people"`
}

// EventRecord is the canonical wire representation of a stored event.
type EventRecord struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Date  string  `json:"date"`
	Place string  `json:"place"`
	PenP  float64 `json:"penP"`
	PenH  float64 `json:"penH"`
	PenG  float64 `json:"penG"`
}

// LapRecord is the canonical wire representation of a stored lap.
type LapRecord struct {
	TP float64 `json:"tP"`
	MP float64 `json:"mP"`
	TH float64 `json:"tH"`
	MH float64 `json:"mH"`
	TG float64 `json:"tG"`
	MG float64 `json:"mG"`
	Pt float64 `json:"pt"`
}

// PersonWithLaps is one participant with laps in lap-index order.
type PersonWithLaps struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Club  string      `json:"club"`
	Klass string      `json:"klass"`
	Laps  []LapRecord `json:"laps"`
}

// EventResultDoc is the full read-path response document. Event is nil
// (wire: null) when no event row exists — that is not an error.
type EventResultDoc struct {
	Event  *EventRecord     `json:"event"`
	People []PersonWithLaps `json:"people"`
}

func pick(current, legacy *WireNumber) float64 {
	if current != nil {
		return float64(*current)
	}
	if legacy != nil {
		return float64(*legacy)
	}
	return 0
}

// NormalizeEvent maps a wire event payload to a storage row for eventID,
// resolving penalty spelling aliases and defaulting numerics to 0.
func NormalizeEvent(eventID string, in EventUpdate) models.Event {
	return models.Event{
		ID:    eventID,
		Name:  in.Name,
		Date:  in.Date,
		Place: in.Place,
		PenP:  pick(in.PenP, in.PenPLegacy),
		PenH:  pick(in.PenH, in.PenHLegacy),
		PenG:  pick(in.PenG, in.PenGLegacy),
	}
}

// NormalizeParticipant maps a submitted person to a storage row. The
// external id is the one required wire field; a person without it has no
// identity and the whole submission is rejected.
func NormalizeParticipant(eventID string, in PersonPayload) (models.Participant, error) {
	if in.ID == "" {
		return models.Participant{}, fmt.Errorf("participant %q is missing an id", in.Name)
	}
	klass := ""
	if in.Klass != nil {
		klass = *in.Klass
	} else if in.Class != nil {
		klass = *in.Class
	}
	return models.Participant{
		ID:         uuid.NewString(),
		EventID:    eventID,
		ExternalID: in.ID,
		Name:       in.Name,
		Club:       in.Club,
		Klass:      klass,
	}, nil
}

// FlattenLaps turns one participant's submitted lap sequence into storage
// rows. LapIndex is assigned from position (1-based) — reordering the
// input reorders the stored indices.
func FlattenLaps(eventID, externalID string, laps []LapPayload) []models.Lap {
	rows := make([]models.Lap, 0, len(laps))
	for i, l := range laps {
		rows = append(rows, models.Lap{
			ID:         uuid.NewString(),
			EventID:    eventID,
			ExternalID: externalID,
			LapIndex:   i + 1,
			TP:         float64(l.TP),
			MP:         float64(l.MP),
			TH:         float64(l.TH),
			MH:         float64(l.MH),
			TG:         float64(l.TG),
			MG:         float64(l.MG),
			Pt:         float64(l.Pt),
		})
	}
	return rows
}

// EventToWire maps a stored event back to its canonical wire spelling.
func EventToWire(e models.Event) EventRecord {
	return EventRecord{
		ID:    e.ID,
		Name:  e.Name,
		Date:  e.Date,
		Place: e.Place,
		PenP:  e.PenP,
		PenH:  e.PenH,
		PenG:  e.PenG,
	}
}

func lapToWire(l models.Lap) LapRecord {
	return LapRecord{
		TP: l.TP,
		MP: l.MP,
		TH: l.TH,
		MH: l.MH,
		TG: l.TG,
		MG: l.MG,
		Pt: l.Pt,
	}
}
