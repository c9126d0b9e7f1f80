// services/assemble.go — pure fold from relational rows to the nested result document
package services

import (
	"sort"

	"event-results-system/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AssemblePeople folds participant and lap rows into the nested wire shape.
// Pass 1 indexes participants by external id, pass 2 appends laps in the
// order given (callers fetch them lap_index ascending). A lap whose
// external id matches no participant is dropped — it can only appear if a
// participant row was removed out of band.
//
// Participants are ordered by name under Swedish collation so the listing
// is deterministic regardless of database collation settings.
func AssemblePeople(participants []models.Participant, laps []models.Lap) []PersonWithLaps {
	people := make([]PersonWithLaps, 0, len(participants))
	index := make(map[string]int, len(participants))
	for _, p := range participants {
		index[p.ExternalID] = len(people)
		people = append(people, PersonWithLaps{
			ID:    p.ExternalID,
			Name:  p.Name,
			Club:  p.Club,
			Klass: p.Klass,
			Laps:  []LapRecord{},
		})
	}

	for _, l := range laps {
		i, ok := index[l.ExternalID]
		if !ok {
			continue
		}
		people[i].Laps = append(people[i].Laps, lapToWire(l))
	}

	coll := collate.New(language.Swedish)
	sort.SliceStable(people, func(a, b int) bool {
		return coll.CompareString(people[a].Name, people[b].Name) < 0
	})
	return people
}
