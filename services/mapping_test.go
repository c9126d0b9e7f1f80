package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEvent_CurrentSpelling(t *testing.T) {
	var in EventUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Spring Cup","date":"2026-05-01","place":"Lunsen","penP":2,"penH":1.5,"penG":3}`), &in))

	ev := NormalizeEvent("sc26", in)
	assert.Equal(t, "sc26", ev.ID)
	assert.Equal(t, "Spring Cup", ev.Name)
	assert.Equal(t, "Lunsen", ev.Place)
	assert.Equal(t, 2.0, ev.PenP)
	assert.Equal(t, 1.5, ev.PenH)
	assert.Equal(t, 3.0, ev.PenG)
}

func TestNormalizeEvent_LegacySpelling(t *testing.T) {
	var in EventUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Old Timer","pen_p":4,"pen_h":5,"pen_g":6}`), &in))

	ev := NormalizeEvent("ot1", in)
	assert.Equal(t, 4.0, ev.PenP)
	assert.Equal(t, 5.0, ev.PenH)
	assert.Equal(t, 6.0, ev.PenG)
}

func TestNormalizeEvent_CurrentSpellingWins(t *testing.T) {
	var in EventUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"penP":7,"pen_p":1}`), &in))

	ev := NormalizeEvent("e", in)
	assert.Equal(t, 7.0, ev.PenP)
}

func TestNormalizeEvent_NullFallsThroughToLegacy(t *testing.T) {
	// null behaves like absence, the legacy field still applies
	var in EventUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"penP":null,"pen_p":9}`), &in))

	ev := NormalizeEvent("e", in)
	assert.Equal(t, 9.0, ev.PenP)
}

func TestNormalizeEvent_MissingPenaltiesDefaultToZero(t *testing.T) {
	var in EventUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Bare"}`), &in))

	ev := NormalizeEvent("e", in)
	assert.Zero(t, ev.PenP)
	assert.Zero(t, ev.PenH)
	assert.Zero(t, ev.PenG)
}

func TestWireNumber_Coercion(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"7"`, 7},
		{"numeric string with decimals", `"3.25"`, 3.25},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"dnf"`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n WireNumber
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &n))
			assert.Equal(t, tc.want, float64(n))
		})
	}
}

func TestNormalizeParticipant_KlassAliases(t *testing.T) {
	var p PersonPayload
	require.NoError(t, json.Unmarshal([]byte(`{"id":"101","name":"Eva","class":"D21"}`), &p))

	row, err := NormalizeParticipant("e1", p)
	require.NoError(t, err)
	assert.Equal(t, "D21", row.Klass)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"102","name":"Nils","klass":"H21"}`), &p))
	row, err = NormalizeParticipant("e1", p)
	require.NoError(t, err)
	assert.Equal(t, "H21", row.Klass)
}

func TestNormalizeParticipant_Defaults(t *testing.T) {
	row, err := NormalizeParticipant("e1", PersonPayload{ID: "55", Name: "Kim"})
	require.NoError(t, err)
	assert.Equal(t, "e1", row.EventID)
	assert.Equal(t, "55", row.ExternalID)
	assert.Equal(t, "", row.Club)
	assert.Equal(t, "", row.Klass)
	assert.NotEmpty(t, row.ID)
}

func TestNormalizeParticipant_MissingIDRejected(t *testing.T) {
	_, err := NormalizeParticipant("e1", PersonPayload{Name: "No Id"})
	assert.Error(t, err)
}

func TestFlattenLaps_PositionalIndexing(t *testing.T) {
	laps := FlattenLaps("e1", "9", []LapPayload{
		{TP: 100, Pt: 3},
		{TP: 90, Pt: 1},
		{TP: 95, Pt: 2},
	})

	require.Len(t, laps, 3)
	for i, l := range laps {
		assert.Equal(t, i+1, l.LapIndex)
		assert.Equal(t, "e1", l.EventID)
		assert.Equal(t, "9", l.ExternalID)
	}
	assert.Equal(t, 100.0, laps[0].TP)
	assert.Equal(t, 2.0, laps[2].Pt)
}

func TestFlattenLaps_Empty(t *testing.T) {
	assert.Empty(t, FlattenLaps("e1", "9", nil))
}

func TestLapPayload_StringValuesCoerced(t *testing.T) {
	var l LapPayload
	require.NoError(t, json.Unmarshal([]byte(`{"tP":"120","mP":2,"tH":null,"mH":"x","pt":"4.5"}`), &l))

	assert.Equal(t, 120.0, float64(l.TP))
	assert.Equal(t, 2.0, float64(l.MP))
	assert.Zero(t, float64(l.TH))
	assert.Zero(t, float64(l.MH))
	assert.Equal(t, 4.5, float64(l.Pt))
}
