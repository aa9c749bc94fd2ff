package storage

import (
	"bytes"
	"errors"
	"testing"

	"rift-server/internal/core/types"
	"rift-server/internal/core/types/enums"
	"rift-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArchive() *MatchArchive {
	killer := types.PackEntityID(enums.EntityKindChampion, 0, 2)
	victim := types.PackEntityID(enums.EntityKindChampion, 1, 2)
	return &MatchArchive{
		Seed:      1234,
		Timestamp: 1760000000,
		TickCount: 287,
		Meta: ArchiveMeta{
			Blue: domain.Roster{TeamName: "Azure", Players: map[domain.Role]domain.PlayerStats{
				domain.RoleMid: {Name: "Faint", Skills: domain.Skills{Mechanics: 90, Macro: 80, Lane: 85, Teamfight: 88}},
			}},
			Red:         domain.Roster{TeamName: "Crimson"},
			Outcome:     domain.MatchOutcome{BlueWins: true, Score: [2]int{1, 0}, PowerDiff: 7.5},
			TickMinutes: 0.1,
			Balance:     3,
			Summary:     domain.MatchSummary{MatchID: "m-42", Winner: domain.TeamBlue, Minutes: 28.7},
		},
		Events: []domain.Event{
			{Minute: 3.2, Type: domain.EventKill, Team: domain.TeamBlue, ActorID: killer, TargetID: victim, Solo: true, Text: "Faint убивает соперника в одиночку"},
			{Minute: 5, Type: domain.EventDragonSpawned, Team: domain.TeamNeutral, Text: "Дракон появился"},
			{Minute: 28.7, Type: domain.EventNexusDestroyed, Team: domain.TeamBlue, Text: ""},
		},
	}
}

func TestArchive_RoundTrip(t *testing.T) {
	in := sampleArchive()

	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, in))

	out, err := readBinary(&buf)
	require.NoError(t, err)

	assert.Equal(t, in.Seed, out.Seed)
	assert.Equal(t, in.Timestamp, out.Timestamp)
	assert.Equal(t, in.TickCount, out.TickCount)
	assert.Equal(t, in.Events, out.Events)
	assert.Equal(t, in.Meta.Outcome, out.Meta.Outcome)
	assert.Equal(t, "Faint", out.Meta.Blue.Player(domain.RoleMid).Name)
	assert.Equal(t, "m-42", out.Meta.Summary.MatchID)
	assert.Equal(t, 3, out.Meta.Balance)
}

func TestArchive_SaveLoadFile(t *testing.T) {
	svc, err := NewArchiveService(t.TempDir())
	require.NoError(t, err)

	path, err := svc.Save(sampleArchive())
	require.NoError(t, err)
	assert.Contains(t, path, FileExt)

	out, err := svc.Load(path)
	require.NoError(t, err)
	assert.Len(t, out.Events, 3)
}

func TestArchive_RejectsBadInput(t *testing.T) {
	t.Run("wrong magic", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeBinary(&buf, sampleArchive()))
		raw := buf.Bytes()
		copy(raw, "CDRP")

		_, err := readBinary(bytes.NewReader(raw))
		assert.True(t, errors.Is(err, ErrInvalidMagic))
	})

	t.Run("truncated", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeBinary(&buf, sampleArchive()))
		raw := buf.Bytes()

		_, err := readBinary(bytes.NewReader(raw[:len(raw)-5]))
		assert.Error(t, err)
	})
}
