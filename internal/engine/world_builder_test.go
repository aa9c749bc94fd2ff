package engine

import (
	"testing"

	"rift-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInitialSnapshot(t *testing.T) {
	blue := testRoster("Azure", 80)
	red := domain.Roster{TeamName: "Crimson"} // пустой состав

	snap := buildInitialSnapshot(blue, red)

	assert.Len(t, snap.Structures, 30)
	assert.Len(t, snap.Champions, 10)
	assert.Len(t, snap.Camps, 12)
	assert.Empty(t, snap.Minions)
	assert.Equal(t, 0.0, snap.Clock)

	ids := map[string]bool{}
	for _, s := range snap.Structures {
		assert.True(t, s.Alive)
		assert.Equal(t, s.MaxHP, s.HP)
		ids[s.ID.String()] = true
	}
	for _, c := range snap.Champions {
		assert.Equal(t, snap.Bases[c.Team], c.Pos)
		assert.False(t, c.IsDead)
		ids[c.ID.String()] = true
	}
	for _, c := range snap.Camps {
		assert.False(t, c.Alive, "camps spawn later")
		ids[c.ID.String()] = true
	}
	assert.Len(t, ids, 52, "entity ids must be unique")

	require.NotNil(t, snap.Nexus(domain.TeamBlue))
	require.NotNil(t, snap.Nexus(domain.TeamRed))

	// Пустые слоты занимают замены со стандартным рейтингом.
	for _, c := range snap.TeamChampions(domain.TeamRed) {
		assert.Equal(t, domain.DefaultSkills(), c.Skills)
	}
	assert.False(t, snap.Dragon.Alive)
	assert.Equal(t, domain.DragonFirstSpawn, snap.Dragon.NextSpawnTime)
	assert.Equal(t, domain.BaronFirstSpawn, snap.Baron.NextSpawnTime)
}
