package engine

import (
	"rift-server/internal/core/types"
	"rift-server/internal/core/types/enums"
	"rift-server/internal/domain"
	"rift-server/pkg/arena"
)

// buildInitialSnapshot расставляет строения, чемпионов, лагеря и таймеры
// объектов на минуте 0.
func buildInitialSnapshot(blue, red domain.Roster) *domain.Snapshot {
	snap := &domain.Snapshot{
		NextWaveTime: domain.FirstWaveMinute,
		Dragon: domain.Objective{
			Kind:          domain.ObjectiveDragon,
			Pos:           arena.DragonPit,
			NextSpawnTime: domain.DragonFirstSpawn,
		},
		Baron: domain.Objective{
			Kind:          domain.ObjectiveBaron,
			Pos:           arena.BaronPit,
			NextSpawnTime: domain.BaronFirstSpawn,
		},
	}

	rosters := [2]domain.Roster{blue, red}
	campIndex := uint32(0)

	for _, team := range domain.Teams {
		base := arena.Base(team)
		snap.Bases[team] = base

		// 1. Строения
		for i, tpl := range arena.StructureTemplates(team) {
			snap.Structures = append(snap.Structures, domain.Structure{
				ID:     types.PackEntityID(enums.EntityKindStructure, uint8(team), uint32(i)),
				Team:   team,
				Tier:   tpl.Tier,
				Lane:   tpl.Lane,
				Pos:    tpl.Pos,
				Alive:  true,
				Health: domain.NewHealth(domain.StructureMaxHP(tpl.Tier)),
			})
		}

		// 2. Чемпионы: всегда пять, пустые слоты занимают замены
		for _, role := range domain.Roles {
			p := rosters[team].Player(role)
			snap.Champions = append(snap.Champions, domain.Champion{
				ID:      types.PackEntityID(enums.EntityKindChampion, uint8(team), uint32(role)),
				Name:    p.Name,
				Role:    role,
				Team:    team,
				Pos:     base,
				Dest:    base,
				Health:  domain.NewHealth(domain.ChampionMaxHP(p.Skills)),
				Damage:  domain.ChampionDamage(p.Skills),
				Skills:  p.Skills,
				Stamina: domain.MaxStamina,
			})
		}

		// 3. Лагеря появляются не сразу
		for _, tpl := range arena.CampTemplates(team) {
			snap.Camps = append(snap.Camps, newCamp(tpl, team, campIndex))
			campIndex++
		}
	}

	for _, tpl := range arena.RiverCamps() {
		snap.Camps = append(snap.Camps, newCamp(tpl, domain.TeamNeutral, campIndex))
		campIndex++
	}

	return snap
}

func newCamp(tpl arena.CampTemplate, owner domain.Team, index uint32) domain.JungleCamp {
	first := domain.CampFirstSpawn
	if tpl.Kind == domain.CampScuttle {
		first = domain.ScuttleFirstSpawn
	}
	if tpl.Neutral {
		owner = domain.TeamNeutral
	}
	return domain.JungleCamp{
		ID:          types.PackEntityID(enums.EntityKindCamp, uint8(owner), index),
		Kind:        tpl.Kind,
		Owner:       owner,
		Pos:         tpl.Pos,
		RespawnTime: first,
	}
}
