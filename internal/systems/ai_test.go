package systems

import (
	"testing"

	"rift-server/internal/core/types/enums"
	"rift-server/internal/domain"
)

func TestSelectAction(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *domain.Snapshot) *domain.Champion
		action enums.ActionState
		check  func(t *testing.T, s *domain.Snapshot, d Decision)
	}{
		{
			name: "Low health flees to base",
			setup: func(s *domain.Snapshot) *domain.Champion {
				c := newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{X: 50, Y: 50})
				c.HP = c.MaxHP * 0.2
				s.Champions = append(s.Champions, c)
				return &s.Champions[0]
			},
			action: enums.ActionFlee,
			check: func(t *testing.T, s *domain.Snapshot, d Decision) {
				if d.Dest != s.Base(domain.TeamBlue) {
					t.Errorf("Expected to flee to base, got %v", d.Dest)
				}
			},
		},
		{
			name: "Clutching champion does not flee",
			setup: func(s *domain.Snapshot) *domain.Champion {
				c := newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{X: 50, Y: 50})
				c.HP = c.MaxHP * 0.2
				c.IsClutching = true
				s.Champions = append(s.Champions, c)
				return &s.Champions[0]
			},
			action: enums.ActionPush,
		},
		{
			name: "Recovers at fountain until healed",
			setup: func(s *domain.Snapshot) *domain.Champion {
				c := newTestChampion(domain.TeamBlue, domain.RoleTop, s.Base(domain.TeamBlue))
				c.HP = c.MaxHP * 0.6
				s.Champions = append(s.Champions, c)
				return &s.Champions[0]
			},
			action: enums.ActionFlee,
		},
		{
			name: "Fights the nearest enemy champion",
			setup: func(s *domain.Snapshot) *domain.Champion {
				s.Champions = append(s.Champions,
					newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{X: 50, Y: 50}),
					newTestChampion(domain.TeamRed, domain.RoleMid, domain.Position{X: 53, Y: 50}),
				)
				return &s.Champions[0]
			},
			action: enums.ActionFight,
			check: func(t *testing.T, s *domain.Snapshot, d Decision) {
				if d.TargetID != s.Champions[1].ID {
					t.Errorf("Expected enemy mid as target, got %v", d.TargetID)
				}
			},
		},
		{
			name: "Hits an open turret before its minions",
			setup: func(s *domain.Snapshot) *domain.Champion {
				s.Clock = 20
				s.Champions = append(s.Champions, newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{X: 56, Y: 44}))
				s.Minions = append(s.Minions, newTestMinion(domain.TeamRed, 0, domain.Position{X: 52, Y: 48}))
				return &s.Champions[0]
			},
			action: enums.ActionPush,
			check: func(t *testing.T, s *domain.Snapshot, d Decision) {
				want := findStructure(s, domain.TeamRed, domain.LaneMid, domain.TierOuter)
				if d.TargetID != want.ID {
					t.Errorf("Expected red mid outer turret as target, got %v", d.TargetID)
				}
			},
		},
		{
			name: "Fights a minion away from turrets",
			setup: func(s *domain.Snapshot) *domain.Champion {
				s.Clock = 20
				s.Champions = append(s.Champions, newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{X: 50, Y: 50}))
				s.Minions = append(s.Minions, newTestMinion(domain.TeamRed, 0, domain.Position{X: 53, Y: 50}))
				return &s.Champions[0]
			},
			action: enums.ActionFight,
			check: func(t *testing.T, s *domain.Snapshot, d Decision) {
				if d.TargetID != s.Minions[0].ID {
					t.Errorf("Expected the minion as target, got %v", d.TargetID)
				}
			},
		},
		{
			name: "Defends the base under siege",
			setup: func(s *domain.Snapshot) *domain.Champion {
				s.Clock = 20
				s.Champions = append(s.Champions, newTestChampion(domain.TeamBlue, domain.RoleTop, domain.Position{X: 8, Y: 40}))
				s.Minions = append(s.Minions, newTestMinion(domain.TeamRed, 0, domain.Position{X: 15, Y: 80}))
				return &s.Champions[0]
			},
			action: enums.ActionDefend,
			check: func(t *testing.T, s *domain.Snapshot, d Decision) {
				if d.Dest != (domain.Position{X: 15, Y: 80}) {
					t.Errorf("Expected to head to the intruder, got %v", d.Dest)
				}
			},
		},
		{
			name: "Goes for dragon with enough allies",
			setup: func(s *domain.Snapshot) *domain.Champion {
				s.Clock = 6
				s.Dragon.Alive = true
				s.Champions = append(s.Champions,
					newTestChampion(domain.TeamBlue, domain.RoleADC, domain.Position{X: 70, Y: 85}),
					newTestChampion(domain.TeamBlue, domain.RoleSupport, domain.Position{X: 72, Y: 86}),
				)
				return &s.Champions[0]
			},
			action: enums.ActionDragon,
		},
		{
			name: "Lone champion ignores baron",
			setup: func(s *domain.Snapshot) *domain.Champion {
				s.Clock = 21
				s.Baron.Alive = true
				s.Champions = append(s.Champions, newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{X: 35, Y: 30}))
				return &s.Champions[0]
			},
			action: enums.ActionPush,
		},
		{
			name: "Jungler farms the nearest camp",
			setup: func(s *domain.Snapshot) *domain.Champion {
				s.Camps = append(s.Camps,
					domain.JungleCamp{ID: 1, Owner: domain.TeamBlue, Alive: true, Pos: domain.Position{X: 24, Y: 55}},
					domain.JungleCamp{ID: 2, Owner: domain.TeamRed, Alive: true, Pos: domain.Position{X: 26, Y: 50}},
				)
				s.Champions = append(s.Champions, newTestChampion(domain.TeamBlue, domain.RoleJungle, domain.Position{X: 26, Y: 52}))
				return &s.Champions[0]
			},
			action: enums.ActionFarm,
			check: func(t *testing.T, s *domain.Snapshot, d Decision) {
				if d.TargetID != 1 {
					t.Errorf("Expected own camp, got %v", d.TargetID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSnapshot(2)
			c := tt.setup(s)
			d := SelectAction(c, s, &seqRng{vals: []float64{0.99}})

			if d.Action != tt.action {
				t.Fatalf("Expected action %v, got %v", tt.action, d.Action)
			}
			if tt.check != nil {
				tt.check(t, s, d)
			}
		})
	}
}

func TestSelectAction_JunglerGank(t *testing.T) {
	s := newTestSnapshot(domain.GankFromMinute + 1)
	s.Champions = append(s.Champions, newTestChampion(domain.TeamRed, domain.RoleJungle, domain.Position{X: 60, Y: 40}))
	c := &s.Champions[0]

	d := SelectAction(c, s, &seqRng{vals: []float64{0}})
	if d.Action != enums.ActionGank {
		t.Fatalf("Expected a gank, got %v", d.Action)
	}
	if c.GankUntil <= s.Clock {
		t.Error("Expected gank intent to be stored on the champion")
	}

	// Намерение держится, даже если новый бросок неудачен.
	d = SelectAction(c, s, &seqRng{vals: []float64{0.99}})
	if d.Action != enums.ActionGank {
		t.Errorf("Expected gank to persist, got %v", d.Action)
	}
}

func TestPushTarget(t *testing.T) {
	t.Run("Laner pushes own lane during laning", func(t *testing.T) {
		s := newTestSnapshot(5)
		c := newTestChampion(domain.TeamBlue, domain.RoleTop, s.Base(domain.TeamBlue))

		got := PushTarget(&c, s)
		if got == nil || got.Team != domain.TeamRed || got.Lane != domain.LaneTop || got.Tier != domain.TierOuter {
			t.Fatalf("Expected red top outer turret, got %+v", got)
		}
	})

	t.Run("Weakest structure later in the game", func(t *testing.T) {
		s := newTestSnapshot(20)
		weak := findStructure(s, domain.TeamRed, domain.LaneBot, domain.TierOuter)
		weak.HP = weak.MaxHP * 0.1
		c := newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{X: 50, Y: 50})

		if got := PushTarget(&c, s); got != weak {
			t.Errorf("Expected the weakest turret, got %+v", got)
		}
	})

	t.Run("Tie goes to the lane with fewer structures", func(t *testing.T) {
		s := newTestSnapshot(20)
		destroy(findStructure(s, domain.TeamRed, domain.LaneMid, domain.TierOuter))
		c := newTestChampion(domain.TeamBlue, domain.RoleTop, domain.Position{X: 8, Y: 8})

		got := PushTarget(&c, s)
		if got == nil || got.Lane != domain.LaneMid || got.Tier != domain.TierInner {
			t.Errorf("Expected red mid inner turret, got %+v", got)
		}
	})
}

func TestUnderSiege(t *testing.T) {
	s := newTestSnapshot(20)
	if _, ok := UnderSiege(s, domain.TeamBlue); ok {
		t.Fatal("Expected no siege on an empty map")
	}

	s.Champions = append(s.Champions, newTestChampion(domain.TeamRed, domain.RoleMid, domain.Position{X: 20, Y: 80}))
	pos, ok := UnderSiege(s, domain.TeamBlue)
	if !ok || pos != (domain.Position{X: 20, Y: 80}) {
		t.Errorf("Expected siege at the intruder, got %v %v", pos, ok)
	}
	if _, ok := UnderSiege(s, domain.TeamRed); ok {
		t.Error("Expected red base to be safe")
	}
}

func TestRollClutch(t *testing.T) {
	s := newTestSnapshot(6)
	s.Dragon.Alive = true

	star := newTestChampion(domain.TeamBlue, domain.RoleADC, domain.Position{X: 70, Y: 80})
	star.Skills = domain.Skills{Mechanics: 99, Macro: 99, Lane: 99, Teamfight: 99}

	if !RollClutch(&star, s, &seqRng{vals: []float64{0.1}}) {
		t.Error("Expected a high rated player near dragon to clutch")
	}
	if RollClutch(&star, s, &seqRng{vals: []float64{0.5}}) {
		t.Error("Expected the roll to fail above the chance")
	}

	average := newTestChampion(domain.TeamBlue, domain.RoleSupport, domain.Position{X: 70, Y: 80})
	if RollClutch(&average, s, &seqRng{vals: []float64{0}}) {
		t.Error("Expected no clutch below the rating floor")
	}

	star.Pos = domain.Position{X: 50, Y: 50}
	if RollClutch(&star, s, &seqRng{vals: []float64{0}}) {
		t.Error("Expected no clutch away from objectives and sieges")
	}
}
