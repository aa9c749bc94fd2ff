package domain

import (
	"math"
	"testing"
)

func TestSnapshot_CloneIsDeep(t *testing.T) {
	s := &Snapshot{
		Structures: []Structure{{Tier: TierNexus, Team: TeamBlue, Alive: true, Health: NewHealth(100)}},
		Champions:  []Champion{{Name: "a", Health: NewHealth(50)}},
		Minions:    []Minion{{Health: NewHealth(10)}},
		Camps:      []JungleCamp{{Alive: true}},
	}

	c := s.Clone()
	c.Structures[0].HP = 1
	c.Champions[0].Name = "b"
	c.Minions[0].HP = 0
	c.Camps[0].Alive = false
	c.Dragon.Stacks[TeamRed] = 3

	if s.Structures[0].HP != 100 || s.Champions[0].Name != "a" || s.Minions[0].HP != 10 || !s.Camps[0].Alive {
		t.Fatal("clone shares slices with the original")
	}
	if s.Dragon.Stacks[TeamRed] != 0 {
		t.Fatal("clone shares dragon stacks with the original")
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	s := &Snapshot{
		Structures: []Structure{
			{Tier: TierOuter, Team: TeamRed},
			{Tier: TierNexus, Team: TeamRed},
		},
	}
	s.Bases[TeamBlue] = Position{X: 5, Y: 95}

	if n := s.Nexus(TeamRed); n == nil || n.Tier != TierNexus {
		t.Fatalf("Nexus(red) = %+v", n)
	}
	if n := s.Nexus(TeamBlue); n != nil {
		t.Fatalf("Nexus(blue) = %+v, want nil", n)
	}
	if got := s.Base(TeamBlue); got != (Position{X: 5, Y: 95}) {
		t.Errorf("Base(blue) = %+v", got)
	}
	if got := s.Base(TeamNeutral); got != (Position{X: ArenaSize / 2, Y: ArenaSize / 2}) {
		t.Errorf("Base(neutral) = %+v", got)
	}
}

func TestPosition_StepToward(t *testing.T) {
	tests := []struct {
		name     string
		from     Position
		to       Position
		step     float64
		stop     float64
		expected Position
	}{
		{"full step", Position{0, 0}, Position{10, 0}, 3, 0, Position{3, 0}},
		{"stops at distance", Position{0, 0}, Position{10, 0}, 20, 2, Position{8, 0}},
		{"already close", Position{9, 0}, Position{10, 0}, 5, 2, Position{9, 0}},
		{"same point", Position{4, 4}, Position{4, 4}, 1, 0, Position{4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.StepToward(tt.to, tt.step, tt.stop)
			if math.Abs(got.X-tt.expected.X) > 1e-9 || math.Abs(got.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("StepToward() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestPosition_MirrorAndClamp(t *testing.T) {
	p := Position{X: 10, Y: 80}
	if got := p.Mirror(); got != (Position{X: 90, Y: 20}) {
		t.Errorf("Mirror() = %+v", got)
	}
	if got := (Position{X: -5, Y: 120}).Clamp(); got != (Position{X: 0, Y: ArenaSize}) {
		t.Errorf("Clamp() = %+v", got)
	}
}

func TestChampion_CanAct(t *testing.T) {
	c := Champion{Health: NewHealth(100)}
	if !c.CanAct() {
		t.Error("Expected a live champion to act")
	}
	c.IsDead = true
	if c.CanAct() {
		t.Error("Expected a dead champion to sit out")
	}
}
