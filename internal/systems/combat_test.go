package systems

import (
	"math"
	"math/rand"
	"testing"

	"rift-server/internal/core/types"
	"rift-server/internal/core/types/enums"
	"rift-server/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTimeScale(t *testing.T) {
	tests := []struct {
		minute float64
		want   float64
	}{
		{0, 1},
		{9.9, 1},
		{10, 1.15},
		{19.9, 1.15},
		{20, 1.4},
		{30, 2},
		{40, 2 + 10*domain.TimeScaleSlope},
		{55, 2 + 25*domain.TimeScaleSlope},
	}

	for _, tt := range tests {
		if got := TimeScale(tt.minute); !almostEqual(got, tt.want) {
			t.Errorf("TimeScale(%v) = %v, want %v", tt.minute, got, tt.want)
		}
	}
}

func TestPowerMultiplier(t *testing.T) {
	tests := []struct {
		name      string
		diff      float64
		blue, red float64
	}{
		{"Equal power is neutral", 0, 1, 1},
		{"Blue favored", 8, 1.2, 1},
		{"Red favored", -8, 1, 1.2},
		{"Bonus is capped", 100, 1 + domain.PowerBonusCap, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := domain.MatchOutcome{BlueWins: tt.diff >= 0, PowerDiff: tt.diff}
			if got := PowerMultiplier(domain.TeamBlue, o); !almostEqual(got, tt.blue) {
				t.Errorf("blue = %v, want %v", got, tt.blue)
			}
			if got := PowerMultiplier(domain.TeamRed, o); !almostEqual(got, tt.red) {
				t.Errorf("red = %v, want %v", got, tt.red)
			}
		})
	}
}

func TestLaneSkew(t *testing.T) {
	atk := newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{})
	def := newTestChampion(domain.TeamRed, domain.RoleMid, domain.Position{})

	atk.Skills.Lane, def.Skills.Lane = 80, 70
	if got := LaneSkew(&atk, &def, 5); !almostEqual(got, 1.1) {
		t.Errorf("Expected 1.1 skew, got %v", got)
	}

	atk.Skills.Lane, def.Skills.Lane = 99, 0
	if got := LaneSkew(&atk, &def, 5); got != domain.LaneSkewMax {
		t.Errorf("Expected skew clamped to %v, got %v", domain.LaneSkewMax, got)
	}
	if got := LaneSkew(&def, &atk, 5); got != domain.LaneSkewMin {
		t.Errorf("Expected skew clamped to %v, got %v", domain.LaneSkewMin, got)
	}

	if got := LaneSkew(&atk, &def, domain.LaningPhaseEnd); got != 1 {
		t.Errorf("Expected no skew after laning phase, got %v", got)
	}
}

func TestLaneSkew_OnlySameRole(t *testing.T) {
	jungle := newTestChampion(domain.TeamBlue, domain.RoleJungle, domain.Position{})
	adc := newTestChampion(domain.TeamRed, domain.RoleADC, domain.Position{})
	jungle.Skills.Lane, adc.Skills.Lane = 99, 0

	if got := LaneSkew(&jungle, &adc, 5); got != 1 {
		t.Errorf("Expected no skew between different roles, got %v", got)
	}
	if got := LaneSkew(&adc, &jungle, 5); got != 1 {
		t.Errorf("Expected no skew between different roles, got %v", got)
	}
}

func TestEscalationMultiplier(t *testing.T) {
	if got := EscalationMultiplier(20); got != 1 {
		t.Errorf("Expected no escalation before minute 25, got %v", got)
	}
	if got, want := EscalationMultiplier(30), 1+5*domain.StructureEscalationRate; !almostEqual(got, want) {
		t.Errorf("Expected %v at minute 30, got %v", want, got)
	}
	if EscalationMultiplier(40) <= EscalationMultiplier(35) {
		t.Error("Expected escalation to keep growing")
	}
}

func TestStructureEscalation(t *testing.T) {
	o := domain.MatchOutcome{BlueWins: true}

	if got := StructureEscalation(domain.TeamRed, o, 20); got != 1 {
		t.Errorf("Expected no escalation for either side before minute 25, got %v", got)
	}
	for _, minute := range []float64{30, 40, 50} {
		win := StructureEscalation(domain.TeamBlue, o, minute)
		lose := StructureEscalation(domain.TeamRed, o, minute)
		if !almostEqual(win, EscalationMultiplier(minute)) {
			t.Errorf("Expected the supposed winner to get the full escalation at %v, got %v", minute, win)
		}
		if lose >= 1 || !almostEqual(win*lose, 1) {
			t.Errorf("Expected the supposed loser to be damped at %v, got %v", minute, lose)
		}
	}
}

func TestMinionVsUnit_WinnerWinsWavesAfterLaning(t *testing.T) {
	o := domain.MatchOutcome{BlueWins: true}
	blue := newTestMinion(domain.TeamBlue, 0, domain.Position{})
	red := newTestMinion(domain.TeamRed, 0, domain.Position{})

	hit := func(m *domain.Minion, clock float64) float64 {
		return MinionVsUnit(m, clock, o, rand.New(rand.NewSource(3)))
	}

	if !almostEqual(hit(&blue, 10), hit(&red, 10)) {
		t.Error("Expected equal minions during laning")
	}
	if got, want := hit(&blue, 20), hit(&red, 20)*domain.WinnerMinions; !almostEqual(got, want) {
		t.Errorf("Expected the supposed winner's minion to hit for %v, got %v", want, got)
	}
}

func TestTurretVsMinion_SuperMinionLastsLonger(t *testing.T) {
	regular := domain.Minion{Health: domain.NewHealth(domain.MinionMaxHP(30))}
	super := domain.Minion{Health: domain.NewHealth(domain.MinionMaxHP(30) * domain.SuperMinionHP), Super: true}

	if !almostEqual(TurretVsMinion(&regular), TurretVsMinion(&super)) {
		t.Error("Expected the turret shot to be sized by a regular minion")
	}
	shots := math.Ceil(super.MaxHP / TurretVsMinion(&super))
	if shots <= math.Ceil(regular.MaxHP/TurretVsMinion(&regular)) {
		t.Errorf("Expected a super minion to survive more shots, got %v", shots)
	}
}

// Перевес по силе дает стабильно больший урон по строениям
// при одинаковой последовательности случайных чисел.
func TestChampionVsStructure_FavoredSideDealsMore(t *testing.T) {
	s := newTestSnapshot(22)
	c := newTestChampion(domain.TeamBlue, domain.RoleTop, domain.Position{})

	total := func(o domain.MatchOutcome) float64 {
		rng := rand.New(rand.NewSource(42))
		sum := 0.0
		for i := 0; i < 200; i++ {
			sum += ChampionVsStructure(&c, s, o, rng)
		}
		return sum
	}

	neutral := total(domain.MatchOutcome{BlueWins: true, PowerDiff: 0})
	favored := total(domain.MatchOutcome{BlueWins: true, PowerDiff: 20})

	if favored <= neutral {
		t.Errorf("Expected favored side to deal more: favored=%v neutral=%v", favored, neutral)
	}
}

func TestChampionVsChampion_Jitter(t *testing.T) {
	s := newTestSnapshot(20)
	atk := newTestChampion(domain.TeamBlue, domain.RoleMid, domain.Position{})
	def := newTestChampion(domain.TeamRed, domain.RoleMid, domain.Position{})
	atk.Skills.Mechanics, def.Skills.Mechanics = 0, 0 // без критов и уклонений
	o := domain.MatchOutcome{BlueWins: true}

	rng := rand.New(rand.NewSource(7))
	lo := atk.Damage * (1 - domain.JitterSpread)
	hi := atk.Damage * (1 + domain.JitterSpread)
	for i := 0; i < 500; i++ {
		got := ChampionVsChampion(&atk, &def, s, o, rng)
		if got < lo-1e-9 || got > hi+1e-9 {
			t.Fatalf("Damage %v outside jitter band [%v, %v]", got, lo, hi)
		}
	}
}

func TestDamageBuffer(t *testing.T) {
	buf := NewDamageBuffer()
	victim := types.PackEntityID(enums.EntityKindChampion, 1, 0)
	first := types.PackEntityID(enums.EntityKindChampion, 0, 1)
	second := types.PackEntityID(enums.EntityKindMinion, 0, 9)

	buf.Add(victim, first, 100)
	buf.Add(victim, second, 50)
	buf.Add(victim, first, 25)
	buf.Add(victim, second, math.NaN())
	buf.Add(types.NilEntityID, first, 10)

	p := buf.For(victim)
	if p == nil {
		t.Fatal("Expected pending damage for victim")
	}
	if p.Total != 175 {
		t.Errorf("Expected total 175, got %v", p.Total)
	}
	if len(p.Attackers) != 2 || p.Attackers[0] != first || p.Attackers[1] != second {
		t.Errorf("Expected attackers [first second], got %v", p.Attackers)
	}
	if buf.Len() != 1 {
		t.Errorf("Expected 1 target, got %d", buf.Len())
	}
}
