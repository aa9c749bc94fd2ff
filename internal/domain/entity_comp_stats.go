package domain

import "math"

// Health - очки здоровья. Встраивается во все сущности, у которых есть HP.
// Инвариант: 0 <= HP <= MaxHP.
type Health struct {
	HP    float64 `json:"hp"`
	MaxHP float64 `json:"maxHp"`
}

// NewHealth - полное здоровье.
func NewHealth(max float64) Health {
	return Health{HP: max, MaxHP: max}
}

// TakeDamage наносит урон. Возвращает true, если HP дошло до нуля
// именно этим ударом.
func (h *Health) TakeDamage(amount float64) bool {
	if h.HP <= 0 {
		return false
	}
	if amount < 0 || math.IsNaN(amount) {
		amount = 0
	}

	h.HP -= amount

	if h.HP <= 0 {
		h.HP = 0
		return true
	}
	return false
}

// Heal лечит, не превышая максимум. Мертвых (HP=0) не лечит.
func (h *Health) Heal(amount float64) {
	if h.HP <= 0 || amount <= 0 {
		return
	}
	h.HP = math.Min(h.MaxHP, h.HP+amount)
}

// Restore - полное восстановление (респавн).
func (h *Health) Restore() {
	h.HP = h.MaxHP
}

// Ratio - доля оставшегося здоровья; 0 для MaxHP=0.
func (h Health) Ratio() float64 {
	if h.MaxHP <= 0 {
		return 0
	}
	return h.HP / h.MaxHP
}

// Skills - игровые характеристики игрока, 0..99.
type Skills struct {
	Mechanics int `json:"mechanics"`
	Macro     int `json:"macro"`
	Lane      int `json:"lane"`
	Teamfight int `json:"teamfight"`
}

// DefaultSkills - шаблон для пустого слота в составе.
func DefaultSkills() Skills {
	return Skills{
		Mechanics: DefaultSkillRating,
		Macro:     DefaultSkillRating,
		Lane:      DefaultSkillRating,
		Teamfight: DefaultSkillRating,
	}
}

// Average - общий рейтинг игрока.
func (s Skills) Average() float64 {
	return float64(s.Mechanics+s.Macro+s.Lane+s.Teamfight) / 4
}

// ClutchRating - насколько игрок "вытаскивает" решающие моменты.
func (s Skills) ClutchRating() float64 {
	return float64(s.Teamfight+s.Macro) / 2
}

// ChampionMaxHP и ChampionDamage выводят боевые параметры из рейтинга.
func ChampionMaxHP(s Skills) float64 {
	return 600 + 6*s.Average()
}

func ChampionDamage(s Skills) float64 {
	return 40 + 0.8*s.Average()
}

// MinionMaxHP и MinionDamage растут со временем матча.
func MinionMaxHP(minute float64) float64 {
	return 300 + 12*minute
}

func MinionDamage(minute float64) float64 {
	return 12 + 0.8*minute
}

// StructureMaxHP - запас прочности по ярусу.
func StructureMaxHP(t StructureTier) float64 {
	switch t {
	case TierOuter:
		return 3000
	case TierInner:
		return 3500
	case TierInhibTurret:
		return 4000
	case TierInhibitor:
		return 3000
	case TierNexusTurret:
		return 4500
	case TierNexus:
		return 5500
	}
	return 3000
}

// TurretDamage - урон выстрела башни по чемпиону.
func TurretDamage(minute float64) float64 {
	return 150 + 3*minute
}

// CampMaxHP - здоровье лагеря при появлении.
func CampMaxHP(k CampKind, minute float64) float64 {
	base := 1000.0
	switch k {
	case CampBuff:
		base = 1800
	case CampScuttle:
		base = 1200
	}
	return base * (1 + minute/30)
}

// CampDamage - ответный урон лагеря по атакующему.
func CampDamage(minute float64) float64 {
	return 20 + minute
}
