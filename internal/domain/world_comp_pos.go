package domain

import "math"

// Position - точка на нормированной арене 0..100 x 0..100.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo возвращает евклидово расстояние до другой точки
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// StepToward возвращает новую позицию после шага не длиннее step
// в сторону dest. Не подходит к цели ближе, чем на stop.
// Текущая позиция не меняется (Position передается по значению).
func (p Position) StepToward(dest Position, step, stop float64) Position {
	dist := p.DistanceTo(dest)
	if dist <= stop || dist == 0 {
		return p
	}
	travel := math.Min(step, dist-stop)
	return Position{
		X: p.X + (dest.X-p.X)/dist*travel,
		Y: p.Y + (dest.Y-p.Y)/dist*travel,
	}
}

// Mirror - центральная симметрия относительно (50,50).
// Раскладка красной стороны получается зеркалом синей.
func (p Position) Mirror() Position {
	return Position{X: ArenaSize - p.X, Y: ArenaSize - p.Y}
}

// Clamp удерживает точку в границах арены.
func (p Position) Clamp() Position {
	return Position{
		X: math.Max(0, math.Min(ArenaSize, p.X)),
		Y: math.Max(0, math.Min(ArenaSize, p.Y)),
	}
}
