package utils

import (
	"math/rand"
	"time"
)

// Rng - минимальный интерфейс генератора, который нужен симуляции.
// *rand.Rand ему удовлетворяет; в тестах можно подставить заранее
// заданную последовательность.
type Rng interface {
	Float64() float64
	Intn(n int) int
}

// NewRng создает генератор от сида. Сид 0 означает "случайный".
// Возвращает также фактически использованный сид, чтобы его можно было
// записать в архив матча и воспроизвести прогон.
func NewRng(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Chance - бросок Бернулли с вероятностью p.
func Chance(rng Rng, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// Jitter возвращает равномерный множитель из [1-spread, 1+spread].
func Jitter(rng Rng, spread float64) float64 {
	return 1 - spread + rng.Float64()*2*spread
}
