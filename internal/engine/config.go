package engine

import (
	"time"

	"rift-server/internal/domain"
)

// Config хранит параметры запуска матча
type Config struct {
	// Seed - зерно генератора. 0 - случайное; фактический сид
	// сохраняется в матче, чтобы прогон можно было повторить.
	Seed int64

	// TickPeriod - реальная длительность тика при визуализации.
	TickPeriod time.Duration

	// TickMinutes - сколько игровых минут проходит за тик.
	TickMinutes float64

	// FinishDelay - пауза между падением нексуса и завершением матча,
	// чтобы зрители успели увидеть финальный кадр.
	FinishDelay time.Duration

	// MaxMinutes - аварийный предел: если матч все еще идет, он
	// принудительно завершается в пользу победителя по резолверу.
	MaxMinutes float64

	// SuddenDeathMinute - с какой минуты база проигравшего начинает
	// рушиться сама. 0 - значение по умолчанию, отрицательное - выключено.
	SuddenDeathMinute float64
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:              0,
		TickPeriod:        100 * time.Millisecond,
		TickMinutes:       0.1,
		FinishDelay:       3 * time.Second,
		MaxMinutes:        60,
		SuddenDeathMinute: domain.SuddenDeathMinute,
	}
}

// withDefaults подставляет значения по умолчанию в пустые поля.
func (c Config) withDefaults() Config {
	def := NewConfig()
	if c.TickPeriod <= 0 {
		c.TickPeriod = def.TickPeriod
	}
	if c.TickMinutes <= 0 {
		c.TickMinutes = def.TickMinutes
	}
	if c.FinishDelay < 0 {
		c.FinishDelay = 0
	}
	if c.MaxMinutes <= 0 {
		c.MaxMinutes = def.MaxMinutes
	}
	if c.SuddenDeathMinute == 0 {
		c.SuddenDeathMinute = def.SuddenDeathMinute
	}
	return c
}
