package engine

import (
	"fmt"
	"os"
	"testing"

	"rift-server/internal/domain"
	"rift-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// testRoster - полный состав с одинаковым рейтингом на всех ролях.
func testRoster(name string, rating int) domain.Roster {
	r := domain.Roster{TeamName: name, Players: map[domain.Role]domain.PlayerStats{}}
	for _, role := range domain.Roles {
		r.Players[role] = domain.PlayerStats{
			Name:   fmt.Sprintf("%s %s", name, role),
			Skills: domain.Skills{Mechanics: rating, Macro: rating, Lane: rating, Teamfight: rating},
		}
	}
	return r
}

// fastConfig - конфиг без пауз для тестов.
func fastConfig(seed int64) Config {
	cfg := NewConfig()
	cfg.Seed = seed
	cfg.TickPeriod = 1
	cfg.FinishDelay = 0
	return cfg
}
