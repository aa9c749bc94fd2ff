// Package version хранит метаданные сборки, которые проставляет
// линкер (-ldflags "-X rift-server/internal/version.BuildDate=..."),
// и ревизию баланса симуляции.
package version

import (
	"fmt"
	"time"
)

// Balance - ревизия боевых формул и таймингов. Повышается всякий раз,
// когда тот же сид начинает давать другой матч: архив старой ревизии
// уже не воспроизводится.
const Balance = 3

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Номер сборки - дни от старта проекта.
var projectStart = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

// Build - сведения о сборке для /version и CLI.
type Build struct {
	Number  int    `json:"buildId"`
	Date    string `json:"buildDate"`
	Commit  string `json:"commit"`
	Branch  string `json:"branch"`
	CI      string `json:"ci"`
	Balance int    `json:"balance"`
	Known   bool   `json:"calculated"`
	Error   string `json:"error,omitempty"`
}

// BuildNumber переводит BuildDate в номер сборки.
func BuildNumber() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}
	day, err := time.ParseInLocation(time.DateOnly, BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if day.Before(projectStart) {
		return 0, fmt.Errorf("BuildDate %s is before project start", BuildDate)
	}
	return int(day.Sub(projectStart).Hours() / 24), nil
}

func Info() Build {
	b := Build{
		Date:    BuildDate,
		Commit:  BuildCommit,
		Branch:  BuildBranch,
		CI:      BuildCI,
		Balance: Balance,
	}
	n, err := BuildNumber()
	if err != nil {
		b.Error = err.Error()
		return b
	}
	b.Number, b.Known = n, true
	return b
}

// Replayable сообщает, воспроизведет ли текущий движок архив
// указанной ревизии. Ноль - архив записан до появления ревизий.
func Replayable(balance int) bool {
	return balance == Balance
}

func String() string {
	b := Info()
	if !b.Known {
		return fmt.Sprintf("rift-server balance r%d, build unknown (%s)", b.Balance, b.Error)
	}
	return fmt.Sprintf("rift-server balance r%d, build %d (%s) commit[%s] branch[%s] ci[%s]",
		b.Balance, b.Number, b.Date,
		orDefault(b.Commit, "unknown"),
		orDefault(b.Branch, "unknown"),
		orDefault(b.CI, "local"),
	)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
