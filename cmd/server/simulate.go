package main

import (
	"encoding/json"
	"fmt"
	"os"

	"rift-server/internal/domain"
	"rift-server/internal/engine"
	"rift-server/internal/infrastructure/storage"
	"rift-server/internal/version"
	"rift-server/pkg/api"
	"rift-server/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	simSeed       int64
	simRequest    string
	simArchiveDir string
	simVerbose    bool
	simSudden     float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one match to completion without pauses and print the summary",
	RunE:  runSimulate,
}

var replayCmd = &cobra.Command{
	Use:   "replay [archive.rfma]",
	Short: "Re-run an archived match and compare the event log",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "RNG seed (0 for random)")
	simulateCmd.Flags().StringVar(&simRequest, "request", "", "Path to a JSON StartMatchRequest (default: demo rosters)")
	simulateCmd.Flags().StringVar(&simArchiveDir, "archive", "", "Write an .rfma archive into this directory")
	simulateCmd.Flags().BoolVar(&simVerbose, "events", false, "Print every event")
	simulateCmd.Flags().Float64Var(&simSudden, "sudden-death", 0, "Minute the loser's base starts to crumble (0 for default, negative to disable)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	req := demoRequest()
	if simRequest != "" {
		raw, err := os.ReadFile(simRequest)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("failed to parse %s: %w", simRequest, err)
		}
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	blue, red, outcome, err := engine.FromRequest(req)
	if err != nil {
		return err
	}

	cfg := engine.NewConfig()
	cfg.Seed = simSeed
	if simSudden != 0 {
		cfg.SuddenDeathMinute = simSudden
	}
	if req.Seed != 0 && simSeed == 0 {
		cfg.Seed = req.Seed
	}

	m := engine.NewMatch(blue, red, outcome, cfg)
	summary := m.Simulate()

	if simVerbose {
		for _, ev := range m.Events() {
			fmt.Printf("[%5.1f] %-20s %s\n", ev.Minute, ev.Type, ev.Text)
		}
	}
	printSummary(summary)

	if simArchiveDir != "" {
		archive, err := storage.NewArchiveService(simArchiveDir)
		if err != nil {
			return err
		}
		path, err := archive.Save(engine.BuildArchive(m))
		if err != nil {
			return fmt.Errorf("failed to write archive: %w", err)
		}
		logger.Log.WithField("path", path).Info("Match archived")
	}
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	archive := &storage.ArchiveService{}
	a, err := archive.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load archive: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"seed":   a.Seed,
		"ticks":  a.TickCount,
		"events": len(a.Events),
	}).Info("Replaying archived match")

	if !version.Replayable(a.Meta.Balance) {
		logger.Log.WithFields(logrus.Fields{
			"archive": a.Meta.Balance,
			"engine":  version.Balance,
		}).Warn("Archive was recorded with another balance revision, events may differ")
	}

	m, mismatches := engine.Replay(a)
	printSummary(m.Summary())

	if mismatches > 0 {
		return fmt.Errorf("replay diverged: %d events differ", mismatches)
	}
	fmt.Println("Replay matches the archive.")
	return nil
}

func printSummary(s domain.MatchSummary) {
	winner := s.BlueTeam
	if s.Winner == domain.TeamRed {
		winner = s.RedTeam
	}
	fmt.Printf("%s vs %s\n", s.BlueTeam, s.RedTeam)
	fmt.Printf("Победитель: %s на %.1f минуте (сид %d)\n", winner, s.Minutes, s.Seed)
	fmt.Printf("Убийства: %d - %d, драконы: %d - %d\n", s.Kills[0], s.Kills[1], s.Dragons[0], s.Dragons[1])
	fmt.Printf("MVP: %s (%.0f)\n", s.MVP, s.MVPScore)
}

func demoRequest() api.StartMatchRequest {
	team := func(name string, base int) api.TeamRequest {
		t := api.TeamRequest{Name: name}
		for i, role := range []string{"top", "jungle", "mid", "adc", "support"} {
			r := base + i
			t.Players = append(t.Players, api.PlayerRequest{
				Name:      fmt.Sprintf("%s %s", name, role),
				Role:      role,
				Mechanics: r,
				Macro:     r - 2,
				Lane:      r + 1,
				Teamfight: r,
			})
		}
		return t
	}
	return api.StartMatchRequest{
		Blue:    team("Azure", 74),
		Red:     team("Crimson", 70),
		Outcome: api.OutcomeRequest{BlueWins: true, Score: [2]int{1, 0}},
	}
}
