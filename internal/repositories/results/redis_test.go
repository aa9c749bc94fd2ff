package results_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"rift-server/internal/domain"
	"rift-server/internal/repositories/results"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo results.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	repo, err := results.NewRedis(&results.RedisConfig{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.mr.Close()
}

func summaryAt(id string, finished time.Time) domain.MatchSummary {
	return domain.MatchSummary{
		MatchID:    id,
		BlueTeam:   "Azure",
		RedTeam:    "Crimson",
		Winner:     domain.TeamRed,
		Minutes:    31.4,
		Kills:      [2]int{12, 19},
		Dragons:    [2]int{1, 3},
		MVP:        "Crimson Mid",
		MVPScore:   412,
		Seed:       42,
		FinishedAt: finished,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	testCases := []struct {
		name string
		cfg  *results.RedisConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "nil client", cfg: &results.RedisConfig{}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := results.NewRedis(tc.cfg)
			s.Error(err)
			s.Nil(repo)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	finished := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := summaryAt("m-1", finished)

	s.Require().NoError(s.repo.Save(s.ctx, in))
	s.True(s.mr.Exists(results.GetKey("m-1")))

	got, err := s.repo.Get(s.ctx, "m-1")
	s.Require().NoError(err)
	s.Equal(in.Winner, got.Winner)
	s.Equal(in.Kills, got.Kills)
	s.Equal(in.Dragons, got.Dragons)
	s.Equal(in.MVP, got.MVP)
	s.True(in.FinishedAt.Equal(got.FinishedAt))
}

func (s *RedisRepositoryTestSuite) TestGet_Errors() {
	testCases := []struct {
		name    string
		matchID string
		wantErr error
	}{
		{name: "empty id", matchID: "", wantErr: results.ErrEmptyMatchID},
		{name: "missing", matchID: "nope", wantErr: results.ErrNotFound},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := s.repo.Get(s.ctx, tc.matchID)
			s.Nil(got)
			s.True(errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGet_CorruptPayload() {
	s.Require().NoError(s.mr.Set(results.GetKey("bad"), "{not json"))

	got, err := s.repo.Get(s.ctx, "bad")
	s.Nil(got)
	s.Error(err)
	s.False(errors.Is(err, results.ErrNotFound))
}

func (s *RedisRepositoryTestSuite) TestSave_EmptyID() {
	err := s.repo.Save(s.ctx, domain.MatchSummary{})
	s.ErrorIs(err, results.ErrEmptyMatchID)
}

func (s *RedisRepositoryTestSuite) TestRecent_NewestFirst() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("m-%d", i)
		s.Require().NoError(s.repo.Save(s.ctx, summaryAt(id, base.Add(time.Duration(i)*time.Minute))))
	}

	got, err := s.repo.Recent(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("m-4", got[0].MatchID)
	s.Equal("m-3", got[1].MatchID)
	s.Equal("m-2", got[2].MatchID)
}

func (s *RedisRepositoryTestSuite) TestRecent_SkipsMissingRecords() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.Save(s.ctx, summaryAt("a", base)))
	s.Require().NoError(s.repo.Save(s.ctx, summaryAt("b", base.Add(time.Minute))))
	s.mr.Del(results.GetKey("b"))

	got, err := s.repo.Recent(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("a", got[0].MatchID)
}

func (s *RedisRepositoryTestSuite) TestRecent_ZeroLimit() {
	got, err := s.repo.Recent(s.ctx, 0)
	s.NoError(err)
	s.Empty(got)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
