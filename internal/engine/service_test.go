package engine

import (
	"context"
	"errors"
	"testing"

	"rift-server/internal/domain"
	"rift-server/internal/network"
	resultsmock "rift-server/internal/repositories/results/mock"
	"rift-server/pkg/api"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	results *resultsmock.MockRepository
	hub     *network.Broadcaster
	svc     *GameService
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.results = resultsmock.NewMockRepository(s.ctrl)
	s.hub = network.NewBroadcaster()

	cfg := fastConfig(0)
	s.svc = NewService(ServiceConfig{
		Match:   cfg,
		Hub:     s.hub,
		Results: s.results,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.svc.Shutdown()
	s.ctrl.Finish()
}

func validRequest() api.StartMatchRequest {
	team := func(name string, rating int) api.TeamRequest {
		t := api.TeamRequest{Name: name}
		for _, role := range []string{"top", "jungle", "mid", "adc", "support"} {
			t.Players = append(t.Players, api.PlayerRequest{
				Name: name + " " + role, Role: role,
				Mechanics: rating, Macro: rating, Lane: rating, Teamfight: rating,
			})
		}
		return t
	}
	return api.StartMatchRequest{
		Blue:    team("Azure", 80),
		Red:     team("Crimson", 70),
		Outcome: api.OutcomeRequest{BlueWins: true, Score: [2]int{2, 1}},
		Seed:    99,
	}
}

func (s *ServiceTestSuite) TestFromRequest_PowerDiff() {
	testCases := []struct {
		name     string
		diff     *float64
		expected float64
	}{
		{name: "computed from rosters", diff: nil, expected: 10},
		{name: "explicit value wins", diff: func() *float64 { v := -3.5; return &v }(), expected: -3.5},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := validRequest()
			req.Outcome.PowerDiff = tc.diff

			blue, red, outcome, err := FromRequest(req)
			s.Require().NoError(err)
			s.Equal("Azure", blue.TeamName)
			s.Len(red.Players, 5)
			s.InDelta(tc.expected, outcome.PowerDiff, 1e-9)
			s.True(outcome.BlueWins)
		})
	}
}

func (s *ServiceTestSuite) TestPrepareMatch_InvalidRequest() {
	req := validRequest()
	req.Red.Players[0].Role = "coach"

	m, err := s.svc.PrepareMatch(req)
	s.Error(err)
	s.Nil(m)
	s.Empty(s.svc.List())
}

func (s *ServiceTestSuite) TestMatchLifecycle_SavesResultAndClosesFeed() {
	m, err := s.svc.PrepareMatch(validRequest())
	s.Require().NoError(err)
	s.Equal(int64(99), m.Seed)

	got, err := s.svc.Get(m.ID)
	s.Require().NoError(err)
	s.Same(m, got)
	s.Len(s.svc.List(), 1)

	_, frames := s.hub.Subscribe(m.ID)

	var saved domain.MatchSummary
	s.results.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sum domain.MatchSummary) error {
			saved = sum
			return nil
		}).
		Times(1)

	m.Simulate()

	s.Equal(m.ID, saved.MatchID)
	s.Equal("Azure", saved.BlueTeam)

	// Матч убран из реестра, лента закрыта.
	_, err = s.svc.Get(m.ID)
	s.ErrorIs(err, ErrMatchNotFound)
	s.False(s.hub.HasSubscribers(m.ID))

	first, ok := <-frames
	s.Require().True(ok)
	s.Equal(1, first.Tick)
	for range frames {
	}
}

func (s *ServiceTestSuite) TestMatchLifecycle_SaveErrorIsNotFatal() {
	m, err := s.svc.PrepareMatch(validRequest())
	s.Require().NoError(err)

	s.results.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	s.NotPanics(func() { m.Simulate() })
	_, err = s.svc.Get(m.ID)
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *ServiceTestSuite) TestResult_DelegatesToRepository() {
	want := &domain.MatchSummary{MatchID: "abc", Winner: domain.TeamRed}
	s.results.EXPECT().Get(gomock.Any(), "abc").Return(want, nil)

	got, err := s.svc.Result(context.Background(), "abc")
	s.Require().NoError(err)
	s.Equal(want, got)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
