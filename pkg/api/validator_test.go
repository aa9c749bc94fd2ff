package api

import "testing"

func TestStartMatchRequest_Validate(t *testing.T) {
	player := func(role string, skill int) PlayerRequest {
		return PlayerRequest{Name: "p-" + role, Role: role, Mechanics: skill, Macro: skill, Lane: skill, Teamfight: skill}
	}

	tests := []struct {
		name    string
		req     StartMatchRequest
		wantErr bool
	}{
		{
			name: "full rosters",
			req: StartMatchRequest{
				Blue: TeamRequest{Players: []PlayerRequest{player("top", 70), player("jungle", 71), player("mid", 72), player("adc", 73), player("support", 74)}},
				Red:  TeamRequest{Players: []PlayerRequest{player("TOP", 60)}},
			},
		},
		{
			name: "empty rosters are allowed",
			req:  StartMatchRequest{},
		},
		{
			name:    "unknown role",
			req:     StartMatchRequest{Blue: TeamRequest{Players: []PlayerRequest{player("coach", 50)}}},
			wantErr: true,
		},
		{
			name:    "duplicate role",
			req:     StartMatchRequest{Red: TeamRequest{Players: []PlayerRequest{player("mid", 50), player("Mid", 60)}}},
			wantErr: true,
		},
		{
			name:    "skill out of range",
			req:     StartMatchRequest{Blue: TeamRequest{Players: []PlayerRequest{player("adc", 100)}}},
			wantErr: true,
		},
		{
			name:    "negative skill",
			req:     StartMatchRequest{Blue: TeamRequest{Players: []PlayerRequest{player("adc", -1)}}},
			wantErr: true,
		},
		{
			name: "too many players",
			req: StartMatchRequest{Blue: TeamRequest{Players: []PlayerRequest{
				player("top", 1), player("jungle", 1), player("mid", 1), player("adc", 1), player("support", 1), player("top", 1),
			}}},
			wantErr: true,
		},
		{
			name:    "negative tick",
			req:     StartMatchRequest{TickMs: -5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
