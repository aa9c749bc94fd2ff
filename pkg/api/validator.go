package api

import (
	"errors"
	"fmt"
	"strings"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var knownRoles = map[string]bool{
	"top":     true,
	"jungle":  true,
	"mid":     true,
	"adc":     true,
	"support": true,
}

func (r StartMatchRequest) Validate() error {
	if err := r.Blue.Validate(); err != nil {
		return fmt.Errorf("blue: %w", err)
	}
	if err := r.Red.Validate(); err != nil {
		return fmt.Errorf("red: %w", err)
	}
	if r.TickMs < 0 {
		return errors.New("tickMs cannot be negative")
	}
	return nil
}

func (t TeamRequest) Validate() error {
	if len(t.Players) > len(knownRoles) {
		return errors.New("too many players")
	}
	seen := make(map[string]bool, len(t.Players))
	for _, p := range t.Players {
		if err := p.Validate(); err != nil {
			return err
		}
		role := strings.ToLower(strings.TrimSpace(p.Role))
		if seen[role] {
			return fmt.Errorf("duplicate role %q", p.Role)
		}
		seen[role] = true
	}
	return nil
}

func (p PlayerRequest) Validate() error {
	if !knownRoles[strings.ToLower(strings.TrimSpace(p.Role))] {
		return fmt.Errorf("unknown role %q", p.Role)
	}
	for _, v := range []int{p.Mechanics, p.Macro, p.Lane, p.Teamfight} {
		if v < 0 || v > 99 {
			return fmt.Errorf("player %q: skills must be within 0..99", p.Name)
		}
	}
	return nil
}
