package application

import (
	"context"
	"strings"

	domainerrors "festboard/contexts/festival/moderation-service/domain/errors"
	"festboard/contexts/festival/moderation-service/ports"
)

func (s Service) AddTeam(ctx context.Context, name string) (ports.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Team{}, domainerrors.ErrInvalidRequest
	}

	id, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.Team{}, err
	}
	team := ports.Team{ID: id, Name: name}

	if _, err := s.mutate(ctx, func(doc *ports.Document) error {
		doc.Teams = append(doc.Teams, team)
		return nil
	}); err != nil {
		return ports.Team{}, err
	}

	s.logMutation("team_added", "team_id", team.ID, "name", team.Name)
	return team, nil
}

// RenameTeam changes the team name only. Results keep the old name string
// and silently detach from the team; that is the documented store contract,
// not a repair target.
func (s Service) RenameTeam(ctx context.Context, teamID string, newName string) (ports.Team, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ports.Team{}, domainerrors.ErrInvalidRequest
	}

	var renamed ports.Team
	if _, err := s.mutate(ctx, func(doc *ports.Document) error {
		for i := range doc.Teams {
			if doc.Teams[i].ID == teamID {
				doc.Teams[i].Name = newName
				renamed = doc.Teams[i]
				return nil
			}
		}
		return domainerrors.ErrTeamNotFound
	}); err != nil {
		return ports.Team{}, err
	}

	s.logMutation("team_renamed", "team_id", teamID, "name", newName)
	return renamed, nil
}

// DeleteTeam removes the team only; results referencing its name keep the
// stale string and stop scoring.
func (s Service) DeleteTeam(ctx context.Context, teamID string) error {
	_, err := s.mutate(ctx, func(doc *ports.Document) error {
		kept := doc.Teams[:0]
		found := false
		for _, team := range doc.Teams {
			if team.ID == teamID {
				found = true
				continue
			}
			kept = append(kept, team)
		}
		if !found {
			return domainerrors.ErrTeamNotFound
		}
		doc.Teams = kept
		return nil
	})
	if err != nil {
		return err
	}

	s.logMutation("team_deleted", "team_id", teamID)
	return nil
}
