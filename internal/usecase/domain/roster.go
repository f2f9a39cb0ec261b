// Package domain contains application services orchestrating report logic.
package domain

import (
	"context"
	"fmt"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

// resolveRoster returns the users in scope for a report, preserving the
// input order of users. With an "all" selection every user passes through.
// Otherwise a user is in scope when the team whose member set contains
// them is owned by a selected coach; users without a team are excluded.
// Ids are compared as strings throughout to tolerate mixed numeric/string
// ids from upstream.
func resolveRoster(users []entities.User, teams []entities.Team, sel entities.TeamSelection) []entities.User {
	if sel.All {
		return users
	}

	roster := make([]entities.User, 0, len(users))
	for _, u := range users {
		team := teamOf(u.ID, teams)
		if team == nil {
			continue
		}
		if _, ok := sel.CoachIDs[team.ManagerID]; ok {
			roster = append(roster, u)
		}
	}
	return roster
}

// teamOf finds the team whose member set contains the user. Membership is
// at most one team per the domain invariant; if data violates that, the
// first team in relationship order wins.
func teamOf(userID string, teams []entities.Team) *entities.Team {
	for i := range teams {
		if teams[i].HasMember(userID) {
			return &teams[i]
		}
	}
	return nil
}

// RosterPreview resolves the roster for a selection without assembling a
// report, so the caller can show who would be included.
func (u *Usecase) RosterPreview(ctx context.Context, selection entities.TeamSelection) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	teams, err := u.repo.GetTeamRelationships(ctx)
	if err != nil {
		return nil, fmt.Errorf("get team relationships: %w", err)
	}

	return resolveRoster(users, teams, selection), nil
}

// Teams returns the team relationships for the filter surface.
func (u *Usecase) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	teams, err := u.repo.GetTeamRelationships(ctx)
	if err != nil {
		return nil, fmt.Errorf("get team relationships: %w", err)
	}
	return teams, nil
}
