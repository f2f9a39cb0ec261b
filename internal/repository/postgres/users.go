package postgres

import (
	"context"
	"fmt"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

const (
	allUsersQuery = `SELECT id::text, name, email, office
FROM users
ORDER BY name, id`
	teamsQuery = `SELECT id::text, name, manager_id::text
FROM teams
ORDER BY name, id`
	teamMembersQuery = `SELECT team_id::text, user_id::text
FROM team_members
ORDER BY team_id, user_id`
)

// GetAllUsers returns the full roster in stable name order. Dream books are
// not materialized here; the report engine fetches them per user.
func (p *Postgres) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, allUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Office); err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetTeamRelationships returns every team with its member id set. Ids are
// cast to text in the query so numeric upstream ids compare as strings.
func (p *Postgres) GetTeamRelationships(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, teamsQuery)
	if err != nil {
		return nil, fmt.Errorf("get teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	index := make(map[string]int)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.ManagerID); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		index[t.ID] = len(teams)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	memberRows, err := p.db.Query(ctx, teamMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var teamID, userID string
		if err := memberRows.Scan(&teamID, &userID); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		if i, ok := index[teamID]; ok {
			teams[i].MemberIDs = append(teams[i].MemberIDs, userID)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}

	return teams, nil
}
