package postgres

import (
	"context"
	"fmt"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

const (
	userDreamsQuery = `SELECT id::text, title, category, is_public, completed
FROM dreams
WHERE user_id = $1
ORDER BY created_at, id`
	dreamGoalsQuery = `SELECT id::text, dream_id::text, completed
FROM goals
WHERE dream_id = ANY($1::text[])
ORDER BY dream_id, id`
)

// GetUserDreams returns the user's dream book with goals attached.
func (p *Postgres) GetUserDreams(ctx context.Context, userID string) ([]entities.Dream, error) {
	rows, err := p.db.Query(ctx, userDreamsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("get user dreams: %w", err)
	}
	defer rows.Close()

	dreams := make([]entities.Dream, 0)
	index := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		var d entities.Dream
		if err := rows.Scan(&d.ID, &d.Title, &d.Category, &d.IsPublic, &d.Completed); err != nil {
			p.log.Errorw("failed to scan dream", "error", err, "user_id", userID)
			return nil, fmt.Errorf("scan dream: %w", err)
		}
		index[d.ID] = len(dreams)
		ids = append(ids, d.ID)
		dreams = append(dreams, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dreams: %w", err)
	}

	if len(ids) == 0 {
		return dreams, nil
	}

	goalRows, err := p.db.Query(ctx, dreamGoalsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("get dream goals: %w", err)
	}
	defer goalRows.Close()

	for goalRows.Next() {
		var g entities.Goal
		var dreamID string
		if err := goalRows.Scan(&g.ID, &dreamID, &g.Completed); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		if i, ok := index[dreamID]; ok {
			dreams[i].Goals = append(dreams[i].Goals, g)
		}
	}
	if err := goalRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}

	return dreams, nil
}
