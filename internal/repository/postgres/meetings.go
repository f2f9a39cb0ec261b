package postgres

import (
	"context"
	"fmt"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

const (
	teamMeetingsQuery = `SELECT id::text, team_id::text, meeting_date
FROM meetings
WHERE team_id = $1
ORDER BY meeting_date, id`
	meetingAttendanceQuery = `SELECT a.meeting_id::text, a.user_id::text, a.present
FROM meeting_attendance a
JOIN meetings m ON m.id = a.meeting_id
WHERE m.team_id = $1
ORDER BY a.meeting_id, a.user_id`
	userHistoryQuery = `SELECT week_key, score
FROM weekly_history
WHERE user_id = $1`
)

// GetMeetingAttendanceHistory returns all meetings recorded for the team
// with their attendance rolls. Date filtering is the caller's concern.
func (p *Postgres) GetMeetingAttendanceHistory(ctx context.Context, teamID string) ([]entities.MeetingRecord, error) {
	rows, err := p.db.Query(ctx, teamMeetingsQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team meetings: %w", err)
	}
	defer rows.Close()

	meetings := make([]entities.MeetingRecord, 0)
	index := make(map[string]int)
	for rows.Next() {
		var m entities.MeetingRecord
		if err := rows.Scan(&m.ID, &m.TeamID, &m.Date); err != nil {
			p.log.Errorw("failed to scan meeting", "error", err, "team_id", teamID)
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		index[m.ID] = len(meetings)
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}

	if len(meetings) == 0 {
		return meetings, nil
	}

	attRows, err := p.db.Query(ctx, meetingAttendanceQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get meeting attendance: %w", err)
	}
	defer attRows.Close()

	for attRows.Next() {
		var meetingID string
		var a entities.MeetingAttendee
		if err := attRows.Scan(&meetingID, &a.UserID, &a.Present); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		if i, ok := index[meetingID]; ok {
			meetings[i].Attendees = append(meetings[i].Attendees, a)
		}
	}
	if err := attRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance: %w", err)
	}

	return meetings, nil
}

// GetWeeklyHistory returns the user's cumulative engagement history keyed
// by ISO week.
func (p *Postgres) GetWeeklyHistory(ctx context.Context, userID string) (map[string]entities.WeeklyHistoryEntry, error) {
	rows, err := p.db.Query(ctx, userHistoryQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("get weekly history: %w", err)
	}
	defer rows.Close()

	history := make(map[string]entities.WeeklyHistoryEntry)
	for rows.Next() {
		var week string
		var e entities.WeeklyHistoryEntry
		if err := rows.Scan(&week, &e.Score); err != nil {
			p.log.Errorw("failed to scan weekly history", "error", err, "user_id", userID)
			return nil, fmt.Errorf("scan weekly history: %w", err)
		}
		history[week] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly history: %w", err)
	}

	return history, nil
}
