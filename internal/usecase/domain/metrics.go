package domain

import (
	"context"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

// collectMetrics gathers the two externally sourced metrics for one user.
// It never returns an error: a failed fetch degrades the affected metric
// to zero so one flaky source cannot sink the whole report.
//
// Active weeks are counted over the user's full history, not the report
// range; the history source only provides cumulative data. Changing this
// would silently change published report numbers.
func (u *Usecase) collectMetrics(ctx context.Context, userID, teamID string, dateRange entities.DateRange) entities.MetricBundle {
	var bundle entities.MetricBundle

	if teamID == "" {
		// Not an error: a user without a resolvable team has no team meetings.
		u.log.Debugw("skipping meeting attendance, user has no team", "user_id", userID)
	} else {
		records, err := u.repo.GetMeetingAttendanceHistory(ctx, teamID)
		if err != nil {
			u.log.Warnw("meeting attendance degraded to zero", "error", err, "user_id", userID, "team_id", teamID)
		} else {
			for _, rec := range records {
				if dateRange.Contains(rec.Date) && rec.Attended(userID) {
					bundle.MeetingsAttended++
				}
			}
		}
	}

	history, err := u.repo.GetWeeklyHistory(ctx, userID)
	if err != nil {
		u.log.Warnw("weekly history degraded to zero", "error", err, "user_id", userID)
		return bundle
	}
	for _, entry := range history {
		if entry.Score > 0 {
			bundle.EngagementWeeksActive++
		}
	}

	return bundle
}
