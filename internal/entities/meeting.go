// Package entities contains core business entities.
package entities

import "time"

// MeetingRecord is one team meeting with its attendance roll.
// It belongs to a team by TeamID, not by the coach's id, so records stay
// attached to the team when the coach is replaced.
type MeetingRecord struct {
	ID        string
	TeamID    string
	Date      time.Time
	Attendees []MeetingAttendee
}

// MeetingAttendee marks one user's presence at a meeting.
type MeetingAttendee struct {
	UserID  string
	Present bool
}

// Attended reports whether the user is on the roll and marked present.
func (m MeetingRecord) Attended(userID string) bool {
	for _, a := range m.Attendees {
		if a.UserID == userID && a.Present {
			return true
		}
	}
	return false
}

// WeeklyHistoryEntry is one ISO week of engagement history for a user.
// A week counts as active when Score > 0.
type WeeklyHistoryEntry struct {
	Score float64
}
