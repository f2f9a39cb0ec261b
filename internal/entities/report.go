// Package entities contains core business entities.
package entities

import "time"

// ReportFormat enumerates supported export formats.
type ReportFormat string

const (
	// FormatCSV renders the report as quoted CSV text.
	FormatCSV ReportFormat = "csv"
	// FormatHTML renders the report as a self-contained HTML document.
	FormatHTML ReportFormat = "html"
)

// MetricKey identifies one selectable report metric. The set is closed;
// MetricKeyOrder fixes the column order regardless of how a selection
// was built.
type MetricKey string

const (
	// MetricMeetingAttendance counts meetings attended in the date range.
	MetricMeetingAttendance MetricKey = "meetingAttendance"
	// MetricDreamsCreated counts dreams in the user's dream book.
	MetricDreamsCreated MetricKey = "dreamsCreated"
	// MetricDreamsCompleted counts completed dreams.
	MetricDreamsCompleted MetricKey = "dreamsCompleted"
	// MetricPublicDreamTitles lists titles of dreams shared publicly.
	MetricPublicDreamTitles MetricKey = "publicDreamTitles"
	// MetricDreamCategories counts dreams grouped by category.
	MetricDreamCategories MetricKey = "dreamCategories"
	// MetricGoalsCreated counts goals across all dreams.
	MetricGoalsCreated MetricKey = "goalsCreated"
	// MetricGoalsCompleted counts completed goals.
	MetricGoalsCompleted MetricKey = "goalsCompleted"
	// MetricUserEngagement counts weeks with a non-zero activity score.
	MetricUserEngagement MetricKey = "userEngagement"
)

// MetricKeyOrder is the canonical column order for serialized reports.
var MetricKeyOrder = []MetricKey{
	MetricMeetingAttendance,
	MetricDreamsCreated,
	MetricDreamsCompleted,
	MetricPublicDreamTitles,
	MetricDreamCategories,
	MetricGoalsCreated,
	MetricGoalsCompleted,
	MetricUserEngagement,
}

// Header returns the column label for the metric.
func (k MetricKey) Header() string {
	switch k {
	case MetricMeetingAttendance:
		return "Meetings Attended"
	case MetricDreamsCreated:
		return "Dreams Created"
	case MetricDreamsCompleted:
		return "Dreams Completed"
	case MetricPublicDreamTitles:
		return "Public Dream Titles"
	case MetricDreamCategories:
		return "Dream Categories"
	case MetricGoalsCreated:
		return "Goals Created"
	case MetricGoalsCompleted:
		return "Goals Completed"
	case MetricUserEngagement:
		return "Engagement Weeks Active"
	}
	return string(k)
}

// ParseMetricKey maps a wire value onto the closed metric set.
func ParseMetricKey(s string) (MetricKey, bool) {
	for _, k := range MetricKeyOrder {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// DateRange is an inclusive report window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, endpoints included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// TeamSelection scopes a report to the whole roster or to the teams owned
// by a set of coaches. CoachIDs hold string-normalized user ids.
type TeamSelection struct {
	All      bool
	CoachIDs map[string]struct{}
}

// SelectAll builds a selection covering every user.
func SelectAll() TeamSelection {
	return TeamSelection{All: true}
}

// SelectCoaches builds a selection for the given coach ids.
func SelectCoaches(ids ...string) TeamSelection {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return TeamSelection{CoachIDs: set}
}

// ReportConfig describes one report request.
type ReportConfig struct {
	DateRange       DateRange
	SelectedMetrics map[MetricKey]struct{}
	TeamSelection   TeamSelection
	Format          ReportFormat
}

// MetricBundle carries the two externally sourced per-user metrics.
type MetricBundle struct {
	MeetingsAttended      int
	EngagementWeeksActive int
}

// ReportRow is one user's line in the assembled report. Rows are derived
// per request and never persisted.
type ReportRow struct {
	UserID                string
	Name                  string
	Email                 string
	Team                  string
	Coach                 string
	MeetingsAttended      int
	DreamsCreated         int
	DreamsCompleted       int
	PublicDreamTitles     []string
	DreamCategories       map[string]int
	GoalsCreated          int
	GoalsCompleted        int
	EngagementWeeksActive int
}

// ReportArtifact is the serialized report plus the metadata the caller
// needs to label the download.
type ReportArtifact struct {
	Content     string
	RowCount    int
	ColumnCount int
	Format      ReportFormat
}
