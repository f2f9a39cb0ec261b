package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(repo *sourceMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second, 4)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func allMetrics() map[entities.MetricKey]struct{} {
	set := make(map[entities.MetricKey]struct{}, len(entities.MetricKeyOrder))
	for _, k := range entities.MetricKeyOrder {
		set[k] = struct{}{}
	}
	return set
}

// scenarioSource seeds the two-user scenario: Alice on Team A coached by
// Carol, Bob unassigned, Carol herself teamless.
func scenarioSource() *sourceMock {
	repo := &sourceMock{}

	users := []entities.User{
		{ID: "u1", Name: "Alice Johnson", Email: "alice@example.com"},
		{ID: "u2", Name: "Bob Stone", Email: "bob@example.com"},
		{ID: "c1", Name: "Carol Mentor", Email: "carol@example.com"},
	}
	teams := []entities.Team{
		{ID: "t1", Name: "Team A", ManagerID: "c1", MemberIDs: []string{"u1"}},
	}
	aliceDreams := []entities.Dream{
		{
			ID: "d1", Title: "Open a bakery", Category: "Career", IsPublic: true,
			Goals: []entities.Goal{{ID: "g1", Completed: true}, {ID: "g2"}},
		},
		{ID: "d2", Title: "Run a marathon", Category: "Health", Completed: true},
		{ID: "d3", Title: "Write a book"},
	}

	repo.On("GetAllUsers", mock.Anything).Return(users, nil)
	repo.On("GetTeamRelationships", mock.Anything).Return(teams, nil)
	repo.On("GetUserDreams", mock.Anything, "u1").Return(aliceDreams, nil)
	repo.On("GetUserDreams", mock.Anything, "u2").Return([]entities.Dream{}, nil)
	repo.On("GetUserDreams", mock.Anything, "c1").Return([]entities.Dream{}, nil)
	// One meeting before the report window: attended, but out of range.
	repo.On("GetMeetingAttendanceHistory", mock.Anything, "t1").Return([]entities.MeetingRecord{
		{ID: "m0", TeamID: "t1", Date: day("2023-12-15"), Attendees: []entities.MeetingAttendee{{UserID: "u1", Present: true}}},
	}, nil)
	repo.On("GetWeeklyHistory", mock.Anything, "u1").Return(map[string]entities.WeeklyHistoryEntry{
		"2024-W01": {Score: 2},
		"2024-W02": {Score: 0},
		"2024-W03": {Score: 5},
	}, nil)
	repo.On("GetWeeklyHistory", mock.Anything, "u2").Return(map[string]entities.WeeklyHistoryEntry{}, nil)
	repo.On("GetWeeklyHistory", mock.Anything, "c1").Return(map[string]entities.WeeklyHistoryEntry{}, nil)

	return repo
}

func scenarioConfig() entities.ReportConfig {
	return entities.ReportConfig{
		DateRange:       entities.DateRange{Start: day("2024-01-01"), End: day("2024-01-31")},
		SelectedMetrics: allMetrics(),
		TeamSelection:   entities.SelectAll(),
		Format:          entities.FormatCSV,
	}
}

func TestGenerateReportScenario(t *testing.T) {
	uc := newTestUsecase(scenarioSource())

	artifact, err := uc.GenerateReport(context.Background(), scenarioConfig())
	require.NoError(t, err)
	require.Equal(t, entities.FormatCSV, artifact.Format)
	require.Equal(t, 3, artifact.RowCount)
	require.Equal(t, 12, artifact.ColumnCount)

	lines := strings.Split(artifact.Content, "\n")
	require.Len(t, lines, 4)
	require.Equal(t,
		`"Name","Email","Team","Coach","Meetings Attended","Dreams Created","Dreams Completed","Public Dream Titles","Dream Categories","Goals Created","Goals Completed","Engagement Weeks Active"`,
		lines[0])
	require.Equal(t,
		`"Alice Johnson","alice@example.com","Team A","Carol Mentor","0","3","1","Open a bakery","Career: 1; Health: 1; Uncategorized: 1","2","1","2"`,
		lines[1])
	require.Equal(t,
		`"Bob Stone","bob@example.com","No Team","No Coach","0","0","0","None","None","0","0","0"`,
		lines[2])
	require.Equal(t,
		`"Carol Mentor","carol@example.com","No Team","No Coach","0","0","0","None","None","0","0","0"`,
		lines[3])
}

func TestGenerateReportIdempotent(t *testing.T) {
	uc := newTestUsecase(scenarioSource())
	cfg := scenarioConfig()

	first, err := uc.GenerateReport(context.Background(), cfg)
	require.NoError(t, err)
	second, err := uc.GenerateReport(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGenerateReportRosterFilter(t *testing.T) {
	uc := newTestUsecase(scenarioSource())
	cfg := scenarioConfig()
	cfg.TeamSelection = entities.SelectCoaches("c1")

	artifact, err := uc.GenerateReport(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, 1, artifact.RowCount)

	lines := strings.Split(artifact.Content, "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"Team A"`)
	require.Contains(t, lines[1], `"Alice Johnson"`)
}

func TestGenerateReportInvalidDateRange(t *testing.T) {
	repo := &sourceMock{}
	uc := newTestUsecase(repo)
	cfg := scenarioConfig()
	cfg.DateRange = entities.DateRange{Start: day("2024-02-01"), End: day("2024-01-01")}

	_, err := uc.GenerateReport(context.Background(), cfg)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetAllUsers", mock.Anything)
}

func TestGenerateReportUnsupportedFormat(t *testing.T) {
	repo := &sourceMock{}
	uc := newTestUsecase(repo)
	cfg := scenarioConfig()
	cfg.Format = entities.ReportFormat("pdf")

	_, err := uc.GenerateReport(context.Background(), cfg)
	require.ErrorIs(t, err, entities.ErrUnsupportedFormat)
	repo.AssertNotCalled(t, "GetAllUsers", mock.Anything)
}

func TestGenerateReportEmptyRoster(t *testing.T) {
	uc := newTestUsecase(scenarioSource())
	cfg := scenarioConfig()
	cfg.TeamSelection = entities.SelectCoaches("nobody")

	_, err := uc.GenerateReport(context.Background(), cfg)
	require.ErrorIs(t, err, entities.ErrEmptyRoster)
}

func TestGenerateReportEmptyMetricSelection(t *testing.T) {
	uc := newTestUsecase(scenarioSource())
	cfg := scenarioConfig()
	cfg.SelectedMetrics = map[entities.MetricKey]struct{}{}

	artifact, err := uc.GenerateReport(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, 4, artifact.ColumnCount)

	lines := strings.Split(artifact.Content, "\n")
	require.Equal(t, `"Name","Email","Team","Coach"`, lines[0])
}

func TestBuildRowBoundaryDates(t *testing.T) {
	repo := &sourceMock{}
	repo.On("GetUserDreams", mock.Anything, "u1").Return([]entities.Dream{}, nil)
	repo.On("GetMeetingAttendanceHistory", mock.Anything, "t1").Return([]entities.MeetingRecord{
		{ID: "m1", TeamID: "t1", Date: day("2024-01-01"), Attendees: []entities.MeetingAttendee{{UserID: "u1", Present: true}}},
		{ID: "m2", TeamID: "t1", Date: day("2024-01-31"), Attendees: []entities.MeetingAttendee{{UserID: "u1", Present: true}}},
		{ID: "m3", TeamID: "t1", Date: day("2024-02-01"), Attendees: []entities.MeetingAttendee{{UserID: "u1", Present: true}}},
		{ID: "m4", TeamID: "t1", Date: day("2024-01-15"), Attendees: []entities.MeetingAttendee{{UserID: "u1", Present: false}}},
	}, nil)
	repo.On("GetWeeklyHistory", mock.Anything, "u1").Return(map[string]entities.WeeklyHistoryEntry{}, nil)

	uc := newTestUsecase(repo)
	user := entities.User{ID: "u1", Name: "Alice Johnson"}
	teams := []entities.Team{{ID: "t1", Name: "Team A", ManagerID: "c1", MemberIDs: []string{"u1"}}}
	dateRange := entities.DateRange{Start: day("2024-01-01"), End: day("2024-01-31")}

	row := uc.buildRow(context.Background(), user, teams, map[string]string{}, dateRange)
	// Both endpoints count; the day after the end and absences do not.
	require.Equal(t, 2, row.MeetingsAttended)
}

func TestBuildRowDegradesPerSource(t *testing.T) {
	repo := &sourceMock{}
	repo.On("GetUserDreams", mock.Anything, "u1").Return(nil, errors.New("dream store down"))
	repo.On("GetMeetingAttendanceHistory", mock.Anything, "t1").Return(nil, errors.New("meeting store down"))
	repo.On("GetWeeklyHistory", mock.Anything, "u1").Return(nil, errors.New("history store down"))

	uc := newTestUsecase(repo)
	user := entities.User{ID: "u1", Name: "Alice Johnson", Email: "alice@example.com"}
	teams := []entities.Team{{ID: "t1", Name: "Team A", ManagerID: "c1", MemberIDs: []string{"u1"}}}
	dateRange := entities.DateRange{Start: day("2024-01-01"), End: day("2024-01-31")}

	row := uc.buildRow(context.Background(), user, teams, map[string]string{"c1": "Carol Mentor"}, dateRange)
	require.Equal(t, "Alice Johnson", row.Name)
	require.Equal(t, "Team A", row.Team)
	require.Equal(t, "Carol Mentor", row.Coach)
	require.Zero(t, row.DreamsCreated)
	require.Zero(t, row.MeetingsAttended)
	require.Zero(t, row.EngagementWeeksActive)
	require.Empty(t, row.PublicDreamTitles)
	require.Empty(t, row.DreamCategories)
}

func TestGenerateReportHistoryFailureIsolated(t *testing.T) {
	repo := scenarioSource()
	// Override Bob's history with a failure; Alice must be untouched.
	repo.ExpectedCalls = nil
	repo.Calls = nil

	users := []entities.User{
		{ID: "u1", Name: "Alice Johnson", Email: "alice@example.com"},
		{ID: "u2", Name: "Bob Stone", Email: "bob@example.com"},
	}
	repo.On("GetAllUsers", mock.Anything).Return(users, nil)
	repo.On("GetTeamRelationships", mock.Anything).Return([]entities.Team{}, nil)
	repo.On("GetUserDreams", mock.Anything, mock.Anything).Return([]entities.Dream{}, nil)
	repo.On("GetWeeklyHistory", mock.Anything, "u1").Return(map[string]entities.WeeklyHistoryEntry{
		"2024-W05": {Score: 1},
	}, nil)
	repo.On("GetWeeklyHistory", mock.Anything, "u2").Return(nil, errors.New("history unavailable"))

	uc := newTestUsecase(repo)
	artifact, err := uc.GenerateReport(context.Background(), scenarioConfig())
	require.NoError(t, err)

	lines := strings.Split(artifact.Content, "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasSuffix(lines[1], `"1"`), "alice keeps her active week: %s", lines[1])
	require.True(t, strings.HasSuffix(lines[2], `"0"`), "bob degrades to zero: %s", lines[2])
}

func TestRowCategorySumInvariant(t *testing.T) {
	uc := newTestUsecase(scenarioSource())
	users := []entities.User{{ID: "u1", Name: "Alice Johnson"}}
	teams := []entities.Team{{ID: "t1", Name: "Team A", ManagerID: "c1", MemberIDs: []string{"u1"}}}
	dateRange := entities.DateRange{Start: day("2024-01-01"), End: day("2024-01-31")}

	rows := uc.assembleRows(context.Background(), users, users, teams, entities.ReportConfig{DateRange: dateRange})
	require.Len(t, rows, 1)

	var sum int
	for _, n := range rows[0].DreamCategories {
		sum += n
	}
	require.Equal(t, rows[0].DreamsCreated, sum)
	require.Equal(t, 3, sum)
}

func TestRosterPreviewDelegates(t *testing.T) {
	uc := newTestUsecase(scenarioSource())

	users, err := uc.RosterPreview(context.Background(), entities.SelectCoaches("c1"))
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "u1", users[0].ID)
}

func TestTeamsDelegates(t *testing.T) {
	uc := newTestUsecase(scenarioSource())

	teams, err := uc.Teams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "Team A", teams[0].Name)
}
