// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/api"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

const dateLayout = "2006-01-02"

// FromReportRequest parses a transport request into a validated ReportConfig.
func FromReportRequest(src api.ReportRequest) (entities.ReportConfig, error) {
	var cfg entities.ReportConfig

	start, err := time.Parse(dateLayout, src.StartDate)
	if err != nil {
		return cfg, fmt.Errorf("%w: start_date must be YYYY-MM-DD", entities.ErrInvalidArgument)
	}
	end, err := time.Parse(dateLayout, src.EndDate)
	if err != nil {
		return cfg, fmt.Errorf("%w: end_date must be YYYY-MM-DD", entities.ErrInvalidArgument)
	}
	cfg.DateRange = entities.DateRange{Start: start, End: end}

	cfg.SelectedMetrics = make(map[entities.MetricKey]struct{}, len(src.Metrics))
	for _, m := range src.Metrics {
		key, ok := entities.ParseMetricKey(strings.TrimSpace(m))
		if !ok {
			return cfg, fmt.Errorf("%w: unknown metric %q", entities.ErrInvalidArgument, m)
		}
		cfg.SelectedMetrics[key] = struct{}{}
	}

	cfg.TeamSelection = fromTeamSelection(src.Teams)

	cfg.Format = entities.ReportFormat(strings.ToLower(strings.TrimSpace(src.Format)))

	return cfg, nil
}

// fromTeamSelection interprets the wire selection: empty or containing
// "all" selects everyone, otherwise entries are coach ids normalized to
// trimmed strings.
func fromTeamSelection(teams []string) entities.TeamSelection {
	if len(teams) == 0 {
		return entities.SelectAll()
	}
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		t = strings.TrimSpace(t)
		if strings.EqualFold(t, "all") {
			return entities.SelectAll()
		}
		if t != "" {
			ids = append(ids, t)
		}
	}
	if len(ids) == 0 {
		return entities.SelectAll()
	}
	return entities.SelectCoaches(ids...)
}

// ToRosterResponse maps resolved users to the preview response.
func ToRosterResponse(users []entities.User) api.RosterResponse {
	out := make([]api.RosterUser, 0, len(users))
	for _, u := range users {
		out = append(out, api.RosterUser{
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Office: u.Office,
		})
	}
	return api.RosterResponse{Users: out, Count: len(out)}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(team entities.Team) api.Team {
	members := append([]string(nil), team.MemberIDs...)
	if members == nil {
		members = []string{}
	}
	return api.Team{
		TeamID:    team.ID,
		TeamName:  team.Name,
		ManagerID: team.ManagerID,
		MemberIDs: members,
	}
}

// ToReportResponse maps a serialized artifact to the transport model.
func ToReportResponse(reportID string, artifact entities.ReportArtifact) api.ReportResponse {
	return api.ReportResponse{
		ReportID:    reportID,
		Format:      string(artifact.Format),
		RowCount:    artifact.RowCount,
		ColumnCount: artifact.ColumnCount,
		Content:     artifact.Content,
	}
}
