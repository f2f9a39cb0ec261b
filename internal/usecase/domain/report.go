package domain

import (
	"context"
	"fmt"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/export"

	"golang.org/x/sync/errgroup"
)

const uncategorized = "Uncategorized"

// GenerateReport assembles and serializes a report for the given config.
// Configuration problems abort up front; per-user source failures degrade
// the affected fields and never drop a row.
func (u *Usecase) GenerateReport(ctx context.Context, cfg entities.ReportConfig) (entities.ReportArtifact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateConfig(cfg); err != nil {
		return entities.ReportArtifact{}, err
	}

	users, err := u.repo.GetAllUsers(ctx)
	if err != nil {
		return entities.ReportArtifact{}, fmt.Errorf("get all users: %w", err)
	}
	teams, err := u.repo.GetTeamRelationships(ctx)
	if err != nil {
		return entities.ReportArtifact{}, fmt.Errorf("get team relationships: %w", err)
	}

	roster := resolveRoster(users, teams, cfg.TeamSelection)
	if len(roster) == 0 {
		return entities.ReportArtifact{}, fmt.Errorf("%w: no users match the team selection", entities.ErrEmptyRoster)
	}

	rows := u.assembleRows(ctx, roster, users, teams, cfg)

	artifact, err := export.Serialize(rows, cfg.SelectedMetrics, cfg.Format, cfg.DateRange)
	if err != nil {
		return entities.ReportArtifact{}, err
	}

	u.log.Infow("report generated",
		"format", artifact.Format,
		"rows", artifact.RowCount,
		"columns", artifact.ColumnCount,
	)
	return artifact, nil
}

func validateConfig(cfg entities.ReportConfig) error {
	if cfg.DateRange.Start.After(cfg.DateRange.End) {
		return fmt.Errorf("%w: date range start is after end", entities.ErrInvalidArgument)
	}
	switch cfg.Format {
	case entities.FormatCSV, entities.FormatHTML:
	default:
		return fmt.Errorf("%w: %q", entities.ErrUnsupportedFormat, cfg.Format)
	}
	return nil
}

// assembleRows builds one row per roster user with a bounded fan-out.
// Each worker writes only its own index, so results come back in roster
// order without locking.
func (u *Usecase) assembleRows(ctx context.Context, roster, allUsers []entities.User, teams []entities.Team, cfg entities.ReportConfig) []entities.ReportRow {
	names := displayNames(allUsers)
	rows := make([]entities.ReportRow, len(roster))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.maxConcurrency)
	for i, user := range roster {
		i, user := i, user
		g.Go(func() error {
			rows[i] = u.buildRow(ctx, user, teams, names, cfg.DateRange)
			return nil
		})
	}
	// Workers never return errors; degradation happens per source.
	_ = g.Wait()

	return rows
}

func (u *Usecase) buildRow(ctx context.Context, user entities.User, teams []entities.Team, names map[string]string, dateRange entities.DateRange) entities.ReportRow {
	row := entities.ReportRow{
		UserID:            user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Team:              "No Team",
		Coach:             "No Coach",
		PublicDreamTitles: []string{},
		DreamCategories:   map[string]int{},
	}

	var teamID string
	if team := teamOf(user.ID, teams); team != nil {
		teamID = team.ID
		row.Team = team.Name
		if coach, ok := names[team.ManagerID]; ok {
			row.Coach = coach
		}
	}

	dreams := user.DreamBook
	if len(dreams) == 0 {
		fetched, err := u.repo.GetUserDreams(ctx, user.ID)
		if err != nil {
			u.log.Warnw("dream fetch degraded to empty book", "error", err, "user_id", user.ID)
		} else {
			dreams = fetched
		}
	}

	row.DreamsCreated = len(dreams)
	for _, d := range dreams {
		if d.Completed {
			row.DreamsCompleted++
		}
		if d.IsPublic {
			row.PublicDreamTitles = append(row.PublicDreamTitles, d.Title)
		}
		category := d.Category
		if category == "" {
			category = uncategorized
		}
		row.DreamCategories[category]++

		row.GoalsCreated += len(d.Goals)
		for _, g := range d.Goals {
			if g.Completed {
				row.GoalsCompleted++
			}
		}
	}

	bundle := u.collectMetrics(ctx, user.ID, teamID, dateRange)
	row.MeetingsAttended = bundle.MeetingsAttended
	row.EngagementWeeksActive = bundle.EngagementWeeksActive

	return row
}

func displayNames(users []entities.User) map[string]string {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}
