// Package export serializes assembled report rows into the supported
// output formats. Everything here is pure and single-pass over rows that
// were already materialized by the assembler.
package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

const noneValue = "None"

// Serialize renders rows in the requested format and returns the artifact
// with its row/column metadata. The metric columns appear in canonical
// enum order no matter how the selection set was built.
func Serialize(rows []entities.ReportRow, selected map[entities.MetricKey]struct{}, format entities.ReportFormat, dateRange entities.DateRange) (entities.ReportArtifact, error) {
	cols := columns(selected)

	var content string
	switch format {
	case entities.FormatCSV:
		content = csvDocument(rows, cols)
	case entities.FormatHTML:
		doc, err := htmlDocument(rows, cols, dateRange)
		if err != nil {
			return entities.ReportArtifact{}, fmt.Errorf("render html: %w", err)
		}
		content = doc
	default:
		return entities.ReportArtifact{}, fmt.Errorf("%w: %q", entities.ErrUnsupportedFormat, format)
	}

	return entities.ReportArtifact{
		Content:     content,
		RowCount:    len(rows),
		ColumnCount: len(identityHeaders) + len(cols),
		Format:      format,
	}, nil
}

var identityHeaders = []string{"Name", "Email", "Team", "Coach"}

// columns filters the canonical metric order down to the selected set.
func columns(selected map[entities.MetricKey]struct{}) []entities.MetricKey {
	cols := make([]entities.MetricKey, 0, len(selected))
	for _, k := range entities.MetricKeyOrder {
		if _, ok := selected[k]; ok {
			cols = append(cols, k)
		}
	}
	return cols
}

func headers(cols []entities.MetricKey) []string {
	hs := append([]string(nil), identityHeaders...)
	for _, k := range cols {
		hs = append(hs, k.Header())
	}
	return hs
}

func cellValues(row entities.ReportRow, cols []entities.MetricKey) []string {
	values := []string{row.Name, row.Email, row.Team, row.Coach}
	for _, k := range cols {
		values = append(values, metricValue(row, k))
	}
	return values
}

func metricValue(row entities.ReportRow, key entities.MetricKey) string {
	switch key {
	case entities.MetricMeetingAttendance:
		return strconv.Itoa(row.MeetingsAttended)
	case entities.MetricDreamsCreated:
		return strconv.Itoa(row.DreamsCreated)
	case entities.MetricDreamsCompleted:
		return strconv.Itoa(row.DreamsCompleted)
	case entities.MetricPublicDreamTitles:
		return renderTitles(row.PublicDreamTitles)
	case entities.MetricDreamCategories:
		return renderCategories(row.DreamCategories)
	case entities.MetricGoalsCreated:
		return strconv.Itoa(row.GoalsCreated)
	case entities.MetricGoalsCompleted:
		return strconv.Itoa(row.GoalsCompleted)
	case entities.MetricUserEngagement:
		return strconv.Itoa(row.EngagementWeeksActive)
	}
	return noneValue
}

func renderTitles(titles []string) string {
	if len(titles) == 0 {
		return noneValue
	}
	return strings.Join(titles, "; ")
}

// renderCategories renders "Cat1: n; Cat2: m" with categories sorted so
// identical inputs serialize identically.
func renderCategories(categories map[string]int) string {
	if len(categories) == 0 {
		return noneValue
	}
	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, categories[k]))
	}
	return strings.Join(parts, "; ")
}
