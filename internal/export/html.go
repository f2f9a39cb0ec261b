package export

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

const htmlReport = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Coaching Analytics Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #1a1a2e; }
h1 { font-size: 1.4rem; }
.range { color: #555; }
.summary { display: flex; gap: 2rem; margin: 1rem 0; }
.summary div { background: #f4f4f8; padding: 0.75rem 1.25rem; border-radius: 6px; }
.summary .label { font-size: 0.8rem; color: #555; }
.summary .value { font-size: 1.3rem; font-weight: bold; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f4f4f8; }
</style>
</head>
<body>
<h1>Coaching Analytics Report</h1>
<p class="range">{{.RangeStart}} to {{.RangeEnd}}</p>
<div class="summary">
<div><span class="label">Total Users</span><br><span class="value">{{.TotalUsers}}</span></div>
<div><span class="label">Dreams Created</span><br><span class="value">{{.TotalDreams}}</span></div>
<div><span class="label">Goals Completed</span><br><span class="value">{{.TotalGoalsCompleted}}</span></div>
<div><span class="label">Avg Active Weeks</span><br><span class="value">{{.AvgActiveWeeks}}</span></div>
</div>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Parse(htmlReport))

type htmlData struct {
	RangeStart          string
	RangeEnd            string
	TotalUsers          int
	TotalDreams         int
	TotalGoalsCompleted int
	AvgActiveWeeks      string
	Headers             []string
	Rows                [][]string
}

// htmlDocument renders a self-contained document with a summary block and
// the data table. Summary figures come from the assembled rows, never from
// a re-query. All cell values are escaped by html/template.
func htmlDocument(rows []entities.ReportRow, cols []entities.MetricKey, dateRange entities.DateRange) (string, error) {
	data := htmlData{
		RangeStart: dateRange.Start.Format("2006-01-02"),
		RangeEnd:   dateRange.End.Format("2006-01-02"),
		TotalUsers: len(rows),
		Headers:    headers(cols),
		Rows:       make([][]string, 0, len(rows)),
	}

	var totalWeeks int
	for _, row := range rows {
		data.TotalDreams += row.DreamsCreated
		data.TotalGoalsCompleted += row.GoalsCompleted
		totalWeeks += row.EngagementWeeksActive
		data.Rows = append(data.Rows, cellValues(row, cols))
	}
	data.AvgActiveWeeks = formatAverage(totalWeeks, len(rows))

	var b strings.Builder
	if err := htmlTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// formatAverage defaults a division that cannot produce a finite number
// to zero instead of leaking NaN into the document.
func formatAverage(total, count int) string {
	if count == 0 {
		return "0.0"
	}
	avg := float64(total) / float64(count)
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", avg)
}
