package export

import (
	"strings"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

// csvDocument renders the report as CSV text. Every field is wrapped in
// double quotes with embedded quotes doubled; encoding/csv quotes only on
// demand, which would break the fixed wire contract consumers parse.
func csvDocument(rows []entities.ReportRow, cols []entities.MetricKey) string {
	var b strings.Builder

	writeRecord(&b, headers(cols))
	for _, row := range rows {
		b.WriteByte('\n')
		writeRecord(&b, cellValues(row, cols))
	}

	return b.String()
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
