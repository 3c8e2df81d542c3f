package style

import (
	"fmt"
	"strings"
)

// InspectRow is one line of the inspect report.
type InspectRow struct {
	Filename string
	Bias     string
	Mode     string
	Note     string
}

// RenderInspectTable renders per-file exposure information as an aligned
// table with a styled header.
func RenderInspectTable(rows []InspectRow) string {
	if len(rows) == 0 {
		return Sprint(MutedStyle, "No files inspected")
	}

	widths := []int{len("File"), len("Exposure Bias"), len("Exposure Mode")}
	for _, row := range rows {
		widths[0] = max(widths[0], len(row.Filename))
		widths[1] = max(widths[1], len(row.Bias))
		widths[2] = max(widths[2], len(row.Mode))
	}

	var b strings.Builder
	b.WriteString(Sprint(TitleStyle, padRow(widths, "File", "Exposure Bias", "Exposure Mode")))
	b.WriteByte('\n')
	for _, row := range rows {
		line := padRow(widths, row.Filename, row.Bias, row.Mode)
		if row.Note != "" {
			line += "  " + Sprint(MutedStyle, row.Note)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func padRow(widths []int, cols ...string) string {
	var b strings.Builder
	for i, col := range cols {
		b.WriteString(fmt.Sprintf("%-*s", widths[i]+2, col))
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderSummary renders the end-of-pass summary.
func RenderSummary(processed, found int64) string {
	var b strings.Builder
	b.WriteString(Sprint(TitleStyle, "Scan complete"))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("  Files processed:      %d\n", processed))
	finding := fmt.Sprintf("  Exposure bracketings: %d", found)
	if found > 0 {
		b.WriteString(Sprint(SuccessStyle, finding))
	} else {
		b.WriteString(Sprint(MutedStyle, finding))
	}
	return b.String()
}
