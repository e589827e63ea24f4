// Package render formats summaries and stored records for the terminal.
package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/anveshm/notice-digest/models"
)

const summaryColWidth = 60

// Summary lays out one summarize result as bulleted text with the
// structured fields underneath.
func Summary(res models.SummaryResult) string {
	var b strings.Builder

	for _, line := range res.Bullets {
		b.WriteString("• ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(res.Bullets) == 0 {
		b.WriteString("(nothing to summarize)\n")
	}

	if len(res.Highlights) > 0 {
		b.WriteString("\nHighlights:\n")
		for _, line := range res.Highlights {
			b.WriteString("  - ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	var fields [][]string
	if res.Date != "" {
		fields = append(fields, []string{"Date", res.Date})
	}
	if res.Time != "" {
		fields = append(fields, []string{"Time", res.Time})
	}
	for _, link := range res.Links {
		fields = append(fields, []string{"Link", link})
	}
	if len(fields) > 0 {
		b.WriteString("\n")
		b.WriteString(Table(append([][]string{{"Field", "Value"}}, fields...)))
	}

	return b.String()
}

// HistoryTable lays out stored notice records, one row each.
func HistoryTable(records []models.NoticeRecord) string {
	if len(records) == 0 {
		return "(no saved notices)\n"
	}

	rows := [][]string{{"ID", "Saved", "Event", "Subject", "Summary"}}
	for _, rec := range records {
		first := ""
		if len(rec.Bullets) > 0 {
			first = rec.Bullets[0]
		}
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.CreatedAt.Format("2006-01-02"),
			rec.EventDate,
			runewidth.Truncate(rec.Subject, 30, "…"),
			runewidth.Truncate(first, summaryColWidth, "…"),
		})
	}
	return Table(rows)
}

// Table renders rows as a pipe-delimited table with a separator under the
// first row. Columns are padded by display width so wide runes stay aligned.
func Table(rows [][]string) string {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return ""
	}

	colWidths := make([]int, colCount)
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var b strings.Builder
	for rIdx, row := range rows {
		writeRow(&b, row, colWidths)
		if rIdx == 0 {
			sep := make([]string, colCount)
			for i := range sep {
				sep[i] = strings.Repeat("-", colWidths[i])
			}
			writeRow(&b, sep, colWidths)
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string, colWidths []int) {
	b.WriteString("|")
	for j := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}
		b.WriteString(" ")
		b.WriteString(content)
		if padding := colWidths[j] - runewidth.StringWidth(content); padding > 0 {
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
