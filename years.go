package tenk

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// yearColumn binds a located fiscal-year column to the metrics accumulated
// for it while one table is processed.
type yearColumn struct {
	column        int
	fiscalYearEnd time.Time
	metrics       KeyMetrics
}

// Scan depth for header rows; year labels sit in the first few rows when
// they are present at all.
const maxHeaderRows = 5

// Fallback data start row when no year header row is found.
const defaultDataStartRow = 2

var (
	monthDatePattern = regexp.MustCompile(`(?i)(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)\s+\d{1,2},?\s+(\d{4})`)
	bareYearPattern  = regexp.MustCompile(`^\s*(20\d{2})\s*$`)
	anyYearPattern   = regexp.MustCompile(`\b(20\d{2})\b`)
)

// locateYearColumns scans up to the first maxHeaderRows rows for fiscal-year
// labels and maps them to column positions. Per cell, three patterns apply
// in priority order:
//
//  1. a month/day/year date, parsed into the concrete date
//  2. a cell that is nothing but a 4-digit year, defaulted to Sep 30
//  3. a 4-digit year anywhere in the cell, defaulted to Dec 31
//
// The first row yielding at least one match wins; later rows are not
// searched. Column indices are distinct in the result. The returned start
// index is the row after the header row (defaultDataStartRow when no header
// row matched).
func locateYearColumns(rows [][]string) ([]yearColumn, int) {
	var columns []yearColumn

	for rowIdx := 0; rowIdx < len(rows) && rowIdx < maxHeaderRows; rowIdx++ {
		for colIdx, cell := range rows[rowIdx] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			fye, ok := cellFiscalYearEnd(cell)
			if !ok || haveColumn(columns, colIdx) {
				continue
			}
			columns = append(columns, yearColumn{column: colIdx, fiscalYearEnd: fye})
		}
		if len(columns) > 0 {
			return columns, rowIdx + 1
		}
	}

	return nil, defaultDataStartRow
}

// cellFiscalYearEnd resolves one header cell to a fiscal-year-end date.
func cellFiscalYearEnd(cell string) (time.Time, bool) {
	if m := monthDatePattern.FindStringSubmatch(cell); m != nil {
		year, _ := strconv.Atoi(m[2])
		if t, ok := parseLongDate(cell); ok {
			return t, true
		}
		// Date text present but unparseable (extra words, odd layout);
		// fall back to a fiscal-year-style default.
		return time.Date(year, time.September, 30, 0, 0, 0, 0, time.UTC), true
	}

	if m := bareYearPattern.FindStringSubmatch(cell); m != nil {
		year, _ := strconv.Atoi(m[1])
		return time.Date(year, time.September, 30, 0, 0, 0, 0, time.UTC), true
	}

	if m := anyYearPattern.FindStringSubmatch(cell); m != nil {
		year, _ := strconv.Atoi(m[1])
		return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// parseLongDate handles "September 28, 2024" and "Sep 28 2024" forms.
func parseLongDate(cell string) (time.Time, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	for _, layout := range []string{"January 2 2006", "Jan 2 2006"} {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func haveColumn(columns []yearColumn, col int) bool {
	for _, c := range columns {
		if c.column == col {
			return true
		}
	}
	return false
}
