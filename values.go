package tenk

import (
	"math"
	"strconv"
	"strings"
)

// Unit multipliers converting displayed figures to base currency units.
// SEC convention: figures are "in thousands" unless the table declares
// another scale.
const (
	multiplierThousands = 1_000
	multiplierMillions  = 1_000_000
)

// unitMultiplier picks the scale from the table's header text (already
// lowercased).
func unitMultiplier(header string) float64 {
	if strings.Contains(header, "millions") {
		return multiplierMillions
	}
	return multiplierThousands
}

// Income-statement cells below this magnitude are footnote markers or
// per-share figures, not statement line values.
const minIncomeMagnitude = 10

// candidateOffsets is the fallback chain of value-column probes relative to
// a year column. Filers interleave blank and currency-symbol columns
// between a year label and its figures, and the drift varies row to row.
var candidateOffsets = [...]int{1, 2, 3, 4, 0}

// resolveValue probes the row's cells at each candidate offset from the
// year column and returns the first cell that parses as a number (and, for
// income statements, clears the footnote-marker floor). Candidate cells
// sitting on a different located year column are never probed: when year
// labels and values share columns, the c+1 probe would otherwise read the
// neighboring year's figure. The returned value is unscaled; parse failures
// along the way are counted for diagnostics.
func resolveValue(cells []string, yearCol int, yearCols map[int]bool, stmt StatementType) (value float64, failures int, ok bool) {
	for _, offset := range candidateOffsets {
		col := yearCol + offset
		if col >= len(cells) {
			continue
		}
		if col != yearCol && yearCols[col] {
			continue
		}

		text := strings.TrimSpace(cells[col])
		if text == "" || text == "$" {
			continue
		}

		v, err := parseNumber(text)
		if err != nil {
			failures++
			continue
		}
		if stmt == StatementIncome && math.Abs(v) < minIncomeMagnitude {
			continue
		}
		return v, failures, true
	}
	return 0, failures, false
}

// parseNumber parses a financial table cell: currency symbols and spaces
// stripped, parentheses meaning negative, thousands separators removed.
//
//	"$416,161"  → 416161
//	"(1,234)"   → -1234
//	"1234.56"   → 1234.56
func parseNumber(text string) (float64, error) {
	cleaned := strings.ReplaceAll(text, "$", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.TrimSpace(cleaned)

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if negative {
		v = -v
	}
	return v, nil
}
