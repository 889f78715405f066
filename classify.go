package tenk

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StatementType tags a table as one of the three statement families the
// taxonomy draws from.
type StatementType string

const (
	StatementIncome   StatementType = "income"
	StatementBalance  StatementType = "balance"
	StatementCashFlow StatementType = "cashflow"
)

// TableScope distinguishes company-wide statements from per-segment ones.
// Consolidated data overrides segment data during the cross-table merge.
type TableScope string

const (
	ScopeSegment      TableScope = "segment"
	ScopeConsolidated TableScope = "consolidated"
)

// classifiedTable is one statement table ready for year location and value
// resolution. Cells hold trimmed text per row.
type classifiedTable struct {
	index      int // position among all <table> nodes in the document
	statement  StatementType
	scope      TableScope
	rows       [][]string
	headerText string // lowercased text of the first rows, for unit detection
}

// Guard against pathological documents; real filings carry a few hundred
// tables at most.
const maxTablesScanned = 4096

// tocTextWindow is how far into a table's text the "page" table-of-contents
// heuristic looks.
const tocTextWindow = 500

// classifyStats is what the classifier reports into Diagnostics.
type classifyStats struct {
	scanned int
	skipped int
}

// classifyTables scans every table node, tags each by statement type and
// scope, and returns them in the mandated processing order: all
// segment-scoped tables first (document order), then all consolidated
// tables (document order). The merger's consolidated-wins rule depends on
// that ordering.
func classifyTables(doc *goquery.Document) ([]classifiedTable, classifyStats) {
	var segment, consolidated []classifiedTable
	var stats classifyStats

	doc.Find("table").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= maxTablesScanned {
			return false
		}
		stats.scanned++

		text := strings.ToLower(sel.Text())

		// Table-of-contents pages list "Page" up front; skip them.
		head := text
		if len(head) > tocTextWindow {
			head = head[:tocTextWindow]
		}
		if strings.Contains(head, "page") {
			stats.skipped++
			return true
		}

		stmt, ok := statementType(text)
		if !ok {
			stats.skipped++
			return true
		}

		ct := classifiedTable{
			index:     i,
			statement: stmt,
			scope:     tableScope(text),
			rows:      tableCells(sel),
		}
		ct.headerText = headerText(ct.rows)

		if ct.scope == ScopeConsolidated {
			consolidated = append(consolidated, ct)
		} else {
			segment = append(segment, ct)
		}
		return true
	})

	return append(segment, consolidated...), stats
}

// statementType classifies a table by its keyword set. Tables matching no
// set are dropped.
func statementType(text string) (StatementType, bool) {
	switch {
	case containsAny(text,
		"consolidated statements of income",
		"consolidated statements of operations",
		"statements of income",
		"statements of operations"),
		strings.Contains(text, "net sales") && strings.Contains(text, "income"):
		return StatementIncome, true
	case containsAny(text, "consolidated balance sheets", "balance sheets"):
		return StatementBalance, true
	case containsAny(text, "consolidated statements of cash flows", "statements of cash flows"):
		return StatementCashFlow, true
	}
	return "", false
}

// tableScope tags consolidated statements independently of statement type.
func tableScope(text string) TableScope {
	if containsAny(text, "consolidated statements", "consolidated income", "consolidated balance") {
		return ScopeConsolidated
	}
	return ScopeSegment
}

func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// tableCells flattens a table node into trimmed cell text per row. Both td
// and th cells count; filers use them interchangeably.
func tableCells(sel *goquery.Selection) [][]string {
	var rows [][]string
	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, cells)
	})
	return rows
}

// headerText joins the first three rows, lowercased; the unit multiplier
// ("in millions") is declared there when it is declared at all.
func headerText(rows [][]string) string {
	var parts []string
	for i := 0; i < len(rows) && i < 3; i++ {
		parts = append(parts, strings.Join(rows[i], " "))
	}
	return strings.ToLower(strings.Join(parts, " "))
}
