package tenk

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extraction is the full result of structured extraction for one filing:
// shared metadata, one record per fiscal year (most recent first), and the
// diagnostics trail. An empty Records slice means no statement table was
// classified — structured data unavailable, not an error.
type Extraction struct {
	Metadata    FilingMetadata `json:"metadata"`
	Records     []YearRecord   `json:"records"`
	Diagnostics Diagnostics    `json:"diagnostics"`
}

// Diagnostics reports what extraction saw and decided, replacing in-band
// logging. Consumers treat it as a quality signal per filing.
type Diagnostics struct {
	TablesScanned      int          `json:"tablesScanned"`
	TablesSkipped      int          `json:"tablesSkipped"`
	IncomeTables       int          `json:"incomeTables"`
	BalanceTables      int          `json:"balanceTables"`
	CashFlowTables     int          `json:"cashFlowTables"`
	SegmentTables      int          `json:"segmentTables"`
	ConsolidatedTables int          `json:"consolidatedTables"`
	TablesWithoutYears int          `json:"tablesWithoutYears"`
	ValueParseFailures int          `json:"valueParseFailures"`
	MetadataDefaults   []string     `json:"metadataDefaults,omitempty"`
	YearsDetected      int          `json:"yearsDetected"`
	YearsEmitted       int          `json:"yearsEmitted"`
	Provenance         []Provenance `json:"provenance,omitempty"`
}

// Provenance records one accepted field assignment: which table, at what
// scope, put which value into which year's slot.
type Provenance struct {
	FiscalYear int           `json:"fiscalYear"`
	Field      string        `json:"field"`
	TableIndex int           `json:"tableIndex"`
	Statement  StatementType `json:"statement"`
	Scope      TableScope    `json:"scope"`
	RowLabel   string        `json:"rowLabel"`
	Value      float64       `json:"value"`
}

// Extract runs the full pipeline over one raw filing document (SGML/HTML
// text): metadata, table classification, per-table year location and value
// resolution, cross-table merge, then year dedup and plausibility
// filtering. It errors only when the document cannot be parsed at all.
func Extract(data []byte) (*Extraction, error) {
	content := string(NormalizeText(data))

	meta, defaulted := ParseMetadata(content)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse filing document: %w", err)
	}

	result := &Extraction{Metadata: meta}
	result.Diagnostics.MetadataDefaults = defaulted

	tables, stats := classifyTables(doc)
	result.Diagnostics.TablesScanned = stats.scanned
	result.Diagnostics.TablesSkipped = stats.skipped

	var ledger yearLedger
	for _, table := range tables {
		countTable(&result.Diagnostics, table)
		extractTable(table, &ledger, &result.Diagnostics)
	}

	records := dedupeYears(ledger.records)
	result.Diagnostics.YearsDetected = len(records)

	sortRecords(records)
	records = filterYears(records, meta.FilingDate.Year())
	result.Diagnostics.YearsEmitted = len(records)

	result.Records = records
	return result, nil
}

// extractTable locates year columns, walks the data rows resolving and
// classifying values, and merges the table's per-year accumulators into the
// ledger.
func extractTable(table classifiedTable, ledger *yearLedger, diag *Diagnostics) {
	columns, dataStart := locateYearColumns(table.rows)
	if len(columns) == 0 {
		diag.TablesWithoutYears++
		return
	}

	multiplier := unitMultiplier(table.headerText)

	yearCols := make(map[int]bool, len(columns))
	for _, col := range columns {
		yearCols[col.column] = true
	}

	for rowIdx := dataStart; rowIdx < len(table.rows); rowIdx++ {
		cells := table.rows[rowIdx]
		if len(cells) < 2 {
			continue
		}
		rowText := strings.Join(cells, " ")

		for i := range columns {
			col := &columns[i]

			value, failures, ok := resolveValue(cells, col.column, yearCols, table.statement)
			diag.ValueParseFailures += failures
			if !ok {
				continue
			}
			value *= multiplier

			field, stored := classifyRow(&col.metrics, table.statement, rowText, value)
			if stored {
				diag.Provenance = append(diag.Provenance, Provenance{
					FiscalYear: col.fiscalYearEnd.Year(),
					Field:      field,
					TableIndex: table.index,
					Statement:  table.statement,
					Scope:      table.scope,
					RowLabel:   cells[0],
					Value:      value,
				})
			}
		}
	}

	for _, col := range columns {
		ledger.absorb(col.fiscalYearEnd, col.metrics, table.scope)
	}
}

func countTable(diag *Diagnostics, table classifiedTable) {
	switch table.statement {
	case StatementIncome:
		diag.IncomeTables++
	case StatementBalance:
		diag.BalanceTables++
	case StatementCashFlow:
		diag.CashFlowTables++
	}
	if table.scope == ScopeConsolidated {
		diag.ConsolidatedTables++
	} else {
		diag.SegmentTables++
	}
}
