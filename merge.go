package tenk

import (
	"sort"
	"time"
)

// YearRecord is one fiscal year's extracted metrics. The final output holds
// exactly one record per fiscal year, most recent first.
type YearRecord struct {
	FiscalYearEnd time.Time  `json:"fiscalYearEnd"`
	Metrics       KeyMetrics `json:"metrics"`
}

// Years further than this from the filing date are treated as detection
// false positives (page numbers, dollar figures read as years).
const maxYearDistance = 5

// yearLedger accumulates per-year metrics across tables. Tables must be fed
// in the classifier's mandated order (segment before consolidated); the
// consolidated-wins override depends on it.
type yearLedger struct {
	records []YearRecord
}

// absorb merges one table's year column into the ledger.
func (l *yearLedger) absorb(fye time.Time, metrics KeyMetrics, scope TableScope) {
	for i := range l.records {
		if l.records[i].FiscalYearEnd.Equal(fye) {
			mergeMetrics(&l.records[i].Metrics, &metrics, scope == ScopeConsolidated)
			return
		}
	}
	l.records = append(l.records, YearRecord{FiscalYearEnd: fye, Metrics: metrics})
}

// mergeMetrics merges incoming fields into existing, field by field. A nil
// existing field takes any non-nil incoming value. A non-nil existing field
// is overwritten only when the incoming value comes from a consolidated
// table; consolidated statements win outright, irrespective of magnitude.
// Segment-to-segment conflicts were already settled by the larger-magnitude
// rule during single-table construction.
func mergeMetrics(existing, incoming *KeyMetrics, consolidated bool) {
	for _, f := range metricFields {
		src := *f.get(incoming)
		if src == nil {
			continue
		}
		dst := f.get(existing)
		if *dst == nil || consolidated {
			v := *src
			*dst = &v
		}
	}
}

// dedupeYears collapses records that resolve to the same calendar year.
// Duplicates happen because locator patterns default the fiscal-year-end
// day differently (Sep 30 vs Dec 31). The first record for a year is kept
// unless a later one carries revenue the first lacks, or strictly more of
// it; replacement is wholesale.
func dedupeYears(records []YearRecord) []YearRecord {
	kept := make(map[int]YearRecord)
	var order []int

	for _, rec := range records {
		year := rec.FiscalYearEnd.Year()
		existing, seen := kept[year]
		if !seen {
			kept[year] = rec
			order = append(order, year)
			continue
		}
		if rec.Metrics.Revenue == nil {
			continue
		}
		if existing.Metrics.Revenue == nil || *rec.Metrics.Revenue > *existing.Metrics.Revenue {
			kept[year] = rec
		}
	}

	out := make([]YearRecord, 0, len(order))
	for _, year := range order {
		out = append(out, kept[year])
	}
	return out
}

// filterYears drops implausible fiscal years: the year must be within
// maxYearDistance of the filing year and no more than four years behind it.
func filterYears(records []YearRecord, filingYear int) []YearRecord {
	out := records[:0:0]
	for _, rec := range records {
		year := rec.FiscalYearEnd.Year()
		diff := filingYear - year
		if diff < 0 {
			diff = -diff
		}
		if diff <= maxYearDistance && year >= filingYear-4 {
			out = append(out, rec)
		}
	}
	return out
}

// sortRecords orders records most recent fiscal year first.
func sortRecords(records []YearRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].FiscalYearEnd.After(records[j].FiscalYearEnd)
	})
}
