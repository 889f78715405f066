// Package tenk extracts structured financial data from SEC annual-report
// filings (10-K HTML/SGML documents).
//
// The filings carry no machine-readable schema for their statement tables:
// layouts, column spacing, and row labels vary freely between filers. The
// extractor works heuristically: it classifies each HTML table by statement
// type, locates fiscal-year columns in the header rows, resolves numeric
// cells across inconsistent column offsets, maps row labels onto a fixed
// metric taxonomy, and reconciles values across tables and years.
//
// Extraction is best-effort and auditable, not certified: every accepted
// value is recorded in the Diagnostics returned alongside the results.
package tenk
