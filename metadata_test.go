package tenk

import (
	"testing"
	"time"
)

const sampleHeader = `<SEC-HEADER>0000320193-24-000123.hdr.sgml : 20241101
ACCESSION NUMBER:		0000320193-24-000123
CONFORMED SUBMISSION TYPE:	10-K
FILED AS OF DATE:		20241101
FILER:
	COMPANY DATA:
		COMPANY CONFORMED NAME:			Apple Inc.
		CENTRAL INDEX KEY:			0000320193
		FISCAL YEAR END:			0928
</SEC-HEADER>`

func TestParseMetadata(t *testing.T) {
	meta, defaulted := ParseMetadata(sampleHeader)

	if meta.CompanyName != "Apple Inc." {
		t.Errorf("CompanyName = %q, want %q", meta.CompanyName, "Apple Inc.")
	}
	if meta.CIK != "0000320193" {
		t.Errorf("CIK = %q, want %q", meta.CIK, "0000320193")
	}
	if meta.AccessionNumber != "0000320193-24-000123" {
		t.Errorf("AccessionNumber = %q, want %q", meta.AccessionNumber, "0000320193-24-000123")
	}
	if want := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC); !meta.FilingDate.Equal(want) {
		t.Errorf("FilingDate = %v, want %v", meta.FilingDate, want)
	}
	// Fiscal year end combines the MMDD header field with the filing year.
	if want := time.Date(2024, time.September, 28, 0, 0, 0, 0, time.UTC); !meta.FiscalYearEnd.Equal(want) {
		t.Errorf("FiscalYearEnd = %v, want %v", meta.FiscalYearEnd, want)
	}
	if len(defaulted) != 0 {
		t.Errorf("defaulted fields = %v, want none", defaulted)
	}
}

func TestParseMetadataDefaults(t *testing.T) {
	meta, defaulted := ParseMetadata("<html><body>no header here</body></html>")

	if meta.CompanyName != "Unknown" {
		t.Errorf("CompanyName = %q, want %q", meta.CompanyName, "Unknown")
	}
	if meta.CIK != "0000000000" {
		t.Errorf("CIK = %q, want %q", meta.CIK, "0000000000")
	}
	if meta.AccessionNumber != "0000000000-00-000000" {
		t.Errorf("AccessionNumber = %q, want zero-filled placeholder", meta.AccessionNumber)
	}
	if meta.FilingDate.IsZero() {
		t.Error("FilingDate should default to processing time, got zero")
	}
	if !meta.FiscalYearEnd.Equal(meta.FilingDate) {
		t.Errorf("FiscalYearEnd = %v, want filing date %v", meta.FiscalYearEnd, meta.FilingDate)
	}

	want := []string{"companyName", "cik", "accessionNumber", "filingDate", "fiscalYearEnd"}
	if len(defaulted) != len(want) {
		t.Fatalf("defaulted = %v, want %v", defaulted, want)
	}
	for i, name := range want {
		if defaulted[i] != name {
			t.Errorf("defaulted[%d] = %q, want %q", i, defaulted[i], name)
		}
	}
}

func TestParseMetadataPartialHeader(t *testing.T) {
	content := "CENTRAL INDEX KEY:\t0001234567\nFILED AS OF DATE:\t20230315\n"
	meta, defaulted := ParseMetadata(content)

	if meta.CIK != "0001234567" {
		t.Errorf("CIK = %q, want %q", meta.CIK, "0001234567")
	}
	if meta.CompanyName != "Unknown" {
		t.Errorf("CompanyName = %q, want default", meta.CompanyName)
	}
	// Missing fiscal year end falls back to the filing date.
	if want := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC); !meta.FiscalYearEnd.Equal(want) {
		t.Errorf("FiscalYearEnd = %v, want %v", meta.FiscalYearEnd, want)
	}
	if len(defaulted) != 3 {
		t.Errorf("defaulted = %v, want 3 entries", defaulted)
	}
}
