package tenk

import (
	"regexp"
	"time"
)

// FilingMetadata identifies the filer and the filing, extracted from the
// SGML header block that precedes the document body.
type FilingMetadata struct {
	CompanyName     string    `json:"companyName"`
	CIK             string    `json:"cik"`
	AccessionNumber string    `json:"accessionNumber"`
	FilingDate      time.Time `json:"filingDate"`
	FiscalYearEnd   time.Time `json:"fiscalYearEnd"`
}

// Header labels are fixed-format, one field per line:
//
//	COMPANY CONFORMED NAME:    Apple Inc.
//	CENTRAL INDEX KEY:         0000320193
//	ACCESSION NUMBER:          0000320193-24-000123
//	FILED AS OF DATE:          20241101
//	FISCAL YEAR END:           0928
var (
	companyNamePattern = regexp.MustCompile(`COMPANY CONFORMED NAME:[ \t]*(.+)`)
	cikPattern         = regexp.MustCompile(`CENTRAL INDEX KEY:[ \t]*(\d+)`)
	accessionPattern   = regexp.MustCompile(`ACCESSION NUMBER:[ \t]*(\S+)`)
	filedDatePattern   = regexp.MustCompile(`FILED AS OF DATE:[ \t]*(\d{8})`)
	fiscalYearPattern  = regexp.MustCompile(`FISCAL YEAR END:[ \t]*(\d{4})`)
)

// Fallbacks for absent header fields.
const (
	defaultCompanyName = "Unknown"
	defaultCIK         = "0000000000"
	defaultAccession   = "0000000000-00-000000"
)

// ParseMetadata extracts filing metadata from the raw document text. Every
// field has a fallback, so extraction never fails; fields that fell back to
// their defaults are returned by name so callers can surface the quality
// signal.
func ParseMetadata(content string) (FilingMetadata, []string) {
	meta := FilingMetadata{
		CompanyName:     defaultCompanyName,
		CIK:             defaultCIK,
		AccessionNumber: defaultAccession,
	}
	var defaulted []string

	if m := companyNamePattern.FindStringSubmatch(content); m != nil {
		meta.CompanyName = trimHeaderValue(m[1])
	} else {
		defaulted = append(defaulted, "companyName")
	}

	if m := cikPattern.FindStringSubmatch(content); m != nil {
		meta.CIK = m[1]
	} else {
		defaulted = append(defaulted, "cik")
	}

	if m := accessionPattern.FindStringSubmatch(content); m != nil {
		meta.AccessionNumber = m[1]
	} else {
		defaulted = append(defaulted, "accessionNumber")
	}

	if m := filedDatePattern.FindStringSubmatch(content); m != nil {
		if t, err := time.Parse("20060102", m[1]); err == nil {
			meta.FilingDate = t
		}
	}
	if meta.FilingDate.IsZero() {
		meta.FilingDate = time.Now()
		defaulted = append(defaulted, "filingDate")
	}

	// FISCAL YEAR END is month+day only; the year comes from the filing date.
	if m := fiscalYearPattern.FindStringSubmatch(content); m != nil {
		stamp := meta.FilingDate.Format("2006") + m[1]
		if t, err := time.Parse("20060102", stamp); err == nil {
			meta.FiscalYearEnd = t
		}
	}
	if meta.FiscalYearEnd.IsZero() {
		meta.FiscalYearEnd = meta.FilingDate
		defaulted = append(defaulted, "fiscalYearEnd")
	}

	return meta, defaulted
}

var trailingWhitespacePattern = regexp.MustCompile(`\s+$`)

func trimHeaderValue(s string) string {
	return trailingWhitespacePattern.ReplaceAllString(s, "")
}
