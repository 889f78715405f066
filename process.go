package tenk

import "fmt"

// RecordSink receives one filing-year entry at a time. Implemented by the
// persistence collaborator.
type RecordSink interface {
	StoreYearRecord(meta FilingMetadata, record YearRecord) error
}

// TextIndexer receives the filing's cleaned plain text. Implemented by the
// semantic-search collaborator.
type TextIndexer interface {
	IndexFilingText(meta FilingMetadata, text string) error
}

// ProcessResult summarizes one filing's fan-out to the collaborators.
type ProcessResult struct {
	Extraction *Extraction
	Stored     int     // records handed to the sink
	Indexed    bool    // plain text handed to the indexer
	Errors     []error // non-fatal collaborator and extraction errors
}

// Process runs extraction and text indexing over one filing and fans the
// results out. Structured extraction failing, or finding nothing, never
// blocks text indexing; its error is recorded and processing continues.
// Process itself fails only when the document cannot be read as HTML at
// all, in which case neither collaborator saw anything.
func Process(data []byte, sink RecordSink, indexer TextIndexer) (*ProcessResult, error) {
	result := &ProcessResult{}

	extraction, err := Extract(data)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("structured extraction failed: %w", err))
	} else {
		result.Extraction = extraction
	}

	text, err := ExtractPlainText(data)
	if err != nil {
		if result.Extraction == nil {
			// Neither pipeline could read the document; this filing is
			// unusable and the caller should skip or retry it.
			return nil, fmt.Errorf("unreadable filing document: %w", err)
		}
		result.Errors = append(result.Errors, fmt.Errorf("text extraction failed: %w", err))
	} else if indexer != nil {
		if err := indexer.IndexFilingText(extractionMeta(result.Extraction, data), text); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("text indexing failed: %w", err))
		} else {
			result.Indexed = true
		}
	}

	if result.Extraction != nil && sink != nil {
		for _, record := range result.Extraction.Records {
			if err := sink.StoreYearRecord(result.Extraction.Metadata, record); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("store FY %d: %w", record.FiscalYearEnd.Year(), err))
				continue
			}
			result.Stored++
		}
	}

	return result, nil
}

// extractionMeta falls back to header-only metadata when structured
// extraction failed; the indexer still gets filer identity.
func extractionMeta(extraction *Extraction, data []byte) FilingMetadata {
	if extraction != nil {
		return extraction.Metadata
	}
	meta, _ := ParseMetadata(string(NormalizeText(data)))
	return meta
}
