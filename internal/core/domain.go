package core

import "errors"

// UnknownLabel is the bucket used for records whose category or desk is
// absent or null in the source document.
const UnknownLabel = "Unknown"

type (
	// Record is one PnL entry from the dashboard snapshot. Every field is
	// optional in the source document; pointer types distinguish an absent
	// or null field from an explicit zero value.
	Record struct {
		KTPnL1Back           *float64 `json:"kt_pnl_1_back"`
		CurrentCumulativePnL *float64 `json:"current_cumulative_pnl"`
		Category             *string  `json:"category"`
		Desk                 *string  `json:"desk"`
	}

	// Document is the parsed response body of the PnL dashboard API.
	// Results is nil when the key is missing or null, which Aggregate
	// treats as malformed; an empty list decodes as a non-nil slice.
	Document struct {
		Results []Record `json:"results"`
	}

	// AggregateResult holds the summed PnL of one snapshot: the grand
	// total plus per-category and per-desk buckets.
	AggregateResult struct {
		Total      float64
		ByCategory map[string]float64
		ByDesk     map[string]float64
	}
)

var ErrMalformedDocument = errors.New("document has no results list")

// Value resolves the contributing PnL for the record. The primary field
// wins whenever it is set, including an explicit 0; otherwise the
// cumulative fallback applies, and a record with neither contributes 0.
func (r Record) Value() float64 {
	if r.KTPnL1Back != nil {
		return *r.KTPnL1Back
	}
	if r.CurrentCumulativePnL != nil {
		return *r.CurrentCumulativePnL
	}
	return 0
}

// CategoryLabel returns the record's category bucket label.
func (r Record) CategoryLabel() string {
	return label(r.Category)
}

// DeskLabel returns the record's desk bucket label.
func (r Record) DeskLabel() string {
	return label(r.Desk)
}

func label(s *string) string {
	if s == nil {
		return UnknownLabel
	}
	return *s
}
