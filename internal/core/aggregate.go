// Package core holds the PnL snapshot domain types and the aggregation
// over one batch of records.
package core

// Aggregate sums every record in the document into a grand total and
// per-category / per-desk buckets. Buckets are created lazily on first
// write, so only labels present in the batch appear in the maps. A nil
// document or a missing results list fails with ErrMalformedDocument;
// an empty results list aggregates to zero with empty buckets.
func Aggregate(doc *Document) (*AggregateResult, error) {
	if doc == nil || doc.Results == nil {
		return nil, ErrMalformedDocument
	}

	agg := &AggregateResult{
		ByCategory: make(map[string]float64),
		ByDesk:     make(map[string]float64),
	}

	for _, rec := range doc.Results {
		v := rec.Value()
		agg.Total += v
		agg.ByCategory[rec.CategoryLabel()] += v
		agg.ByDesk[rec.DeskLabel()] += v
	}

	return agg, nil
}
