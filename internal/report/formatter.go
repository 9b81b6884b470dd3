// Package report renders aggregated PnL either as a plain-text report
// for log sinks or as the structured JSON payload of the API contract.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"pnlsnap/internal/core"
)

// TimestampLayout is the wire format of Payload.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Payload is the structured snapshot returned by the request/response
// contract. The bucket maps marshal with keys in ascending label order
// (encoding/json sorts string map keys), so the JSON form is
// reproducible for identical input.
type Payload struct {
	Timestamp  string             `json:"timestamp"`
	Timezone   string             `json:"timezone"`
	TotalPnL   float64            `json:"total_pnl"`
	ByCategory map[string]float64 `json:"by_category"`
	ByDesk     map[string]float64 `json:"by_desk"`
}

// RenderText formats the aggregate as a human-readable report: the grand
// total followed by category and desk buckets, each alphabetized and
// printed to two decimals.
func RenderText(agg *core.AggregateResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total PnL: %.2f\n\n", agg.Total)

	b.WriteString("PnL by Category:\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, name := range sortedLabels(agg.ByCategory) {
		fmt.Fprintf(&b, "%s: %.2f\n", name, agg.ByCategory[name])
	}

	b.WriteString("\nPnL by Desk:\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, name := range sortedLabels(agg.ByDesk) {
		fmt.Fprintf(&b, "%s: %.2f\n", name, agg.ByDesk[name])
	}

	return b.String()
}

// BuildPayload packages the aggregate as the response payload, rounding
// every value to two decimals and stamping it with now and its timezone
// label.
func BuildPayload(agg *core.AggregateResult, now time.Time) Payload {
	return Payload{
		Timestamp:  now.Format(TimestampLayout),
		Timezone:   TimezoneLabel(now),
		TotalPnL:   round2(agg.Total),
		ByCategory: rounded(agg.ByCategory),
		ByDesk:     rounded(agg.ByDesk),
	}
}

// TimezoneLabel resolves a display label for now's zone as an ordered
// fallback chain: the platform abbreviation when there is one, else the
// signed UTC offset, else the literal "UTC".
func TimezoneLabel(now time.Time) string {
	name, offset := now.Zone()
	if name != "" {
		return name
	}
	if offset != 0 {
		return now.Format("-07:00")
	}
	return "UTC"
}

func sortedLabels(buckets map[string]float64) []string {
	labels := make([]string, 0, len(buckets))
	for name := range buckets {
		labels = append(labels, name)
	}
	sort.Strings(labels)
	return labels
}

func rounded(buckets map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(buckets))
	for name, v := range buckets {
		out[name] = round2(v)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
