package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"pnlsnap/internal/core"
)

func sampleAggregate() *core.AggregateResult {
	return &core.AggregateResult{
		Total: 13.006,
		ByCategory: map[string]float64{
			"RATES": 0.0,
			"FX":    13.006,
		},
		ByDesk: map[string]float64{
			"D2": 3.0,
			"D1": 10.006,
		},
	}
}

func TestRenderText(t *testing.T) {
	got := RenderText(sampleAggregate())

	expected := "Total PnL: 13.01\n\n" +
		"PnL by Category:\n" +
		strings.Repeat("-", 40) + "\n" +
		"FX: 13.01\n" +
		"RATES: 0.00\n" +
		"\nPnL by Desk:\n" +
		strings.Repeat("-", 40) + "\n" +
		"D1: 10.01\n" +
		"D2: 3.00\n"

	if got != expected {
		t.Errorf("RenderText() =\n%s\nwant:\n%s", got, expected)
	}
}

func TestRenderText_EmptyBuckets(t *testing.T) {
	got := RenderText(&core.AggregateResult{
		ByCategory: map[string]float64{},
		ByDesk:     map[string]float64{},
	})
	if !strings.HasPrefix(got, "Total PnL: 0.00\n") {
		t.Errorf("RenderText() = %q, want zero total header", got)
	}
}

func TestBuildPayload(t *testing.T) {
	now := time.Date(2025, 11, 7, 14, 30, 5, 0, time.UTC)

	p := BuildPayload(sampleAggregate(), now)

	if p.Timestamp != "2025-11-07 14:30:05" {
		t.Errorf("Timestamp = %q, want 2025-11-07 14:30:05", p.Timestamp)
	}
	if p.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", p.Timezone)
	}
	if p.TotalPnL != 13.01 {
		t.Errorf("TotalPnL = %v, want 13.01", p.TotalPnL)
	}
	if p.ByCategory["FX"] != 13.01 || p.ByCategory["RATES"] != 0.0 {
		t.Errorf("ByCategory = %v, want rounded values", p.ByCategory)
	}
	if p.ByDesk["D1"] != 10.01 || p.ByDesk["D2"] != 3.0 {
		t.Errorf("ByDesk = %v, want rounded values", p.ByDesk)
	}
}

// The JSON form must list bucket labels in ascending order so repeated
// runs over the same data serialize identically.
func TestPayload_JSONBucketOrder(t *testing.T) {
	p := BuildPayload(&core.AggregateResult{
		ByCategory: map[string]float64{"RATES": 1, "CRYPTO": 2, "FX": 3},
		ByDesk:     map[string]float64{"D3": 1, "D1": 2, "D2": 3},
	}, time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC))

	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s := string(body)
	for _, ordered := range [][]string{
		{`"CRYPTO"`, `"FX"`, `"RATES"`},
		{`"D1"`, `"D2"`, `"D3"`},
	} {
		last := -1
		for _, label := range ordered {
			idx := strings.Index(s, label)
			if idx < 0 {
				t.Fatalf("label %s missing from %s", label, s)
			}
			if idx < last {
				t.Errorf("label %s out of order in %s", label, s)
			}
			last = idx
		}
	}
}

func TestTimezoneLabel(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected string
	}{
		{
			name:     "zone abbreviation wins",
			time:     time.Date(2025, 11, 7, 12, 0, 0, 0, time.FixedZone("CET", 3600)),
			expected: "CET",
		},
		{
			name:     "unnamed zone falls back to offset",
			time:     time.Date(2025, 11, 7, 12, 0, 0, 0, time.FixedZone("", -7*3600)),
			expected: "-07:00",
		},
		{
			name:     "unnamed zero offset falls back to UTC literal",
			time:     time.Date(2025, 11, 7, 12, 0, 0, 0, time.FixedZone("", 0)),
			expected: "UTC",
		},
		{
			name:     "explicit UTC",
			time:     time.Date(2025, 11, 7, 12, 0, 0, 0, time.UTC),
			expected: "UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimezoneLabel(tt.time); got != tt.expected {
				t.Errorf("TimezoneLabel() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{12.344, 12.34},
		{12.346, 12.35},
		{-12.346, -12.35},
		{0, 0},
		{999.999, 1000},
	}

	for _, tt := range tests {
		if got := round2(tt.in); got != tt.expected {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}
