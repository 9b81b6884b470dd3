package amqp

import (
	"testing"
	"time"

	"pnlsnap/internal/report"
)

func TestNewSnapshotMessage(t *testing.T) {
	payload := report.Payload{
		Timestamp:  "2025-11-07 14:30:05",
		Timezone:   "UTC",
		TotalPnL:   13.0,
		ByCategory: map[string]float64{"FX": 13.0},
		ByDesk:     map[string]float64{"D1": 13.0},
	}

	before := time.Now()
	msg := NewSnapshotMessage(payload)
	after := time.Now()

	if msg.PublishedAt.Before(before) || msg.PublishedAt.After(after) {
		t.Errorf("PublishedAt = %v, want between %v and %v", msg.PublishedAt, before, after)
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	decoded, err := SnapshotMessageFromJSON(body)
	if err != nil {
		t.Fatalf("SnapshotMessageFromJSON() error = %v", err)
	}
	if decoded.Snapshot.TotalPnL != 13.0 {
		t.Errorf("TotalPnL = %v, want 13.0", decoded.Snapshot.TotalPnL)
	}
	if decoded.Snapshot.ByCategory["FX"] != 13.0 {
		t.Errorf("ByCategory = %v, want FX=13.0", decoded.Snapshot.ByCategory)
	}
}

func TestSnapshotMessageFromJSON_Invalid(t *testing.T) {
	if _, err := SnapshotMessageFromJSON([]byte(`{"snapshot":`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}
