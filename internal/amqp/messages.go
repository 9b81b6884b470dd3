package amqp

import (
	"encoding/json"
	"time"

	"pnlsnap/internal/report"
)

// SnapshotMessage wraps one rendered PnL snapshot for the queue. The
// payload is carried whole so consumers never re-query the dashboard.
type SnapshotMessage struct {
	Snapshot    report.Payload `json:"snapshot"`
	PublishedAt time.Time      `json:"published_at"`
}

// NewSnapshotMessage creates a queue message for the given payload.
func NewSnapshotMessage(p report.Payload) *SnapshotMessage {
	return &SnapshotMessage{
		Snapshot:    p,
		PublishedAt: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *SnapshotMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SnapshotMessageFromJSON creates a message from JSON bytes
func SnapshotMessageFromJSON(data []byte) (*SnapshotMessage, error) {
	var msg SnapshotMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
