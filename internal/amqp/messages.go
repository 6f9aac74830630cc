package amqp

import (
	"encoding/json"
	"time"
)

const (
	KindExport = "export"
	KindDelete = "delete"
)

// TransactionEvent is the lightweight message published on every
// transaction mutation. It carries only id and version; the worker
// fetches the full row from storage, so a stale or duplicated message
// is harmless.
type TransactionEvent struct {
	Kind      string    `json:"kind"`
	ID        int64     `json:"id"`
	Version   int64     `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExportEvent(id, version int64) *TransactionEvent {
	return &TransactionEvent{
		Kind:      KindExport,
		ID:        id,
		Version:   version,
		Timestamp: time.Now(),
	}
}

func NewDeleteEvent(id int64) *TransactionEvent {
	return &TransactionEvent{
		Kind:      KindDelete,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
