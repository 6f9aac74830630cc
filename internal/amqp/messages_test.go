package amqp

import "testing"

func TestTransactionEventRoundTrip(t *testing.T) {
	event := NewExportEvent(42, 3)
	if event.Kind != KindExport || event.ID != 42 || event.Version != 3 {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("timestamp must be set")
	}

	data, err := event.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := TransactionEventFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Kind != event.Kind || got.ID != event.ID || got.Version != event.Version {
		t.Fatalf("round trip lost data: %+v", got)
	}
}

func TestNewDeleteEvent(t *testing.T) {
	event := NewDeleteEvent(7)
	if event.Kind != KindDelete || event.ID != 7 || event.Version != 0 {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestTransactionEventFromJSONInvalid(t *testing.T) {
	if _, err := TransactionEventFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
