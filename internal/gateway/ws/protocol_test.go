package ws

import (
	"encoding/json"
	"testing"
)

func TestEventFrameRoundTrip(t *testing.T) {
	payload := []map[string]string{{"id": "a", "title": "one"}}
	frame, err := NewEventFrame(EventTasksChanged, payload)
	if err != nil {
		t.Fatalf("NewEventFrame: %v", err)
	}

	data, err := MarshalFrame(frame)
	if err != nil {
		t.Fatalf("MarshalFrame: %v", err)
	}

	got, err := UnmarshalFrame(data)
	if err != nil {
		t.Fatalf("UnmarshalFrame: %v", err)
	}
	if got.Type != FrameTypeEvent {
		t.Errorf("Type: got %q", got.Type)
	}
	if got.Event != EventTasksChanged {
		t.Errorf("Event: got %q", got.Event)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(got.Payload, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["title"] != "one" {
		t.Errorf("payload mismatch: %v", decoded)
	}
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	h := NewHub()
	// No clients connected; broadcast must not panic or block.
	h.Broadcast(EventTasksChanged, []string{})
	if h.ClientCount() != 0 {
		t.Errorf("ClientCount: got %d", h.ClientCount())
	}
}
