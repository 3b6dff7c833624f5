package ws

import "encoding/json"

// FrameType represents the type of WebSocket frame.
type FrameType string

const (
	FrameTypeEvent FrameType = "event"
)

// Event names pushed to connected clients.
const (
	EventTasksChanged = "tasks.changed"
)

// Frame is the WebSocket protocol envelope.
type Frame struct {
	Type    FrameType       `json:"type"`
	Event   string          `json:"event,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEventFrame creates a Frame for broadcasting an event.
func NewEventFrame(event string, payload any) (Frame, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Type:    FrameTypeEvent,
		Event:   event,
		Payload: data,
	}, nil
}

// MarshalFrame serializes a Frame to JSON bytes.
func MarshalFrame(f Frame) ([]byte, error) {
	return json.Marshal(f)
}

// UnmarshalFrame deserializes JSON bytes into a Frame.
func UnmarshalFrame(data []byte) (Frame, error) {
	var f Frame
	err := json.Unmarshal(data, &f)
	return f, err
}
