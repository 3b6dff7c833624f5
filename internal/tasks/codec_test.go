package tasks

import (
	"testing"
	"time"
)

func TestCodecRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 1, 5, 12, 30, 0, 123456789, time.UTC)
	in := []Task{
		{ID: "a", Title: "one", Description: "first", DueDate: "2025-01-10", Status: StatusPending, CreatedAt: createdAt},
		{ID: "b", Title: "two", DueDate: "2025-01-11", Status: StatusCompleted, CreatedAt: createdAt.Add(time.Hour)},
	}

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("length: got %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Title != in[i].Title ||
			out[i].Description != in[i].Description || out[i].DueDate != in[i].DueDate ||
			out[i].Status != in[i].Status {
			t.Errorf("task %d mismatch: %+v vs %+v", i, out[i], in[i])
		}
		if !out[i].CreatedAt.Equal(in[i].CreatedAt) {
			t.Errorf("task %d CreatedAt: got %v, want %v", i, out[i].CreatedAt, in[i].CreatedAt)
		}
	}
}

func TestCodecRoundTripEmpty(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty collection, got %v", out)
	}
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"object instead of array", `{"id":"a"}`},
		{"missing id", `[{"title":"x","status":"pending","createdAt":"2025-01-05T12:00:00Z"}]`},
		{"bad status", `[{"id":"a","status":"done","createdAt":"2025-01-05T12:00:00Z"}]`},
		{"bad createdAt", `[{"id":"a","status":"pending","createdAt":"yesterday"}]`},
		{"duplicate id", `[{"id":"a","status":"pending","createdAt":"2025-01-05T12:00:00Z"},{"id":"a","status":"pending","createdAt":"2025-01-05T12:00:00Z"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode([]byte(tc.data)); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}
