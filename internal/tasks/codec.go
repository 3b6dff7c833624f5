package tasks

import (
	"encoding/json"
	"fmt"
	"time"
)

// record is the persisted wire form of a Task. CreatedAt travels as an
// RFC 3339 string so the collection round-trips through any byte slot.
type record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// Encode serializes the full collection for the persistence slot.
func Encode(list []Task) ([]byte, error) {
	records := make([]record, len(list))
	for i, t := range list {
		records[i] = record{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Status:      string(t.Status),
			CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
		}
	}
	return json.Marshal(records)
}

// Decode maps a persisted payload back into tasks. The whole payload is
// rejected if it is not an array or if any record fails validation; a partially
// trusted collection is worse than an empty one.
func Decode(data []byte) ([]Task, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}

	list := make([]Task, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("record %d: empty id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %s", i, r.ID)
		}
		seen[r.ID] = struct{}{}

		status, err := ParseStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("record %d: parse createdAt: %w", i, err)
		}

		list = append(list, Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			DueDate:     r.DueDate,
			Status:      status,
			CreatedAt:   createdAt,
		})
	}
	return list, nil
}
