// Package tasks owns the canonical in-memory task collection and its
// derived read views.
package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a task. Transitions are
// unrestricted: any status is reachable from any other.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ParseStatus validates a raw status string against the closed enumeration.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Task is the single work-item entity tracked by the system.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"` // calendar date, YYYY-MM-DD
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GenerateTaskID creates a unique task identifier.
func GenerateTaskID() string {
	return uuid.NewString()
}
