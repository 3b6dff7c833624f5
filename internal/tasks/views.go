package tasks

import "sort"

// All returns the full collection ordered by creation time descending, most
// recent first. Ties keep no guaranteed relative order.
func (s *Store) All() []Task {
	s.mu.RLock()
	out := s.snapshotLocked()
	s.mu.RUnlock()

	sortByCreationDesc(out)
	return out
}

// ByStatus returns the subset with the given status, newest first.
func (s *Store) ByStatus(status Status) []Task {
	s.mu.RLock()
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	s.mu.RUnlock()

	sortByCreationDesc(out)
	return out
}

// Pending returns the pending partition, newest first.
func (s *Store) Pending() []Task { return s.ByStatus(StatusPending) }

// InProgress returns the in-progress partition, newest first.
func (s *Store) InProgress() []Task { return s.ByStatus(StatusInProgress) }

// Completed returns the completed partition, newest first.
func (s *Store) Completed() []Task { return s.ByStatus(StatusCompleted) }

// Get looks up a single task by id. The second return value is false when no
// task matches.
func (s *Store) Get(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return Task{}, false
	}
	return s.tasks[idx], true
}

// Len reports the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func sortByCreationDesc(list []Task) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
