package tasks

import (
	"log/slog"
	"sync"
	"time"

	"github.com/taskmasterhq/taskmaster/internal/storage"
)

// Observer receives a snapshot of the full collection after every mutation.
type Observer func(snapshot []Task)

// Store is the exclusive owner of the task collection. All reads are served
// from memory; the persistence slot is a best-effort mirror written after
// every mutation by a dispatcher goroutine, never inline with the caller.
type Store struct {
	mu      sync.RWMutex
	slot    storage.Slot
	tasks   []Task
	loading bool
	errMsg  string

	subMu   sync.Mutex
	subs    map[int]Observer
	nextSub int

	changes   chan []Task
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewStore creates a store mirrored into slot. A nil slot keeps the
// collection purely in memory.
func NewStore(slot storage.Slot) *Store {
	s := &Store{
		slot:    slot,
		subs:    make(map[int]Observer),
		changes: make(chan []Task, 1),
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.dispatch()
	return s
}

// Load seeds the collection from the persistence slot. It fails soft: an
// absent, unreadable, or malformed payload yields an empty collection and
// never an error to the caller.
func (s *Store) Load() {
	if s.slot == nil {
		return
	}

	data, err := s.slot.Load()
	if err != nil {
		slog.Warn("load tasks", "error", err)
		return
	}
	if data == nil {
		return
	}

	list, err := Decode(data)
	if err != nil {
		slog.Warn("discarding malformed task payload", "error", err)
		return
	}

	s.mu.Lock()
	s.tasks = list
	s.mu.Unlock()
}

// Close stops the dispatcher after flushing any pending write.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
	s.wg.Wait()
}

// AddInput is the creation payload supplied by callers.
type AddInput struct {
	Title       string
	Description string
	DueDate     string
}

// Add creates a task with a fresh id, pending status, and a creation
// timestamp, and appends it to the collection.
func (s *Store) Add(in AddInput) Task {
	s.mu.Lock()
	t := Task{
		ID:          GenerateTaskID(),
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
	s.tasks = append(s.tasks, t)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return t
}

// UpdateInput carries a task id plus any subset of mutable fields. Nil
// pointers leave the corresponding field untouched.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *string
	Status      *Status
}

// Update applies the supplied subset to the matching task. An unknown id is
// a no-op. Id and createdAt are never altered, whatever the payload claims.
func (s *Store) Update(in UpdateInput) {
	s.mu.Lock()
	idx := s.indexLocked(in.ID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	t := &s.tasks[idx]
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.DueDate != nil {
		t.DueDate = *in.DueDate
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// SetStatus overwrites only the status of the matching task. An unknown id
// is a no-op. Quick toggle controls use this instead of Update.
func (s *Store) SetStatus(id string, status Status) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.tasks[idx].Status = status
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Delete removes the matching task. An unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Replace swaps in a whole new collection, used by bulk import. The usual
// mutation contract applies: views see the new collection immediately and
// the slot is rewritten by the dispatcher.
func (s *Store) Replace(list []Task) {
	s.mu.Lock()
	s.tasks = append([]Task(nil), list...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// SetLoading sets the caller-driven in-flight flag. The store never
// originates this value itself.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Loading reports the in-flight flag.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError records a caller-supplied failure message.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

// ClearError resets the failure message.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// Err returns the current failure message, empty when none is set.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Subscribe registers an observer notified with a snapshot after every
// mutation. It returns an unsubscribe function.
func (s *Store) Subscribe(fn Observer) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []Task {
	return append([]Task(nil), s.tasks...)
}

// publish hands a snapshot to the dispatcher. The channel holds one pending
// snapshot; when writes fall behind, stale snapshots are replaced so only the
// latest collection state reaches the slot.
func (s *Store) publish(snap []Task) {
	for {
		select {
		case s.changes <- snap:
			return
		default:
			select {
			case <-s.changes:
			default:
			}
		}
	}
}

func (s *Store) dispatch() {
	defer s.wg.Done()
	for {
		select {
		case snap := <-s.changes:
			s.persist(snap)
			s.fanout(snap)
		case <-s.done:
			// Flush the last pending snapshot so a mutation issued just
			// before shutdown still reaches the slot.
			select {
			case snap := <-s.changes:
				s.persist(snap)
				s.fanout(snap)
			default:
			}
			return
		}
	}
}

// persist mirrors a snapshot into the slot. Failures are logged and never
// surfaced to the mutating caller.
func (s *Store) persist(snap []Task) {
	if s.slot == nil {
		return
	}
	data, err := Encode(snap)
	if err != nil {
		slog.Warn("encode tasks", "error", err)
		return
	}
	if err := s.slot.Save(data); err != nil {
		slog.Warn("persist tasks", "error", err)
	}
}

func (s *Store) fanout(snap []Task) {
	s.subMu.Lock()
	observers := make([]Observer, 0, len(s.subs))
	for _, fn := range s.subs {
		observers = append(observers, fn)
	}
	s.subMu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}
