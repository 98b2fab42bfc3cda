package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

// memStore is an in-memory ports.Store with transactional rollback, so the
// services can be exercised without a database. It mimics the relational
// store's contract: tasks carry their items on read, deleting a routine
// nullifies references, and audit entries append in the same transaction.
type memStore struct {
	mu sync.Mutex

	tasks    map[uint64]domain.Task
	items    map[uint64]domain.Item
	dividers map[uint64]domain.Divider
	routines map[uint64]domain.Routine
	notes    map[uint64]domain.Note
	audit    []domain.AuditEntry
	nextID   uint64

	auditErr error
}

func newMemStore() *memStore {
	return &memStore{
		tasks:    map[uint64]domain.Task{},
		items:    map[uint64]domain.Item{},
		dividers: map[uint64]domain.Divider{},
		routines: map[uint64]domain.Routine{},
		notes:    map[uint64]domain.Note{},
	}
}

var _ ports.Store = (*memStore)(nil)

func (s *memStore) WithinTx(_ context.Context, fn func(ops ports.StoreOps) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.snapshot()
	if err := fn(&memOps{s: s}); err != nil {
		s.restore(backup)
		return err
	}
	return nil
}

type memSnapshot struct {
	tasks    map[uint64]domain.Task
	items    map[uint64]domain.Item
	dividers map[uint64]domain.Divider
	routines map[uint64]domain.Routine
	notes    map[uint64]domain.Note
	audit    []domain.AuditEntry
	nextID   uint64
}

func (s *memStore) snapshot() memSnapshot {
	backup := memSnapshot{
		tasks:    make(map[uint64]domain.Task, len(s.tasks)),
		items:    make(map[uint64]domain.Item, len(s.items)),
		dividers: make(map[uint64]domain.Divider, len(s.dividers)),
		routines: make(map[uint64]domain.Routine, len(s.routines)),
		notes:    make(map[uint64]domain.Note, len(s.notes)),
		audit:    append([]domain.AuditEntry(nil), s.audit...),
		nextID:   s.nextID,
	}
	for id, task := range s.tasks {
		backup.tasks[id] = copyTask(task)
	}
	for id, item := range s.items {
		backup.items[id] = item
	}
	for id, divider := range s.dividers {
		backup.dividers[id] = divider
	}
	for id, routine := range s.routines {
		backup.routines[id] = routine
	}
	for id, note := range s.notes {
		backup.notes[id] = note
	}
	return backup
}

func (s *memStore) restore(backup memSnapshot) {
	s.tasks = backup.tasks
	s.items = backup.items
	s.dividers = backup.dividers
	s.routines = backup.routines
	s.notes = backup.notes
	s.audit = backup.audit
	s.nextID = backup.nextID
}

func (s *memStore) allocID() uint64 {
	s.nextID++
	return s.nextID
}

// seedDivider plants a divider row directly, bypassing the services.
func (s *memStore) seedDivider(divider domain.Divider) domain.Divider {
	s.mu.Lock()
	defer s.mu.Unlock()
	if divider.ID == 0 {
		divider.ID = s.allocID()
	}
	s.dividers[divider.ID] = divider
	return divider
}

// seedTask plants a task row directly, positions and all.
func (s *memStore) seedTask(task domain.Task) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task.ID == 0 {
		task.ID = s.allocID()
	}
	task.Items = nil
	s.tasks[task.ID] = copyTask(task)
	return task
}

func (s *memStore) auditLog() []domain.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditEntry(nil), s.audit...)
}

func copyTask(task domain.Task) domain.Task {
	out := task
	out.Items = append([]domain.Item(nil), task.Items...)
	if len(out.Items) == 0 {
		out.Items = nil
	}
	out.ArchivedItems = append([]domain.ItemSnapshot(nil), task.ArchivedItems...)
	if len(out.ArchivedItems) == 0 {
		out.ArchivedItems = nil
	}
	return out
}

// memOps implements ports.StoreOps against the locked store.
type memOps struct {
	s *memStore
}

var _ ports.StoreOps = (*memOps)(nil)

func (o *memOps) GetTask(_ context.Context, id uint64) (domain.Task, error) {
	task, ok := o.s.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	out := copyTask(task)
	out.Items = o.taskItems(id)
	return out, nil
}

func (o *memOps) InsertTask(_ context.Context, task domain.Task) (uint64, error) {
	task.ID = o.s.allocID()
	task.Items = nil
	o.s.tasks[task.ID] = copyTask(task)
	return task.ID, nil
}

func (o *memOps) UpdateTask(_ context.Context, task domain.Task) error {
	if _, ok := o.s.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	// The row does not carry live items; those live in their own table.
	task.Items = nil
	o.s.tasks[task.ID] = copyTask(task)
	return nil
}

func (o *memOps) ListColumnRefs(_ context.Context, column domain.Column) ([]domain.SequenceRef, error) {
	var refs []domain.SequenceRef
	for _, task := range o.s.tasks {
		if task.Column != column || task.IsArchived {
			continue
		}
		refs = append(refs, domain.SequenceRef{
			Kind:      domain.EntryKindTask,
			ID:        task.ID,
			Position:  task.Position,
			CreatedAt: task.CreatedAt,
		})
	}
	for _, divider := range o.s.dividers {
		if divider.Column != column {
			continue
		}
		refs = append(refs, domain.SequenceRef{
			Kind:      domain.EntryKindDivider,
			ID:        divider.ID,
			Position:  divider.Position,
			CreatedAt: divider.CreatedAt,
		})
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Position != refs[j].Position {
			return refs[i].Position < refs[j].Position
		}
		return refs[i].ID < refs[j].ID
	})
	return refs, nil
}

func (o *memOps) ApplyPositions(_ context.Context, refs []domain.SequenceRef) error {
	for _, ref := range refs {
		switch ref.Kind {
		case domain.EntryKindTask:
			task, ok := o.s.tasks[ref.ID]
			if !ok {
				return domain.ErrTaskNotFound
			}
			task.Position = ref.Position
			o.s.tasks[ref.ID] = task
		case domain.EntryKindDivider:
			divider, ok := o.s.dividers[ref.ID]
			if !ok {
				return domain.ErrDividerNotFound
			}
			divider.Position = ref.Position
			o.s.dividers[ref.ID] = divider
		}
	}
	return nil
}

func (o *memOps) ListColumn(_ context.Context, column domain.Column) ([]domain.ColumnEntry, error) {
	var entries []domain.ColumnEntry
	for _, task := range o.s.tasks {
		if task.Column != column || task.IsArchived {
			continue
		}
		out := copyTask(task)
		out.Items = o.taskItems(task.ID)
		entries = append(entries, domain.ColumnEntry{Kind: domain.EntryKindTask, Task: &out})
	}
	for _, divider := range o.s.dividers {
		if divider.Column != column {
			continue
		}
		d := divider
		entries = append(entries, domain.ColumnEntry{Kind: domain.EntryKindDivider, Divider: &d})
	}
	domain.SortColumnEntries(entries)
	return entries, nil
}

func (o *memOps) ListArchived(_ context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	for _, task := range o.s.tasks {
		if !task.IsArchived {
			continue
		}
		out := copyTask(task)
		out.Items = o.taskItems(task.ID)
		tasks = append(tasks, out)
	}
	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		at, bt := archivedAt(a), archivedAt(b)
		if !at.Equal(bt) {
			return at.After(bt)
		}
		return a.ID > b.ID
	})
	return tasks, nil
}

func archivedAt(task domain.Task) time.Time {
	if task.ArchivedAt != nil {
		return *task.ArchivedAt
	}
	return time.Time{}
}

func (o *memOps) taskItems(taskID uint64) []domain.Item {
	var items []domain.Item
	for _, item := range o.s.items {
		if item.TaskID == taskID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ID < items[j].ID
	})
	return items
}

func (o *memOps) GetItem(_ context.Context, taskID, itemID uint64) (domain.Item, error) {
	item, ok := o.s.items[itemID]
	if !ok || item.TaskID != taskID {
		return domain.Item{}, domain.ErrItemNotFound
	}
	return item, nil
}

func (o *memOps) InsertItem(_ context.Context, item domain.Item) (uint64, error) {
	item.ID = o.s.allocID()
	o.s.items[item.ID] = item
	return item.ID, nil
}

func (o *memOps) UpdateItem(_ context.Context, item domain.Item) error {
	if _, ok := o.s.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	o.s.items[item.ID] = item
	return nil
}

func (o *memOps) DeleteItem(_ context.Context, taskID, itemID uint64) error {
	item, ok := o.s.items[itemID]
	if !ok || item.TaskID != taskID {
		return domain.ErrItemNotFound
	}
	delete(o.s.items, itemID)
	return nil
}

func (o *memOps) ListItems(_ context.Context, taskID uint64) ([]domain.Item, error) {
	return o.taskItems(taskID), nil
}

func (o *memOps) GetDivider(_ context.Context, id uint64) (domain.Divider, error) {
	divider, ok := o.s.dividers[id]
	if !ok {
		return domain.Divider{}, domain.ErrDividerNotFound
	}
	return divider, nil
}

func (o *memOps) UpdateDivider(_ context.Context, divider domain.Divider) error {
	if _, ok := o.s.dividers[divider.ID]; !ok {
		return domain.ErrDividerNotFound
	}
	o.s.dividers[divider.ID] = divider
	return nil
}

func (o *memOps) AppendAudit(_ context.Context, entry domain.AuditEntry) (uint64, error) {
	if o.s.auditErr != nil {
		return 0, o.s.auditErr
	}
	entry.ID = o.s.allocID()
	o.s.audit = append(o.s.audit, entry)
	return entry.ID, nil
}

func (o *memOps) ListAudit(_ context.Context, filter ports.AuditFilter) ([]domain.AuditEntry, error) {
	var entries []domain.AuditEntry
	for i := len(o.s.audit) - 1; i >= 0; i-- {
		entry := o.s.audit[i]
		if filter.EntityType != "" && entry.EntityType != filter.EntityType {
			continue
		}
		if filter.EntityID != 0 && entry.EntityID != filter.EntityID {
			continue
		}
		entries = append(entries, entry)
		if filter.Limit > 0 && len(entries) == filter.Limit {
			break
		}
	}
	return entries, nil
}

func (o *memOps) InsertRoutine(_ context.Context, routine domain.Routine) (uint64, error) {
	routine.ID = o.s.allocID()
	o.s.routines[routine.ID] = routine
	return routine.ID, nil
}

func (o *memOps) GetRoutine(_ context.Context, id uint64) (domain.Routine, error) {
	routine, ok := o.s.routines[id]
	if !ok {
		return domain.Routine{}, domain.ErrRoutineNotFound
	}
	return routine, nil
}

// DeleteRoutine clears referencing foreign keys the way the schema's
// ON DELETE SET NULL does.
func (o *memOps) DeleteRoutine(_ context.Context, id uint64) error {
	if _, ok := o.s.routines[id]; !ok {
		return domain.ErrRoutineNotFound
	}
	delete(o.s.routines, id)
	for taskID, task := range o.s.tasks {
		if task.RoutineID != nil && *task.RoutineID == id {
			task.RoutineID = nil
			o.s.tasks[taskID] = task
		}
	}
	for noteID, note := range o.s.notes {
		if note.RoutineID != nil && *note.RoutineID == id {
			note.RoutineID = nil
			o.s.notes[noteID] = note
		}
	}
	return nil
}

func (o *memOps) ListRoutines(_ context.Context) ([]domain.Routine, error) {
	var routines []domain.Routine
	for _, routine := range o.s.routines {
		routines = append(routines, routine)
	}
	sort.Slice(routines, func(i, j int) bool { return routines[i].ID < routines[j].ID })
	return routines, nil
}

func (o *memOps) InsertNote(_ context.Context, note domain.Note) (uint64, error) {
	note.ID = o.s.allocID()
	o.s.notes[note.ID] = note
	return note.ID, nil
}

func (o *memOps) GetNote(_ context.Context, id uint64) (domain.Note, error) {
	note, ok := o.s.notes[id]
	if !ok {
		return domain.Note{}, domain.ErrNoteNotFound
	}
	return note, nil
}

func (o *memOps) UpdateNote(_ context.Context, note domain.Note) error {
	if _, ok := o.s.notes[note.ID]; !ok {
		return domain.ErrNoteNotFound
	}
	o.s.notes[note.ID] = note
	return nil
}

func (o *memOps) DeleteNote(_ context.Context, id uint64) error {
	if _, ok := o.s.notes[id]; !ok {
		return domain.ErrNoteNotFound
	}
	delete(o.s.notes, id)
	return nil
}

func (o *memOps) ListNotes(_ context.Context) ([]domain.Note, error) {
	var notes []domain.Note
	for _, note := range o.s.notes {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}
