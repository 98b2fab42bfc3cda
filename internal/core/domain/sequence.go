package domain

import (
	"sort"
	"time"
)

type EntryKind string

const (
	EntryKindTask    EntryKind = "task"
	EntryKindDivider EntryKind = "divider"
)

// SequenceRef is one member of a column's shared ordering: a task or a
// divider reduced to what the position ledger needs.
type SequenceRef struct {
	Kind      EntryKind
	ID        uint64
	Position  int
	CreatedAt time.Time
}

// PlanSequence re-assigns a dense 0..n-1 ordering over refs, preserving the
// existing relative order: stable by current position, ties broken by
// creation time, then kind, then id. The input slice is not modified.
func PlanSequence(refs []SequenceRef) []SequenceRef {
	planned := make([]SequenceRef, len(refs))
	copy(planned, refs)
	sort.SliceStable(planned, func(i, j int) bool {
		return lessRef(planned[i], planned[j])
	})
	for i := range planned {
		planned[i].Position = i
	}
	return planned
}

// InsertRefAt places ref before the member currently at index and returns the
// full re-planned dense sequence. Out-of-range indexes clamp to [0, len(refs)].
// refs must not already contain ref.
func InsertRefAt(refs []SequenceRef, ref SequenceRef, index int) []SequenceRef {
	planned := PlanSequence(refs)
	index = ClampIndex(index, len(planned))

	out := make([]SequenceRef, 0, len(planned)+1)
	out = append(out, planned[:index]...)
	out = append(out, ref)
	out = append(out, planned[index:]...)
	for i := range out {
		out[i].Position = i
	}
	return out
}

func ClampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n {
		return n
	}
	return index
}

func lessRef(a, b SequenceRef) bool {
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.ID < b.ID
}

// ColumnEntry is one element of a column read: either a task or a divider.
type ColumnEntry struct {
	Kind    EntryKind `json:"kind"`
	Task    *Task     `json:"task,omitempty"`
	Divider *Divider  `json:"divider,omitempty"`
}

func (e ColumnEntry) Position() int {
	if e.Kind == EntryKindDivider && e.Divider != nil {
		return e.Divider.Position
	}
	if e.Task != nil {
		return e.Task.Position
	}
	return 0
}

func (e ColumnEntry) ref() SequenceRef {
	if e.Kind == EntryKindDivider && e.Divider != nil {
		return SequenceRef{Kind: EntryKindDivider, ID: e.Divider.ID, Position: e.Divider.Position, CreatedAt: e.Divider.CreatedAt}
	}
	return SequenceRef{Kind: EntryKindTask, ID: e.Task.ID, Position: e.Task.Position, CreatedAt: e.Task.CreatedAt}
}

// SortColumnEntries orders a column read the same way PlanSequence orders the
// ledger, so reads and renumbering always agree.
func SortColumnEntries(entries []ColumnEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return lessRef(entries[i].ref(), entries[j].ref())
	})
}
