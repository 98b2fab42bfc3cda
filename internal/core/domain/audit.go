package domain

import (
	"encoding/json"
	"time"
)

type Actor string

const (
	ActorUser  Actor = "user"
	ActorAgent Actor = "agent"
)

type EntityType string

const (
	EntityTask    EntityType = "task"
	EntityDivider EntityType = "divider"
	EntityRoutine EntityType = "routine"
	EntityNote    EntityType = "note"
)

const (
	ActionCreateTask    = "create_task"
	ActionUpdateTask    = "update_task"
	ActionMoveTask      = "move_task"
	ActionArchiveTask   = "archive_task"
	ActionRestoreTask   = "restore_task"
	ActionCompleteTask  = "complete_task"
	ActionAddItem       = "add_item"
	ActionUpdateItem    = "update_item"
	ActionDeleteItem    = "delete_item"
	ActionMoveDivider   = "move_divider"
	ActionCreateRoutine = "create_routine"
	ActionDeleteRoutine = "delete_routine"
	ActionCreateNote    = "create_note"
	ActionUpdateNote    = "update_note"
	ActionDeleteNote    = "delete_note"
)

// AuditEntry is one append-only record of a mutating operation. Entries are
// written in the same transaction as the mutation they describe and are never
// updated or deleted.
type AuditEntry struct {
	ID            uint64          `json:"id"`
	Actor         Actor           `json:"actor"`
	Action        string          `json:"action"`
	EntityType    EntityType      `json:"entity_type"`
	EntityID      uint64          `json:"entity_id"`
	PreviousState json.RawMessage `json:"previous_state,omitempty"`
	NewState      json.RawMessage `json:"new_state,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
