package dto

import "encoding/json"

type AuditEntry struct {
	ID            uint64          `json:"id"`
	Actor         string          `json:"actor"`
	Action        string          `json:"action"`
	EntityType    string          `json:"entity_type"`
	EntityID      uint64          `json:"entity_id"`
	PreviousState json.RawMessage `json:"previous_state,omitempty"`
	NewState      json.RawMessage `json:"new_state,omitempty"`
	CreatedAt     string          `json:"created_at"`
}
