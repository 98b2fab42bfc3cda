package domain

import "time"

// Divider is a non-task marker sharing the position space of its column.
// Only the "today" column carries dividers; they delimit time-of-day groups.
type Divider struct {
	ID         uint64    `json:"id"`
	Column     Column    `json:"column"`
	LabelAbove string    `json:"label_above"`
	LabelBelow string    `json:"label_below"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}
