package models

import "time"

// Todo represents a single tracked item
type Todo struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID returns the todo ID
func (t *Todo) GetID() int64 {
	return t.ID
}

// IsPending reports whether the todo has not been completed yet
func (t *Todo) IsPending() bool {
	return !t.Completed
}
