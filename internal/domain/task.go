package domain

import "time"

// Task is the domain entity for a todo item.
// Does not depend on Gin, Postgres or Redis.
// OwnerID is set at creation and never changes; every read and write
// of a task goes through operations scoped to that owner.
type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description *string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskPatch carries a partial update: nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}
