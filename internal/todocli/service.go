// Package todocli is the standalone single-process todo tool. It shares
// nothing with the HTTP API: tasks live in memory for the lifetime of the
// process and ids are sequential starting from 1.
package todocli

import "strings"

// Task is a CLI task entry.
type Task struct {
	ID          int
	Description string
	IsComplete  bool
}

// Service manages in-memory task storage and CRUD operations.
type Service struct {
	tasks  []Task
	nextID int
}

// NewService returns a Service with empty storage.
func NewService() *Service {
	return &Service{nextID: 1}
}

// Add creates a new task with an auto-generated id.
func (s *Service) Add(description string) Task {
	t := Task{ID: s.nextID, Description: strings.TrimSpace(description)}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// All returns every task in insertion order. The slice is a copy so callers
// cannot mutate storage.
func (s *Service) All() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get finds a task by id; ok is false if absent.
func (s *Service) Get(id int) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Update replaces a task's description. Returns false if the id is unknown.
func (s *Service) Update(id int, description string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Description = strings.TrimSpace(description)
			return true
		}
	}
	return false
}

// Delete removes a task by id. Returns false if the id is unknown.
func (s *Service) Delete(id int) bool {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// MarkComplete sets a task's completion flag. Returns false if the id is unknown.
func (s *Service) MarkComplete(id int, complete bool) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].IsComplete = complete
			return true
		}
	}
	return false
}
