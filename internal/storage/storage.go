// Package storage holds the current todo list for a session.
package storage

import (
	"slices"

	"github.com/fitz/todokit/internal/models"
)

// Storage is the minimal capability the todo tools read and write through.
// Implementations may be persistent or shared; the tools only rely on these
// two methods. Callers are expected to serialize access.
type Storage interface {
	// Get returns the current todos in display order.
	Get() []models.Todo
	// Replace substitutes the whole list. There is no merge with prior state.
	Replace(todos []models.Todo)
}

// Memory is the default in-memory Storage. The zero value is an empty list.
type Memory struct {
	todos []models.Todo
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{todos: []models.Todo{}}
}

// Get returns a copy of the held todos.
func (m *Memory) Get() []models.Todo {
	if m == nil || m.todos == nil {
		return []models.Todo{}
	}
	return slices.Clone(m.todos)
}

// Replace stores a copy of todos.
func (m *Memory) Replace(todos []models.Todo) {
	m.todos = slices.Clone(todos)
	if m.todos == nil {
		m.todos = []models.Todo{}
	}
}

var _ Storage = (*Memory)(nil)
