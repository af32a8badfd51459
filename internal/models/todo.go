package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidTodo is wrapped by every todo validation failure.
var ErrInvalidTodo = errors.New("invalid todo")

// TodoStatus defines the status of a todo
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusCompleted  TodoStatus = "completed"
)

// ValidTodoStatuses contains all valid todo status values, in schema order.
var ValidTodoStatuses = []TodoStatus{
	TodoStatusPending,
	TodoStatusInProgress,
	TodoStatusCompleted,
}

// IsValidTodoStatus checks if a status string is a valid TodoStatus
func IsValidTodoStatus(s string) bool {
	for _, status := range ValidTodoStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// ParseTodoStatus converts s into a TodoStatus, rejecting anything outside the enum.
func ParseTodoStatus(s string) (TodoStatus, error) {
	if !IsValidTodoStatus(s) {
		return "", fmt.Errorf("%w: status %q (must be one of: pending, in_progress, completed)", ErrInvalidTodo, s)
	}
	return TodoStatus(s), nil
}

// UnmarshalJSON rejects statuses outside the enum at decode time.
func (s *TodoStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: status must be a string: %v", ErrInvalidTodo, err)
	}
	status, err := ParseTodoStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Glyph returns the checkbox shown for the status. Unknown values render as pending.
func (s TodoStatus) Glyph() string {
	switch s {
	case TodoStatusInProgress:
		return "[*]"
	case TodoStatusCompleted:
		return "[x]"
	default:
		return "[ ]"
	}
}

// Todo is a stored todo record.
// Content is imperative ("Run tests"); ActiveForm is shown while the todo is
// being worked on ("Running tests").
type Todo struct {
	Content    string     `json:"content"`
	Status     TodoStatus `json:"status"`
	ActiveForm string     `json:"active_form"`
}

// NewTodo builds a validated Todo.
func NewTodo(content, status, activeForm string) (Todo, error) {
	st, err := ParseTodoStatus(status)
	if err != nil {
		return Todo{}, err
	}
	return Todo{Content: content, Status: st, ActiveForm: activeForm}, nil
}

// Validate checks the status against the enum.
func (t Todo) Validate() error {
	_, err := ParseTodoStatus(string(t.Status))
	return err
}

// TodoItem is the write_todos input form of a Todo. The jsonschema tags are
// surfaced to the calling model as field descriptions.
type TodoItem struct {
	Content    string     `json:"content" jsonschema:"The task description in imperative form (e.g., 'Implement feature X')"`
	Status     TodoStatus `json:"status" jsonschema:"Task status: pending, in_progress, or completed"`
	ActiveForm string     `json:"active_form" jsonschema:"Present continuous form during execution (e.g., 'Implementing feature X')"`
}

// NewTodoItem builds a validated TodoItem.
func NewTodoItem(content, status, activeForm string) (TodoItem, error) {
	t, err := NewTodo(content, status, activeForm)
	if err != nil {
		return TodoItem{}, err
	}
	return TodoItem(t), nil
}

// Validate checks the status against the enum.
func (i TodoItem) Validate() error {
	return Todo(i).Validate()
}

// ToTodo copies the item into its stored form.
func (i TodoItem) ToTodo() Todo {
	return Todo{Content: i.Content, Status: i.Status, ActiveForm: i.ActiveForm}
}

// StatusCounts tallies todos by status.
type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// CountStatuses tallies the three known statuses; anything else is skipped.
func CountStatuses(todos []Todo) StatusCounts {
	var c StatusCounts
	for _, t := range todos {
		switch t.Status {
		case TodoStatusPending:
			c.Pending++
		case TodoStatusInProgress:
			c.InProgress++
		case TodoStatusCompleted:
			c.Completed++
		}
	}
	return c
}

// String renders the counts as "N completed, N in progress, N pending".
func (c StatusCounts) String() string {
	return fmt.Sprintf("%d completed, %d in progress, %d pending", c.Completed, c.InProgress, c.Pending)
}
