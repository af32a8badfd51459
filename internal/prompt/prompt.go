// Package prompt holds the guidance text shown to the agent for the todo tools.
package prompt

import (
	"strings"

	"github.com/fitz/todokit/internal/storage"
)

// WriteTodosDescription is the write_todos tool description.
const WriteTodosDescription = `
Use this tool to create and manage a structured task list for your current session.
This helps you track progress, organize complex tasks, and demonstrate thoroughness.

## When to Use This Tool
Use this tool in these scenarios:
1. Complex multi-step tasks - When a task requires 3 or more distinct steps
2. Non-trivial tasks - Tasks that require careful planning
3. User provides multiple tasks - When users provide a list of things to be done
4. After receiving new instructions - Capture user requirements as todos
5. When starting a task - Mark it as in_progress BEFORE beginning work
6. After completing a task - Mark it as completed immediately

## Task States
- pending: Task not yet started
- in_progress: Currently working on (limit to ONE at a time)
- completed: Task finished successfully

## Important
- Exactly ONE task should be in_progress at any time
- Mark tasks complete IMMEDIATELY after finishing (don't batch completions)
- If you encounter blockers, keep the task as in_progress and create a new task for the blocker
`

// SystemPrompt is the static task-management section of the system prompt.
const SystemPrompt = `
## Task Management

You have access to the ` + "`write_todos`" + ` tool to track your tasks.
Use it frequently to:
- Plan complex tasks before starting
- Show progress to the user
- Keep track of what's done and what's pending

When working on tasks:
1. Break down complex tasks into smaller steps
2. Mark exactly one task as in_progress at a time
3. Mark tasks as completed immediately after finishing
`

// ReadTodosDescription is the read_todos tool description.
const ReadTodosDescription = `
Read the current todo list state.

Use this tool to check the current status of all tasks before:
- Deciding what to work on next
- Updating task statuses
- Reporting progress to the user

Returns all todos with their current status (pending, in_progress, completed).
`

// CurrentTodosHeader introduces the live list appended by Render.
const CurrentTodosHeader = "## Current Todos"

// Render returns SystemPrompt, followed by the current todos when store holds any.
func Render(store storage.Storage) string {
	if store == nil {
		return SystemPrompt
	}
	todos := store.Get()
	if len(todos) == 0 {
		return SystemPrompt
	}

	lines := make([]string, 0, len(todos)+3)
	lines = append(lines, SystemPrompt, "", CurrentTodosHeader)
	for _, t := range todos {
		lines = append(lines, "- "+t.Status.Glyph()+" "+t.Content)
	}
	return strings.Join(lines, "\n")
}
