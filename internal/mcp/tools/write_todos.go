package tools

import (
	"context"
	"fmt"

	"github.com/fitz/todokit/internal/models"
	"github.com/fitz/todokit/internal/prompt"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WriteTodosInput defines the input for the write_todos tool.
type WriteTodosInput struct {
	Todos []models.TodoItem `json:"todos" jsonschema:"The complete todo list. Replaces any existing todos."`
}

// WriteTodosTool returns the tool definition for write_todos.
func WriteTodosTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "write_todos",
		Description: prompt.WriteTodosDescription,
		InputSchema: writeTodosSchema(),
	}
}

// writeTodosSchema infers the input schema and constrains status to the enum.
func writeTodosSchema() *jsonschema.Schema {
	schema, err := jsonschema.For[WriteTodosInput](nil)
	if err != nil {
		panic(fmt.Sprintf("write_todos schema: %v", err))
	}

	todos := schema.Properties["todos"]
	if todos == nil || todos.Items == nil || todos.Items.Properties["status"] == nil {
		panic("write_todos schema: missing todos[].status")
	}

	status := todos.Items.Properties["status"]
	status.Enum = make([]any, 0, len(models.ValidTodoStatuses))
	for _, s := range models.ValidTodoStatuses {
		status.Enum = append(status.Enum, string(s))
	}
	return schema
}

// WriteTodos validates every item and then replaces the stored list with them.
// If any item is invalid the stored list is left untouched.
func (h *Handler) WriteTodos(ctx context.Context, items []models.TodoItem) (string, error) {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return "", fmt.Errorf("todos[%d]: %w", i, err)
		}
	}

	todos := make([]models.Todo, 0, len(items))
	for _, item := range items {
		todos = append(todos, item.ToTodo())
	}
	h.Storage.Replace(todos)

	return FormatWriteSummary(todos), nil
}

// HandleWriteTodos handles the write_todos tool call.
func (h *Handler) HandleWriteTodos(ctx context.Context, req *mcp.CallToolRequest, input WriteTodosInput) (*mcp.CallToolResult, any, error) {
	h.Logger.Info("write_todos", "count", len(input.Todos))

	summary, err := h.WriteTodos(ctx, input.Todos)
	if err != nil {
		h.Logger.Error("write_todos failed", "error", err)
		return nil, nil, err
	}

	h.Logger.Info("write_todos complete", "count", len(input.Todos))
	return textResult(summary), nil, nil
}

// FormatWriteSummary renders the write_todos confirmation for todos just written.
func FormatWriteSummary(todos []models.Todo) string {
	return fmt.Sprintf("Updated %d todos: %s", len(todos), models.CountStatuses(todos))
}
