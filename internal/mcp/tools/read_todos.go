package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitz/todokit/internal/models"
	"github.com/fitz/todokit/internal/prompt"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NoTodosMessage is returned by read_todos when the list is empty.
const NoTodosMessage = "No todos in the list. Use write_todos to create tasks."

// ReadTodosInput defines the input for the read_todos tool. It takes no arguments.
type ReadTodosInput struct{}

// ReadTodosTool returns the tool definition for read_todos.
func ReadTodosTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "read_todos",
		Description: prompt.ReadTodosDescription,
	}
}

// ReadTodos renders the current list as a numbered report with a status summary.
func (h *Handler) ReadTodos(ctx context.Context) string {
	return FormatTodoList(h.Storage.Get())
}

// HandleReadTodos handles the read_todos tool call.
func (h *Handler) HandleReadTodos(ctx context.Context, req *mcp.CallToolRequest, input ReadTodosInput) (*mcp.CallToolResult, any, error) {
	h.Logger.Info("read_todos")

	report := h.ReadTodos(ctx)

	h.Logger.Info("read_todos complete", "count", len(h.Storage.Get()))
	return textResult(report), nil, nil
}

// FormatTodoList renders todos the way read_todos reports them.
func FormatTodoList(todos []models.Todo) string {
	if len(todos) == 0 {
		return NoTodosMessage
	}

	var b strings.Builder
	b.WriteString("Current todos:")
	for i, t := range todos {
		fmt.Fprintf(&b, "\n%d. %s %s", i+1, t.Status.Glyph(), t.Content)
	}
	b.WriteString("\n\nSummary: ")
	b.WriteString(models.CountStatuses(todos).String())
	return b.String()
}
