// Package toolset binds the read_todos and write_todos tools to one storage.
package toolset

import (
	"context"
	"log/slog"

	"github.com/fitz/todokit/internal/mcp/tools"
	"github.com/fitz/todokit/internal/models"
	"github.com/fitz/todokit/internal/prompt"
	"github.com/fitz/todokit/internal/storage"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Toolset is a read/write tool pair bound to a single Storage.
type Toolset struct {
	id      string
	handler *tools.Handler
}

// New creates a toolset reading and writing through store.
// A nil store gets a fresh in-memory list, so toolsets created without one
// never share state. An empty id is replaced with a generated one.
func New(store storage.Storage, id string, logger *slog.Logger) *Toolset {
	if id == "" {
		id = "todo-" + uuid.NewString()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Toolset{
		id:      id,
		handler: tools.NewHandler(store, logger.With("toolset", id)),
	}
}

// ID returns the toolset identifier.
func (t *Toolset) ID() string { return t.id }

// Storage returns the storage the tools are bound to.
func (t *Toolset) Storage() storage.Storage { return t.handler.Storage }

// Tools returns the tool definitions in registration order.
func (t *Toolset) Tools() []*mcp.Tool {
	return []*mcp.Tool{tools.ReadTodosTool(), tools.WriteTodosTool()}
}

// ReadTodos runs the read_todos operation.
func (t *Toolset) ReadTodos(ctx context.Context) string {
	return t.handler.ReadTodos(ctx)
}

// WriteTodos runs the write_todos operation.
func (t *Toolset) WriteTodos(ctx context.Context, items []models.TodoItem) (string, error) {
	return t.handler.WriteTodos(ctx, items)
}

// SystemPrompt renders the guidance text with the bound storage's todos.
func (t *Toolset) SystemPrompt() string {
	return prompt.Render(t.handler.Storage)
}

// Register adds both tools to server.
func (t *Toolset) Register(server *mcp.Server) {
	mcp.AddTool(server, tools.ReadTodosTool(), t.handler.HandleReadTodos)
	mcp.AddTool(server, tools.WriteTodosTool(), t.handler.HandleWriteTodos)
}
