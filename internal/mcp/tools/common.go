package tools

import (
	"log/slog"

	"github.com/fitz/todokit/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler provides the dependencies needed by tool handlers.
type Handler struct {
	Storage storage.Storage
	Logger  *slog.Logger
}

// NewHandler creates a new Handler with the given dependencies.
// A nil store gets a fresh in-memory list owned by this handler only.
func NewHandler(store storage.Storage, logger *slog.Logger) *Handler {
	if store == nil {
		store = storage.NewMemory()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Storage: store,
		Logger:  logger,
	}
}

// textResult wraps s as a single text content block.
func textResult(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: s}},
	}
}
