package mcp

import (
	"context"
	"log/slog"

	"github.com/fitz/todokit/internal/toolset"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "todokit"
	ServerVersion = "v0.1.0"

	// SystemPromptName is the MCP prompt serving the rendered guidance text.
	SystemPromptName = "todo_system_prompt"
)

// Server wraps the MCP server with the todo toolset
type Server struct {
	mcpServer *mcp.Server
	toolset   *toolset.Toolset
	logger    *slog.Logger
}

// NewServer creates a new todokit MCP server. An empty name falls back to ServerName.
func NewServer(name string, ts *toolset.Toolset, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if name == "" {
		name = ServerName
	}
	if ts == nil {
		ts = toolset.New(nil, "", logger)
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    name,
			Version: ServerVersion,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		toolset:   ts,
		logger:    logger,
	}

	s.registerTools()
	s.registerPrompts()
	return s
}

// Toolset returns the toolset served by s.
func (s *Server) Toolset() *toolset.Toolset { return s.toolset }

// registerTools adds all MCP tools to the server
func (s *Server) registerTools() {
	s.toolset.Register(s.mcpServer)
}

// registerPrompts exposes the guidance text, rendered with the live list on every request.
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(
		&mcp.Prompt{
			Name:        SystemPromptName,
			Description: "Task management guidance for the todo tools, including the current todo list when one exists.",
		},
		s.handleSystemPrompt,
	)
}

func (s *Server) handleSystemPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	s.logger.Info("get_prompt", "name", SystemPromptName)
	return &mcp.GetPromptResult{
		Description: "Task management guidance",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: s.toolset.SystemPrompt()},
			},
		},
	}, nil
}

// Connect serves a single session over t, for in-process hosts.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcpServer.Connect(ctx, t, nil)
}

// Run starts the MCP server over stdio (for CLI usage)
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving todo tools", "toolset", s.toolset.ID())
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
