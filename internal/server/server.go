// Package server exposes the engine's finders as MCP tools so agent
// frontends can navigate the chat UI. The engine is unsynchronized by
// contract, so every handler serializes through one mutex.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"chatnav/internal/finder"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string // "stdio" or "streamable-http"
	Port      int
}

// Server wraps the MCP server around one engine.
type Server struct {
	engine   *finder.Engine
	engineMu sync.Mutex
	log      *zap.Logger
	mcp      *mcpserver.MCPServer
}

// New creates a server with all chatnav tools registered.
func New(engine *finder.Engine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{engine: engine, log: log}
	s.mcp = mcpserver.NewMCPServer("chatnav", "1.0.0")
	s.registerTools()
	return s
}

// Serve starts the server on the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("find",
			mcp.WithDescription("Locate a named region of the chat UI (server list, message list, message input, ...). Returns the region's name, role and states."),
			mcp.WithString("region", mcp.Description(fmt.Sprintf("Region to find, one of: %v", finder.RegionNames())), mcp.Required()),
		),
		s.handleFind,
	)

	s.mcp.AddTool(
		mcp.NewTool("areas",
			mcp.WithDescription("List the major regions of the chat UI in navigation order"),
		),
		s.handleAreas,
	)

	s.mcp.AddTool(
		mcp.NewTool("messages",
			mcp.WithDescription("Read the visible chat messages, newest last"),
			mcp.WithNumber("limit", mcp.Description("Max messages to return, counted from the end (0 = all)")),
		),
		s.handleMessages,
	)

	s.mcp.AddTool(
		mcp.NewTool("context",
			mcp.WithDescription("Summarize window context: server, channel, voice connection, mute state, unread badges, alerts"),
		),
		s.handleContext,
	)

	s.mcp.AddTool(
		mcp.NewTool("voice",
			mcp.WithDescription("Read voice connection details (latency, status, channel)"),
		),
		s.handleVoice,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Move input focus to a named region of the chat UI"),
			mcp.WithString("region", mcp.Description(fmt.Sprintf("Region to focus, one of: %v", finder.RegionNames())), mcp.Required()),
		),
		s.handleFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("dump",
			mcp.WithDescription("Dump the accessibility tree as indented text, for diagnosing why a region is not found"),
			mcp.WithNumber("depth", mcp.Description("Max depth to walk (default 8)")),
		),
		s.handleDump,
	)

	s.mcp.AddTool(
		mcp.NewTool("invalidate",
			mcp.WithDescription("Discard the cached tree snapshot so the next lookup rescans"),
		),
		s.handleInvalidate,
	)
}

// StringParam extracts a string argument with a default.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// IntParam extracts a numeric argument with a default.
func IntParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// lock acquires the engine for one tool call and reports how long the
// call waited, which surfaces contention on slow cold scans.
func (s *Server) lock(tool string) func() {
	start := time.Now()
	s.engineMu.Lock()
	if wait := time.Since(start); wait > time.Second {
		s.log.Debug("tool waited for engine", zap.String("tool", tool), zap.Duration("wait", wait))
	}
	return s.engineMu.Unlock
}
