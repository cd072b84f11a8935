package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"chatnav/internal/dump"
	"chatnav/internal/element"
	"chatnav/internal/finder"
)

// regionInfo is the serialized shape of a located region.
type regionInfo struct {
	Region    string `yaml:"region"`
	Name      string `yaml:"name,omitempty"`
	Role      string `yaml:"role"`
	Focusable bool   `yaml:"focusable"`
	Class     string `yaml:"class,omitempty"`
}

func describeRegion(region string, h element.Handle) regionInfo {
	return regionInfo{
		Region:    region,
		Name:      h.Name(),
		Role:      h.Role().String(),
		Focusable: h.States().Has(element.StateFocusable),
		Class:     h.ClassName(),
	}
}

func toYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

func (s *Server) handleFind(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := StringParam(request.GetArguments(), "region", "")
	defer s.lock("find")()

	h, known := s.engine.FindRegion(region)
	if !known {
		return mcp.NewToolResultError(fmt.Sprintf("unknown region %q, use one of %v", region, finder.RegionNames())), nil
	}
	if h == nil {
		return mcp.NewToolResultError(fmt.Sprintf("region %q not found; the UI may not be showing it", region)), nil
	}
	return mcp.NewToolResultText(toYAML(describeRegion(region, h))), nil
}

func (s *Server) handleAreas(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defer s.lock("areas")()

	areas := s.engine.Areas()
	type areaInfo struct {
		Label string `yaml:"label"`
		Name  string `yaml:"name,omitempty"`
		Role  string `yaml:"role"`
	}
	out := make([]areaInfo, 0, len(areas))
	for _, a := range areas {
		out = append(out, areaInfo{Label: a.Label, Name: a.Handle.Name(), Role: a.Handle.Role().String()})
	}
	return mcp.NewToolResultText(toYAML(out)), nil
}

func (s *Server) handleMessages(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := IntParam(request.GetArguments(), "limit", 0)
	defer s.lock("messages")()

	msgs := s.engine.Messages(nil)
	if msgs == nil {
		return mcp.NewToolResultError("message list not found"), nil
	}
	if len(msgs) == 0 {
		return mcp.NewToolResultText("no messages"), nil
	}
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, finder.MessageContent(m))
	}
	return mcp.NewToolResultText(toYAML(out)), nil
}

func (s *Server) handleContext(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defer s.lock("context")()
	return mcp.NewToolResultText(toYAML(s.engine.WindowContext(nil))), nil
}

func (s *Server) handleVoice(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defer s.lock("voice")()

	info := s.engine.VoiceInfo()
	if info == nil {
		return mcp.NewToolResultError("no voice connection detected"), nil
	}
	return mcp.NewToolResultText(toYAML(info)), nil
}

func (s *Server) handleFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := StringParam(request.GetArguments(), "region", "")
	defer s.lock("focus")()

	h, known := s.engine.FindRegion(region)
	if !known {
		return mcp.NewToolResultError(fmt.Sprintf("unknown region %q, use one of %v", region, finder.RegionNames())), nil
	}
	if h == nil {
		return mcp.NewToolResultError(fmt.Sprintf("region %q not found", region)), nil
	}
	if !s.engine.FocusElement(h) {
		return mcp.NewToolResultError(fmt.Sprintf("could not move focus to %q", region)), nil
	}
	return mcp.NewToolResultText(toYAML(describeRegion(region, h))), nil
}

func (s *Server) handleDump(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	depth := IntParam(request.GetArguments(), "depth", 8)
	defer s.lock("dump")()

	return mcp.NewToolResultText(dump.Tree(s.engine, nil, depth)), nil
}

func (s *Server) handleInvalidate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defer s.lock("invalidate")()
	s.engine.Invalidate()
	return mcp.NewToolResultText("cache invalidated"), nil
}
