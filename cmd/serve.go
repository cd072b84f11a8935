package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chatnav/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing chatnav tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the chatnav
commands as tools. AI agents can call tools directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  chatnav serve
  chatnav serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	engine, done, err := newEngine(cmd)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer done()

	srv := server.New(engine, logger)
	return srv.Serve(server.Config{Transport: transport, Port: port})
}
