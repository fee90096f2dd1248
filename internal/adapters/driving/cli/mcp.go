package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve dictionary lookups to MCP clients",
	Long: `Serve dictionary lookups over the Model Context Protocol.

Clients get the "define" tool, which looks up one word, and the
"lexi://settings" resource, which shows the dictionary endpoint in use.

Without --port the server speaks JSON-RPC on stdin and stdout, which is what
desktop assistants expect when they launch lexi themselves. With --port it
serves the streamable HTTP transport instead, for MCP Inspector or remote use.`,
	Example: `  lexi mcp serve
  lexi mcp serve --port 8080
  lexi mcp serve --port 8080 --host 0.0.0.0

  # Assistant configuration
  {"mcpServers": {"lexi": {"command": "lexi", "args": ["mcp", "serve"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "serve HTTP on this port (0 = stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "interface to bind when --port is set")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := requireLookup(); err != nil {
		return err
	}
	if mcpPort < 0 || mcpPort > 65535 {
		return fmt.Errorf("invalid port %d", mcpPort)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		NewController: newController,
		Settings:      settingsService,
	}, mcp.WithVersion(version))
	if err != nil {
		return err
	}

	if mcpPort == 0 {
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
