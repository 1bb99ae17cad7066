package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: "Run the HTTP API. Requests authenticate with a bearer token issued by 'discern token'\n" +
		"and signed with DISCERN_JWT_SECRET, which is required unless --insecure-dev is set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Serve(ctx)
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the assessment tools over MCP on stdio",
	Long: "Serve the assessment tools over the Model Context Protocol on stdin/stdout.\n" +
		"Tools act as the local user (DISCERN_USER_ID, DISCERN_USER_NAME).",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		return server.ServeStdio(a.MCPServer(buildVersion()))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides DISCERN_ADDR, default :8080)")
	serveCmd.Flags().Bool("insecure-dev", false, "Allow serving without DISCERN_JWT_SECRET using a well-known development secret")
}
