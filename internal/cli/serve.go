// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/entitylink/edeval/internal/tool"
)

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scoring tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.Info().Str("version", version).Msg("starting MCP server on stdio")
			return tool.NewServer(version).Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
