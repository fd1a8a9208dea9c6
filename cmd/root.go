package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the docs-mcp application
var rootCmd = &cobra.Command{
	Use:   "docs-mcp",
	Short: "MCP server for Google Docs document and comment management",
	Long: `docs-mcp is an MCP (Model Context Protocol) server that lets AI assistants
create, update, read and list Google Docs in a shared Drive folder, and work
with document comments.

Documents are written as Markdown, which is compiled to Google Docs API
requests, and read back as Markdown via HTML export.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "docs-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
