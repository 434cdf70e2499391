// Package commands implements the CLI commands for the hotglsl tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nannou-org/hotglsl/internal/app"
	"github.com/nannou-org/hotglsl/internal/build"
)

// Application represents the application logic interface.
type Application interface {
	Watch(ctx context.Context, opts app.WatchOptions) error
	Compile(ctx context.Context, files []string, opts app.CompileOptions) error
}

// CLI represents the command line interface for hotglsl.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}
	c.rootCmd = c.newRootCmd()
	return c
}

func (c *CLI) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hotglsl",
		Short:         "Watch GLSL shaders and recompile them to SPIR-V on change",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	root.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	root.InitDefaultVersionFlag()
	root.Flags().Lookup("version").Usage = "Print the application version"

	root.InitDefaultHelpFlag()
	root.Flags().Lookup("help").Usage = "Show help for command"

	root.AddCommand(
		c.newWatchCmd(),
		c.newCompileCmd(),
		c.newVersionCmd(),
	)

	return root
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
