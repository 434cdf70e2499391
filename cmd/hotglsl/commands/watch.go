package commands

import (
	"github.com/spf13/cobra"

	"github.com/nannou-org/hotglsl/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Watch shader files and recompile them on change",
		Long: `Watch observes the given files and directories for changes to GLSL
shader files and recompiles each touched shader. Directories are watched
recursively. Without arguments the paths come from hotglsl.yaml, falling
back to the current directory.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			compiler, _ := cmd.Flags().GetString("compiler")
			settle, _ := cmd.Flags().GetDuration("settle")
			out, _ := cmd.Flags().GetString("out")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = "linear"
			}

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Paths:      args,
				Compiler:   compiler,
				Settle:     settle,
				Out:        out,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("compiler", "c", "", "Path to the glslang compiler binary")
	cmd.Flags().Duration("settle", 0, "Event coalescing window before recompiling")
	cmd.Flags().String("out", "", "Directory to write compiled .spv bytecode to")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
