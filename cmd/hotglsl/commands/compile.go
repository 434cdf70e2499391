package commands

import (
	"github.com/spf13/cobra"

	"github.com/nannou-org/hotglsl/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile shader files once and exit",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			compiler, _ := cmd.Flags().GetString("compiler")
			out, _ := cmd.Flags().GetString("out")

			return c.app.Compile(cmd.Context(), args, app.CompileOptions{
				Compiler: compiler,
				Out:      out,
			})
		},
	}
	cmd.Flags().StringP("compiler", "c", "", "Path to the glslang compiler binary")
	cmd.Flags().String("out", "", "Directory to write compiled .spv bytecode to")
	return cmd
}
