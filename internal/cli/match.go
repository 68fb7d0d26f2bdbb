package cli

import (
	"github.com/spf13/cobra"

	"mmpa/internal/app"
	"mmpa/internal/types"
)

func newMatchCommand() *cobra.Command {
	opts := remapOptions{}
	cmd := &cobra.Command{
		Use:   "match <project> <find> <substitute>",
		Short: "Remap resources by literal substring replacement",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemap(cmd, app.RemapRequest{
				ProjectPath: args[0],
				OutputPath:  opts.Out,
				Strategy:    types.StrategyMatch,
				Find:        args[1],
				Substitute:  args[2],
			}, opts)
		},
	}
	addRemapFlags(cmd, &opts)
	return cmd
}
