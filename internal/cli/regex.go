package cli

import (
	"github.com/spf13/cobra"

	"mmpa/internal/app"
	"mmpa/internal/types"
)

func newRegexCommand() *cobra.Command {
	opts := remapOptions{}
	cmd := &cobra.Command{
		Use:   "re <project> <pattern> <template>",
		Short: "Remap resources by regex match and substitute",
		Long: "Remap resources by regular expression. The pattern matches anywhere " +
			"in the path; the template may reference capture groups as $1, $2, ...",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemap(cmd, app.RemapRequest{
				ProjectPath: args[0],
				OutputPath:  opts.Out,
				Strategy:    types.StrategyRegex,
				Pattern:     args[1],
				Template:    args[2],
			}, opts)
		},
	}
	addRemapFlags(cmd, &opts)
	return cmd
}
