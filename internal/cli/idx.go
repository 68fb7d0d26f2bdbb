package cli

import (
	"fmt"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mmpa/internal/app"
	"mmpa/internal/types"
)

type remapOptions struct {
	Out   string
	Alias bool
	Force bool
}

func newIdxCommand() *cobra.Command {
	opts := remapOptions{}
	cmd := &cobra.Command{
		Use:   "idx <project> <index> <replacement>",
		Short: "Remap a single resource selected by its list index",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("index must be an integer").
					WithCause(err)
			}
			if index == 0 {
				log.Info().Msg("changing index '0' to '1'")
				index = 1
			}
			return runRemap(cmd, app.RemapRequest{
				ProjectPath: args[0],
				OutputPath:  opts.Out,
				Strategy:    types.StrategyIndex,
				Index:       index,
				Replacement: args[2],
			}, opts)
		},
	}
	addRemapFlags(cmd, &opts)
	return cmd
}

func addRemapFlags(cmd *cobra.Command, opts *remapOptions) {
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Output file path")
	cmd.Flags().BoolVar(&opts.Alias, "alias", false, "Shorten replacement paths with lmmsrc aliases")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite the output file if it exists")
	_ = cmd.MarkFlagRequired("out")
}

func runRemap(cmd *cobra.Command, req app.RemapRequest, opts remapOptions) error {
	req.ApplyAliases = opts.Alias
	req.LmmsrcPath = lmmsrcPath()
	req.Force = opts.Force

	service := newAppService()
	result, err := service.Remap(cmd.Context(), req)
	if err != nil {
		return err
	}
	if result.Replaced == 0 {
		fmt.Println("nothing was changed")
		return nil
	}
	fmt.Printf("remapped %d reference(s), written to '%s'\n", result.Replaced, result.OutputPath)
	return nil
}
