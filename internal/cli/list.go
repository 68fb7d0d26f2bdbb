package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mmpa/internal/app"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <project>",
		Short: "List remappable resources and the instruments referencing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0])
		},
	}
	return cmd
}

func runList(cmd *cobra.Command, projectPath string) error {
	service := newAppService()
	result, err := service.List(cmd.Context(), app.ListRequest{ProjectPath: projectPath})
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		fmt.Printf("[%d] %s\n", entry.Index, entry.Path)
		for _, ref := range entry.Refs {
			fmt.Printf("        * %s (%s)\n", ref.Label, ref.Kind)
		}
		plural := ""
		if len(entry.Refs) > 1 {
			plural = "S"
		}
		fmt.Printf("        %d REFERENCE%s\n\n", len(entry.Refs), plural)
	}
	return nil
}
