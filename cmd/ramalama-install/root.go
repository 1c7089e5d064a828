package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/containers/ramalama-install/internal/bootstrap"
	"github.com/containers/ramalama-install/internal/messages"
)

var bootstrapRun = bootstrap.Run

func newRootCmd() *cobra.Command {
	var local bool
	var yes bool
	var branch string

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				if !strings.HasPrefix(args[0], messages.QueryPrefix) {
					return fmt.Errorf(messages.UnexpectedArgFmt, args[0])
				}
				query = args[0]
			}
			return bootstrapRun(cmd.Context(), bootstrap.Options{
				Local:  local,
				Yes:    yes,
				Branch: branch,
				Query:  query,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().BoolVarP(&local, "local", "l", false, messages.FlagLocalHelp)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.FlagYesHelp)
	cmd.Flags().StringVar(&branch, "branch", "", messages.FlagBranchHelp)

	return cmd
}
