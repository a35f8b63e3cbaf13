package commands

import "github.com/spf13/cobra"

func (c *CLI) newCombineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Write the static combine manifest to static_combine.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Combine(cmd.Context(), c.target(cmd))
		},
	}
	addTargetFlags(cmd)
	return cmd
}
