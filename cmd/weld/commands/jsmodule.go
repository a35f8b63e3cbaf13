package commands

import "github.com/spf13/cobra"

func (c *CLI) newJSModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsmodule",
		Short: "Write the template-use module map to static/jsmodules.js",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.JSModule(cmd.Context(), c.target(cmd))
		},
	}
	addTargetFlags(cmd)
	return cmd
}
