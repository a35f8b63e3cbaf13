package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weld/internal/app"
)

func (c *CLI) newGulpPluginsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gulpplugins",
		Short: "Write gulp_settings.ini from template_gulp and run gulp on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noJS, _ := cmd.Flags().GetBool("no-js")
			skipUnchanged, _ := cmd.Flags().GetBool("skip-unchanged")

			code, err := c.app.GulpPlugins(cmd.Context(), c.target(cmd), app.GulpOptions{
				NoJS:          noJS,
				SkipUnchanged: skipUnchanged,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return &ExitStatusError{Code: code}
			}
			return nil
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().Bool("no-js", false, "Leave javascript files out of the combined bundles")
	cmd.Flags().Bool("skip-unchanged", false, "Skip gulp when the settings are unchanged since its last successful run")
	return cmd
}
