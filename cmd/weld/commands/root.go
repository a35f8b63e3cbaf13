// Package commands implements the CLI commands for weld.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/weld/internal/app"
	"go.trai.ch/weld/internal/build"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// LogFormatPretty selects the colored human readable log output.
	LogFormatPretty = "pretty"
	// LogFormatJSON selects structured JSON log output.
	LogFormatJSON = "json"
)

// CLI represents the command line interface for weld.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
	root    string
}

// Application represents the application logic interface.
type Application interface {
	JSModule(ctx context.Context, target app.Target) error
	GulpPlugins(ctx context.Context, target app.Target, opts app.GulpOptions) (int, error)
	Combine(ctx context.Context, target app.Target) error
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// ExitStatusError carries the non-zero exit status of the build tool.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("gulp exited with status %d", e.Code)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "weld",
		Short:         "Bundle template assets and drive gulp from the project configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.root, "root", "r", ".", "Directory to start looking for weld.yaml from")
	rootCmd.PersistentFlags().String("log-format", LogFormatPretty, "Log format: pretty or json")
	rootCmd.PersistentPreRunE = c.configureLogging

	rootCmd.AddCommand(c.newJSModuleCmd())
	rootCmd.AddCommand(c.newGulpPluginsCmd())
	rootCmd.AddCommand(c.newCombineCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("log-format")
	switch format {
	case LogFormatPretty, LogFormatJSON:
	default:
		return zerr.With(zerr.New("unknown log format"), "format", format)
	}

	if s, ok := c.logger.(jsonSwitcher); ok {
		s.SetJSON(format == LogFormatJSON)
	}
	return nil
}

// addTargetFlags registers the -a and -d flags shared by the generating commands.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("app", "a", "", "App whose settings are used")
	cmd.Flags().StringP("dest", "d", "", "App whose directory receives the output")
}

func (c *CLI) target(cmd *cobra.Command) app.Target {
	appName, _ := cmd.Flags().GetString("app")
	dest, _ := cmd.Flags().GetString("dest")
	return app.Target{Root: c.root, App: appName, Dest: dest}
}
