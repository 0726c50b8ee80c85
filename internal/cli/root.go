// Package cli implements the roster command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
)

// Exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// Version is the release string, overridden at link time.
var Version = "dev"

// usageError marks errors caused by bad arguments or flags.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// runTUI starts the interactive UI. Replaced in tests.
type runTUI func(ctx context.Context, opts app.Options) error

type rootFlags struct {
	configPath string
	prefsPath  string
	apiURL     string
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		APIURL:     f.apiURL,
	}
}

func newRootCmd(tui runTUI) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "roster",
		Short: "Browse and edit a remote item list",
		Long: `roster shows the items served by an item API in a searchable,
sortable terminal list. Without a subcommand it starts the interactive UI.`,
		Version:       Version,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui(cmd.Context(), flags.options())
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/roster/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/roster/prefs.toml)")
	pf.StringVar(&flags.apiURL, "api", "", "item API base URL, overrides api_url")

	root.AddCommand(
		newListCmd(flags),
		newAddCmd(flags),
		newRemoveCmd(flags),
		newVersionCmd(),
	)
	return root
}

// usageArgs tags argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, app.Run, args, stdout, stderr)
}

func execute(ctx context.Context, tui runTUI, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(tui)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintf(stderr, "roster: %v\n", err)

	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Run 'roster --help' for usage.\n")
		return exitUsage
	}
	return exitFailure
}
