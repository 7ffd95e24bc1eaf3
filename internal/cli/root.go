// Package cli implements the inreplace command line.
package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/arthur-debert/inreplace/internal/version"
	"github.com/arthur-debert/inreplace/pkg/cobrax/topics"
	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/logging"
	"github.com/arthur-debert/inreplace/pkg/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// Execute runs the command line with args and prints any error to stderr.
// main exits with status 1 when it returns an error.
func Execute(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	a := newApp()
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		a.renderError(stderr, err)
	}
	if a.closeLog != nil {
		_ = a.closeLog()
	}
	return err
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "inreplace",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.closeLog = logging.Setup(logging.Options{
				Verbosity: a.flags.verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   !isTerminal(cmd.ErrOrStderr()),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrUsage, MsgNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&a.flags.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.BoolVar(&a.flags.warn, "warn", false, MsgFlagWarn)
	pf.StringVar(&a.flags.format, "format", "", MsgFlagFormat)
	pf.BoolVar(&a.flags.diff, "diff", false, MsgFlagDiff)
	pf.StringVar(&a.flags.color, "color", "", MsgFlagColor)
	pf.StringVar(&a.flags.configFile, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion("text", "json", "yaml"))
	_ = rootCmd.RegisterFlagCompletionFunc("color", fixedCompletion("auto", "always", "never"))

	rootCmd.AddGroup(&cobra.Group{ID: "edit", Title: "Edit commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newReplaceCmd())
	rootCmd.AddCommand(a.newPairsCmd())
	rootCmd.AddCommand(a.newSetCmd())
	rootCmd.AddCommand(a.newUnsetCmd())
	rootCmd.AddCommand(a.newGetCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system from the embedded topics
	topicsDir, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(isTerminal(rootCmd.OutOrStdout())),
		}
		if err := topics.InitializeWithOptions(rootCmd, topicsDir, opts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// renderError prints err with the configured format, falling back to
// styled text when configuration never loaded.
func (a *app) renderError(w io.Writer, err error) {
	opts := report.Options{Format: report.FormatText}
	if a.cfg != nil {
		opts = a.reportOptions()
	} else if mode, cerr := report.ParseColorMode(a.flags.color); cerr == nil {
		opts.Color = mode
	}

	r, rerr := report.New(w, opts)
	if rerr != nil {
		fmt.Fprintln(w, err)
		return
	}
	if rerr := r.RenderError(err); rerr != nil {
		fmt.Fprintln(w, err)
	}
}
