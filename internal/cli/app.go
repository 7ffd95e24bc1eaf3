package cli

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/inreplace/pkg/config"
	"github.com/arthur-debert/inreplace/pkg/filesystem"
	"github.com/arthur-debert/inreplace/pkg/inreplace"
	"github.com/arthur-debert/inreplace/pkg/pattern"
	"github.com/arthur-debert/inreplace/pkg/report"
	"github.com/arthur-debert/inreplace/pkg/types"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flag values
type globalFlags struct {
	verbosity  int
	dryRun     bool
	warn       bool
	format     string
	diff       bool
	color      string
	configFile string
}

// app carries what every command needs once flags are parsed
type app struct {
	flags globalFlags
	cfg   *config.Config
	fs    types.FS
	out   report.Renderer

	closeLog func() error
}

func newApp() *app {
	return &app{fs: filesystem.NewOS()}
}

// setup loads the configuration with the changed flags layered on top and
// builds the output renderer.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	overrides := map[string]interface{}{}
	if flags.Changed("warn") && a.flags.warn {
		overrides["on_missing_change"] = inreplace.Warn.String()
	}
	if flags.Changed("format") {
		overrides["output.format"] = a.flags.format
	}
	if flags.Changed("color") {
		overrides["output.color"] = a.flags.color
	}
	if flags.Changed("diff") {
		overrides["output.diff"] = a.flags.diff
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.flags.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	out, err := report.New(cmd.OutOrStdout(), a.reportOptions())
	if err != nil {
		return err
	}
	a.out = out
	return nil
}

// reportOptions converts the validated output settings
func (a *app) reportOptions() report.Options {
	format, _ := report.ParseFormat(a.cfg.Output.Format)
	color, _ := report.ParseColorMode(a.cfg.Output.Color)
	return report.Options{Format: format, Color: color, Diff: a.cfg.Output.Diff}
}

// patternFlags are shared by the commands that take OLD values
type patternFlags struct {
	regex      bool
	ignoreCase bool
	engine     string
}

func (p *patternFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&p.regex, "regex", "r", false, MsgFlagRegex)
	cmd.Flags().BoolVarP(&p.ignoreCase, "ignore-case", "i", false, MsgFlagIgnoreCase)
	cmd.Flags().StringVar(&p.engine, "engine", "", MsgFlagEngine)
	_ = cmd.RegisterFlagCompletionFunc("engine", fixedCompletion("regexp2", "re2"))
}

// compile builds the Pattern for expr
func (a *app) compile(p *patternFlags, expr string) (pattern.Pattern, error) {
	engine := pattern.EngineLiteral
	if p.regex {
		engine = pattern.Engine(a.cfg.Regex.Engine)
		if p.engine != "" {
			engine = pattern.Engine(p.engine)
		}
	} else if p.ignoreCase {
		// case folding needs a regexp, quoted so expr stays literal
		engine = pattern.EngineRegexp2
		expr = regexp.QuoteMeta(expr)
	}

	opts := a.cfg.PatternOptions()
	opts.IgnoreCase = p.ignoreCase
	return pattern.Parse(expr, engine, opts)
}

// finish prints the result of an edit, then a dry-run notice, and passes
// the edit error through.
func (a *app) finish(cmd *cobra.Command, result *inreplace.Result, editErr error) error {
	if result != nil {
		if err := a.out.RenderResult(result); err != nil {
			return err
		}
		if result.DryRun && a.cfg.Output.Format == "text" {
			fmt.Fprintln(cmd.ErrOrStderr(), formatNotice(cmd.ErrOrStderr(), MsgDryRunNotice))
		}
	}
	return editErr
}
