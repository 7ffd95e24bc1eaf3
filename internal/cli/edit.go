package cli

import (
	"strings"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/inreplace"
	"github.com/arthur-debert/inreplace/pkg/logging"
	"github.com/arthur-debert/inreplace/pkg/makevar"
	"github.com/spf13/cobra"
)

func (a *app) newReplaceCmd() *cobra.Command {
	var (
		old, replacement string
		pf               patternFlags
	)

	cmd := &cobra.Command{
		Use:     "replace --old OLD [--new NEW] FILE...",
		Short:   MsgReplaceShort,
		Long:    MsgReplaceLong,
		Example: MsgReplaceExample,
		GroupID: "edit",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.replace")
			logger.Info().
				Str("old", old).
				Bool("regex", pf.regex).
				Strs("files", args).
				Msg("Starting replace")

			p, err := a.compile(&pf, old)
			if err != nil {
				return err
			}

			result, err := inreplace.Inreplace(inreplace.Options{
				Paths:           args,
				Old:             p,
				New:             replacement,
				OnMissingChange: a.cfg.Policy(),
				DryRun:          a.flags.dryRun,
				FS:              a.fs,
			})
			return a.finish(cmd, result, err)
		},
	}

	cmd.Flags().StringVarP(&old, "old", "o", "", MsgFlagOld)
	cmd.Flags().StringVarP(&replacement, "new", "n", "", MsgFlagNew)
	_ = cmd.MarkFlagRequired("old")
	pf.register(cmd)

	return cmd
}

func (a *app) newPairsCmd() *cobra.Command {
	var pf patternFlags

	cmd := &cobra.Command{
		Use:     "pairs FILE OLD NEW [OLD NEW]...",
		Short:   MsgPairsShort,
		Long:    MsgPairsLong,
		Example: MsgPairsExample,
		GroupID: "edit",
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, rest := args[0], args[1:]
			if len(rest)%2 != 0 {
				return errors.Newf(errors.ErrUsage, MsgOddPairs, len(rest))
			}

			pairs := make([]inreplace.Pair, 0, len(rest)/2)
			for i := 0; i < len(rest); i += 2 {
				p, err := a.compile(&pf, rest[i])
				if err != nil {
					return err
				}
				pairs = append(pairs, inreplace.Pair{Old: p, New: rest[i+1]})
			}

			result, err := inreplace.InreplacePairs(inreplace.PairsOptions{
				Path:            path,
				Pairs:           pairs,
				OnMissingChange: a.cfg.Policy(),
				DryRun:          a.flags.dryRun,
				FS:              a.fs,
			})
			return a.finish(cmd, result, err)
		},
	}

	pf.register(cmd)
	return cmd
}

func (a *app) newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set FILE NAME=VALUE...",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		GroupID: "edit",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits := make([]inreplace.EditFunc, 0, len(args)-1)
			for _, arg := range args[1:] {
				name, value, ok := strings.Cut(arg, "=")
				if !ok || name == "" {
					return errors.Newf(errors.ErrUsage, MsgBadAssignment, arg)
				}
				if err := makevar.ValidateName(name); err != nil {
					return err
				}
				edits = append(edits, inreplace.SetVariable(name, value))
			}

			result, err := inreplace.Inreplace(inreplace.Options{
				Paths:           args[:1],
				Edit:            inreplace.Chain(edits...),
				OnMissingChange: a.cfg.Policy(),
				DryRun:          a.flags.dryRun,
				FS:              a.fs,
			})
			return a.finish(cmd, result, err)
		},
	}
}

func (a *app) newUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unset FILE NAME...",
		Short:   MsgUnsetShort,
		Long:    MsgUnsetLong,
		GroupID: "edit",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args[1:] {
				if err := makevar.ValidateName(name); err != nil {
					return err
				}
			}
			result, err := inreplace.Inreplace(inreplace.Options{
				Paths:           args[:1],
				Edit:            inreplace.RemoveVariables(args[1:]...),
				OnMissingChange: a.cfg.Policy(),
				DryRun:          a.flags.dryRun,
				FS:              a.fs,
			})
			return a.finish(cmd, result, err)
		},
	}
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get FILE NAME",
		Short:   MsgGetShort,
		Long:    MsgGetLong,
		GroupID: "edit",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, name := args[0], args[1]
			value, found, err := inreplace.Variable(a.fs, path, name)
			if err != nil {
				return err
			}
			if !found {
				return errors.Newf(errors.ErrNotFound, MsgVariableMissing, name, path).
					WithDetail("path", path).
					WithDetail("name", name)
			}
			return a.out.RenderValue(path, name, value)
		},
	}
}
