package cli

import (
	"fmt"

	"github.com/arthur-debert/inreplace/pkg/config"
	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/filesystem"
	"github.com/spf13/cobra"
)

// projectConfigFile is what genconfig --write creates
const projectConfigFile = ".inreplace.toml"

func (a *app) newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			exists, err := filesystem.Exists(a.fs, projectConfigFile)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead, "cannot check %s", projectConfigFile)
			}
			if exists {
				return errors.Newf(errors.ErrUsage, MsgConfigExists, projectConfigFile)
			}
			if err := a.fs.WriteFile(projectConfigFile, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", projectConfigFile)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, projectConfigFile)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
