package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcbdxf/internal/config"
	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

const defaultInitPath = "beam.toml"

func newInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an annotated example beam file",
		Long: `Write an annotated example beam description to path (default beam.toml).
An existing file is kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultInitPath
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(cmd, path, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return c
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return errs.IO(fs.ErrExist, "%s already exists (use --force to overwrite)", path)
		case !errors.Is(err, fs.ErrNotExist):
			return errs.IO(err, "stat %s", path)
		}
	}

	if err := config.CreateSample(path); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("wrote sample config", "path", path)

	out := cmd.OutOrStdout()
	printSuccess(out, "Created example beam file")
	printFile(out, path)
	return nil
}
