package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcbdxf/internal/config"
	"github.com/alexiusacademia/rcbdxf/internal/layout"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <input.toml>",
		Short: "Validate a beam file and list the bar layout",
		Long: `Load a beam description and lay out the section without writing any
file. Prints the resolved inputs, entity counts per layer and every bar
centre.

Example:
  rcbdxf check beam.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, input string) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	p := newProgress(logger)
	spec, err := config.Load(input)
	if err != nil {
		return err
	}
	cmds, err := layout.Generate(spec)
	if err != nil {
		return err
	}
	bars, err := layout.MainRebarCoords(spec)
	if err != nil {
		return err
	}
	p.done("checked config", "path", input, "commands", len(cmds))

	fmt.Fprintln(out)
	printTitle(out, "BEAM")
	fmt.Fprintln(out, specTable(spec))
	fmt.Fprintln(out)
	printTitle(out, "LAYERS")
	fmt.Fprintln(out, layerTable(cmds, spec.Layers.Roles()))
	fmt.Fprintln(out)
	printTitle(out, "REBAR")
	fmt.Fprintln(out, rebarTable(bars, layout.SideRebarCoords(spec)))
	fmt.Fprintln(out)

	printSuccess(out, "%s is valid", input)
	return nil
}
