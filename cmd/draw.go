package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcbdxf/internal/config"
	"github.com/alexiusacademia/rcbdxf/internal/diagram"
	"github.com/alexiusacademia/rcbdxf/internal/dxf"
	"github.com/alexiusacademia/rcbdxf/internal/layout"
)

type drawOptions struct {
	preview string
	ascii   bool
	cols    int
}

func newDrawCmd() *cobra.Command {
	var opts drawOptions

	c := &cobra.Command{
		Use:   "draw <input.toml> <output.dxf>",
		Short: "Write the beam section drawing as DXF",
		Long: `Load a beam description, lay out the section and write it as a DXF file.

Examples:
  # Draw the section described in beam.toml
  rcbdxf draw beam.toml out/G1.dxf

  # Also export a PNG preview and print the section in the terminal
  rcbdxf draw beam.toml out/G1.dxf --preview out/G1.png --ascii`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, args[0], args[1], opts)
		},
	}

	c.Flags().StringVarP(&opts.preview, "preview", "p", "", "Export a preview image (png, svg, pdf)")
	c.Flags().BoolVar(&opts.ascii, "ascii", false, "Print an ASCII rendering of the section")
	c.Flags().IntVar(&opts.cols, "cols", 60, "Width of the ASCII rendering in characters")
	return c
}

func runDraw(cmd *cobra.Command, input, output string, opts drawOptions) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	p := newProgress(logger)
	spec, err := config.Load(input)
	if err != nil {
		return err
	}
	p.done("loaded config", "path", input, "beam", spec.Name)

	p = newProgress(logger)
	cmds, err := layout.Generate(spec)
	if err != nil {
		return err
	}
	p.done("generated layout", "commands", len(cmds))

	roles := spec.Layers.Roles()
	p = newProgress(logger)
	if err := (dxf.Sink{Roles: roles}).Write(cmds, output); err != nil {
		return err
	}
	p.done("wrote dxf", "path", output)

	if opts.preview != "" {
		p = newProgress(logger)
		if err := diagram.ExportPreview(cmds, roles, spec.Name, opts.preview); err != nil {
			return err
		}
		p.done("exported preview", "path", opts.preview)
	}

	lines := append(layout.Labels(spec), fmt.Sprintf("entities: %d", len(cmds)))
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox(spec.Name, lines))
	if opts.ascii {
		fmt.Fprint(out, diagram.RenderASCII(cmds, opts.cols))
	}
	fmt.Fprintln(out)

	printSuccess(out, "Drew beam %s", spec.Name)
	printFile(out, output)
	if opts.preview != "" {
		printFile(out, opts.preview)
	}
	return nil
}
