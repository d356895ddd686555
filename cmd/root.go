package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcbdxf/internal/version"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "rcbdxf",
		Short: "Reinforced concrete beam section to DXF",
		Long: `rcbdxf - Reinforced Concrete Beam Section Drafter

Reads a beam description from a TOML file and writes the cross-section
drawing as an AutoCAD DXF file:
  - Concrete outline
  - Main rebar in up to three rows per face
  - Side (web) rebar
  - Stirrup and tie lines
  - Bar schedule annotation

Lengths are in millimetres. Run 'rcbdxf init' for an annotated example.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		Run: func(cmd *cobra.Command, args []string) {
			printBanner(cmd.OutOrStdout())
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDrawCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ╔═══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "  ║                                                           ║")
	fmt.Fprintf(w, "  ║   rcbdxf v%-48s║\n", version.Version)
	fmt.Fprintln(w, "  ║   Reinforced Concrete Beam Section Drafter                ║")
	fmt.Fprintf(w, "  ║   %s ©  %-*s║\n", version.Author, 52-len(version.Author), version.Year)
	fmt.Fprintln(w, "  ║                                                           ║")
	fmt.Fprintln(w, "  ╚═══════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Draws reinforced concrete beam cross-sections as DXF files")
	fmt.Fprintln(w, "  from a TOML description.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Commands:")
	fmt.Fprintln(w, "    • init     Write an annotated example beam file")
	fmt.Fprintln(w, "    • check    Validate a beam file and list the bar layout")
	fmt.Fprintln(w, "    • draw     Write the section drawing as DXF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Use 'rcbdxf --help' to see all options.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ─────────────────────────────────────────────────────────────")
	fmt.Fprintf(w, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
	fmt.Fprintln(w)
}

// Execute runs the CLI. Any error is printed to stderr and the process exits
// with status 1.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
