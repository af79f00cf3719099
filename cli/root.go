package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BinSquare/pstatedump"
)

var errInvalidArgument = errors.New("invalid argument")

// newRootCmd builds the command. src is only queried once flags are valid, so
// a bad invocation never touches the platform.
func newRootCmd(src pstatedump.Source, logger *zap.Logger) *cobra.Command {
	sel := &modeSelection{mode: pstatedump.ModeTable}

	cmd := &cobra.Command{
		Use:           "pstatedump",
		Short:         "Print the CPU P-State table reported by the platform plugin",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected %q", errInvalidArgument, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("loading P-States", zap.String("mode", sel.flag))

			table, err := pstatedump.Load(cmd.Context(), src)
			if err != nil {
				return err
			}
			logger.Debug("P-States loaded",
				zap.Int("count", table.Count()),
				zap.Int("nominal_mhz", table.NominalMHz),
				zap.Bool("limited", table.HasLimit))

			return pstatedump.Render(cmd.OutOrStdout(), table, sel.mode)
		},
	}

	registerModeFlags(cmd.Flags(), sel)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errInvalidArgument, err)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printHelp(c.OutOrStdout(), c.Name())
	})
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	return cmd
}

func printHelp(w io.Writer, prog string) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintf(w, "  %s\n", prog)
	fmt.Fprintf(w, "  %s [-c|-n|-m|-b|-a|-j|-y]\n", prog)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --count         print pstate count")
	fmt.Fprintln(w, "  -n, --max           print maximum nominal freq only")
	fmt.Fprintln(w, "  -m, --min           print minimum nominal freq only")
	fmt.Fprintln(w, "  -b, --boost         print maximum boost freq only")
	fmt.Fprintln(w, "  -a, --avail-boost   print maximum available boost freq only")
	fmt.Fprintln(w, "  -j, --json          print the P-State table as JSON")
	fmt.Fprintln(w, "  -y, --yaml          print the P-State table as YAML")
	fmt.Fprintln(w, "  -h, --help          print this help menu")
	fmt.Fprintln(w, "      --version       print version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Default: prints P-State table for the CPU")
}
