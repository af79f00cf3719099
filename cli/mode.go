package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/BinSquare/pstatedump"
)

// modeSelection records the single output mode chosen on the command line.
type modeSelection struct {
	mode pstatedump.Mode
	flag string
}

// modeFlag is a boolean switch that selects a mode. Setting a second switch,
// or the same one twice, is an error.
type modeFlag struct {
	sel  *modeSelection
	name string
	mode pstatedump.Mode
}

var _ pflag.Value = (*modeFlag)(nil)

func (f *modeFlag) String() string {
	return strconv.FormatBool(f.sel != nil && f.sel.flag == f.name)
}

func (f *modeFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if !on {
		return nil
	}
	if f.sel.flag == f.name {
		return fmt.Errorf("--%s given more than once", f.name)
	}
	if f.sel.flag != "" {
		return fmt.Errorf("--%s cannot be combined with --%s", f.name, f.sel.flag)
	}
	f.sel.flag = f.name
	f.sel.mode = f.mode
	return nil
}

func (f *modeFlag) Type() string {
	return "bool"
}

type modeOption struct {
	name      string
	shorthand string
	mode      pstatedump.Mode
	usage     string
}

var modeOptions = []modeOption{
	{"count", "c", pstatedump.ModeCount, "print pstate count"},
	{"max", "n", pstatedump.ModeNominal, "print maximum nominal freq only"},
	{"min", "m", pstatedump.ModeMin, "print minimum nominal freq only"},
	{"boost", "b", pstatedump.ModeBoost, "print maximum boost freq only"},
	{"avail-boost", "a", pstatedump.ModeAvailableBoost, "print maximum available boost freq only"},
	{"json", "j", pstatedump.ModeJSON, "print the P-State table as JSON"},
	{"yaml", "y", pstatedump.ModeYAML, "print the P-State table as YAML"},
}

// checkArgs accepts no argument or exactly one of the listed switch
// spellings. pflag alone would also take "--count=false", "-c=1", "--" and
// combinations with --help or --version.
func checkArgs(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
	default:
		return fmt.Errorf("%w: expected at most one option, got %d", errInvalidArgument, len(args))
	}

	switch arg := args[0]; arg {
	case "-h", "--help", "--version":
		return nil
	default:
		for _, opt := range modeOptions {
			if arg == "-"+opt.shorthand || arg == "--"+opt.name {
				return nil
			}
		}
		return fmt.Errorf("%w: unexpected %q", errInvalidArgument, arg)
	}
}

func registerModeFlags(flags *pflag.FlagSet, sel *modeSelection) {
	for _, opt := range modeOptions {
		f := flags.VarPF(&modeFlag{sel: sel, name: opt.name, mode: opt.mode}, opt.name, opt.shorthand, opt.usage)
		f.NoOptDefVal = "true"
	}
}
