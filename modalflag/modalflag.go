// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheradvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheradvance.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. the Mode() function should be
	// checked if modes were added before parsing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Modes handles command line arguments for programs with modes.
type Modes struct {
	output io.Writer

	// the arguments not yet consumed by a call to Parse()
	args []string

	// flags for the next call to Parse(). a new flagset is created on every
	// call to NewMode()
	flags *flag.FlagSet

	// modes for the next call to Parse(). the first entry is the default
	modes []string

	// modes selected by all previous calls to Parse()
	path []string

	// additional text printed after the flag and mode information
	help string
}

// NewModes is the preferred method of initialisation for the Modes type. Help
// messages are written to output.
func NewModes(output io.Writer, args []string) *Modes {
	md := &Modes{
		output: output,
		args:   args,
	}
	md.NewMode()
	return md
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far, separated by a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewMode clears the flags, modes and help text ready for the next call to
// Parse().
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet(md.Path(), flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.modes = md.modes[:0]
	md.help = ""
}

// AddModes adds to the list of modes for the next call to Parse(). The first
// mode is the default.
func (md *Modes) AddModes(modes ...string) {
	for _, m := range modes {
		md.modes = append(md.modes, strings.ToUpper(m))
	}
}

// AdditionalHelp sets text to be printed after the list of flags and modes.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// Parse the remaining arguments with the flags and modes added since the last
// call to NewMode(). Help messages are printed to the output automatically.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.printHelp()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.args = md.flags.Args()

	if len(md.modes) == 0 {
		return ParseContinue, nil
	}

	mode := md.modes[0]
	if len(md.args) > 0 {
		arg := strings.ToUpper(md.args[0])
		for _, m := range md.modes {
			if m == arg {
				mode = m
				md.args = md.args[1:]
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

func (md *Modes) printHelp() {
	if md.output == nil {
		return
	}

	var hasFlags bool
	md.flags.VisitAll(func(_ *flag.Flag) {
		hasFlags = true
	})

	if !hasFlags && len(md.modes) == 0 && md.help == "" {
		if md.Path() == "" {
			fmt.Fprintln(md.output, "No help available")
		} else {
			fmt.Fprintf(md.output, "No help available for %s\n", md.Path())
		}
		return
	}

	if md.Path() == "" {
		fmt.Fprintln(md.output, "Usage:")
	} else {
		fmt.Fprintf(md.output, "Usage for %s mode:\n", md.Path())
	}

	if hasFlags {
		md.flags.SetOutput(md.output)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)
	}

	if len(md.modes) > 0 {
		if hasFlags {
			fmt.Fprintln(md.output)
		}
		fmt.Fprintf(md.output, "  available modes: %s\n", strings.Join(md.modes, ", "))
		fmt.Fprintf(md.output, "    default: %s\n", md.modes[0])
	}

	if md.help != "" {
		fmt.Fprintf(md.output, "\n%s\n", md.help)
	}
}

// RemainingArgs returns the arguments that were not consumed by the last
// call to Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered remaining argument. Returns the empty string if
// there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// Visit calls fn for every flag that was set by the last call to Parse().
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
