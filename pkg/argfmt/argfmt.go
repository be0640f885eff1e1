package argfmt

import (
	"fmt"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/mgreer/argfmt/pkg/types/arg"
	"io"
	"os"
	"strings"
)

// Args is a compiled argument table: the arguments in declaration order plus
// the parse state shared between them.
type Args struct {
	format   string
	args     []*arg.Arg
	help     bool
	skipRest bool
	diag     io.Writer
}

// New compiles the format string into an argument table.
func New(format string) (*Args, error) {
	a := &Args{diag: os.Stderr}
	if err := a.SetFormat(format); err != nil {
		return nil, err
	}
	return a, nil
}

// MustNew is New, panicking on a malformed format string.
func MustNew(format string) *Args {
	a, err := New(format)
	if err != nil {
		panic(err)
	}
	return a
}

// SetFormat replaces the table's arguments with ones compiled from the format
// string. The previous arguments are kept when compilation fails.
func (a *Args) SetFormat(format string) error {
	args, err := compile(format, a.diag)
	if err != nil {
		return motmedelErrors.New(fmt.Errorf("compile: %w", err), format)
	}
	a.format = format
	a.args = args
	return nil
}

// Format returns the format string the table was compiled from.
func (a *Args) Format() string {
	return a.format
}

// SetOutput sets the destination for diagnostics and usage text. The default
// is os.Stderr.
func (a *Args) SetOutput(w io.Writer) {
	a.diag = w
}

// Help reports whether --help was seen by a parse.
func (a *Args) Help() bool {
	return a.help
}

// NumArgs returns the number of arguments in the table.
func (a *Args) NumArgs() int {
	return len(a.args)
}

// ArgAt returns the argument at position i, or nil when out of range.
func (a *Args) ArgAt(i int) *arg.Arg {
	if i < 0 || len(a.args) <= i {
		return nil
	}
	return a.args[i]
}

// Lookup returns the first declared argument matching name under its case
// rule, or nil. Duplicate names resolve to the earliest declaration.
func (a *Args) Lookup(name string) *arg.Arg {
	for _, v := range a.args {
		if v.MatchName(name) {
			return v
		}
	}
	return nil
}

// Reset clears the set flag on every argument so the table can parse another
// token batch. Current values are retained.
func (a *Args) Reset() {
	for _, v := range a.args {
		v.Reset()
	}
}

// CheckRequired reports whether every required argument has been set, writing
// a diagnostic line for each one that has not.
func (a *Args) CheckRequired() bool {
	ok := true
	for _, v := range a.args {
		if v.Flags.Has(arg.Required) && !v.IsSet {
			fmt.Fprintf(a.diag, "Required argument %s not supplied\n", v.Name)
			ok = false
		}
	}
	return ok
}

// CheckOption classifies a leftover token for callers scanning the remainder
// themselves. Option-like tokens yield the token after its first dash; the --
// sentinel yields an empty name and makes every later token a positional for
// subsequent calls.
func (a *Args) CheckOption(token string) (string, bool) {
	if token == "--" {
		a.skipRest = true
		return "", true
	}
	if a.skipRest || len(token) == 0 || token[0] != '-' {
		return "", false
	}
	return token[1:], true
}

// UnhandledOption reports an option from CheckOption that the caller did not
// recognize. The empty name is ignored.
func (a *Args) UnhandledOption(name string) {
	if name != "" {
		fmt.Fprintf(a.diag, "Unhandled option: -%s\n", name)
	}
}

// Dump writes every argument's definition and current state to w, one line
// per argument.
func (a *Args) Dump(w io.Writer) {
	for _, v := range a.args {
		fmt.Fprintf(w, "%s %s", v.Name, v.Kind)
		if v.Attached {
			fmt.Fprint(w, " attached")
		}
		if v.Flags != 0 {
			fmt.Fprintf(w, " [%s]", v.Flags)
		}
		if v.Kind == arg.Choice {
			fmt.Fprintf(w, " choices=%s", strings.Join(v.Choices, ","))
		}
		fmt.Fprintf(w, " value=%s default=%s set=%t", v.Value, v.Default, v.IsSet)
		if v.Description != "" {
			fmt.Fprintf(w, " (%s)", v.Description)
		}
		fmt.Fprintln(w)
	}
}
