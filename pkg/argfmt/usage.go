package argfmt

import (
	"fmt"
	"github.com/mgreer/argfmt/pkg/types/arg"
	"io"
	"strings"
)

// WriteUsage writes a usage synopsis for cmd to w. The first line shows each
// argument in table order, bracketed unless required, with a value
// placeholder for non-Boolean kinds. A description row follows for every
// argument, padded to the longest name.
func (a *Args) WriteUsage(w io.Writer, cmd string) {
	nameLen := 0
	for _, v := range a.args {
		if nameLen < len(v.Name) {
			nameLen = len(v.Name)
		}
	}

	fmt.Fprintf(w, "%s ", cmd)

	for _, v := range a.args {
		required := v.Flags.Has(arg.Required)

		if !required {
			fmt.Fprint(w, "[")
		}

		fmt.Fprint(w, v.Name)

		if v.Kind != arg.Boolean && !v.Attached {
			fmt.Fprint(w, " ")
		}

		switch v.Kind {
		case arg.Integer:
			fmt.Fprint(w, "<integer>")
		case arg.Real:
			fmt.Fprint(w, "<real>")
		case arg.String, arg.StringList:
			fmt.Fprint(w, "<string>")
		case arg.Choice:
			fmt.Fprint(w, "<choice>")
		}

		if !required {
			fmt.Fprint(w, "]")
		}

		fmt.Fprint(w, " ")
	}

	fmt.Fprintln(w)

	for _, v := range a.args {
		fmt.Fprintf(w, " %s%s : %s\n", v.Name, strings.Repeat(" ", nameLen-len(v.Name)), v.Description)
	}
}

// Usage writes the usage synopsis to the diagnostic writer.
func (a *Args) Usage(cmd string) {
	a.WriteUsage(a.diag, cmd)
}
