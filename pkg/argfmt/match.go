package argfmt

import (
	"fmt"
	"github.com/mgreer/argfmt/pkg/types/arg"
	"log/slog"
	"os"
)

// Parse matches tokens against the table, assigning argument values and
// writing diagnostics. It returns false when a required argument was never
// set. The token slice is not modified.
func (a *Args) Parse(tokens []string) bool {
	_, ok := a.scan(tokens, false)
	return ok
}

// ParseFilter is Parse returning the tokens left over after consumed option
// tokens are removed: the program name tokens[0], positionals, unrecognized
// tokens, and the tokens of skip-flagged options.
func (a *Args) ParseFilter(tokens []string) ([]string, bool) {
	return a.scan(tokens, true)
}

// ParseCommandLine parses os.Args with filtering.
func (a *Args) ParseCommandLine() ([]string, bool) {
	return a.ParseFilter(os.Args)
}

func (a *Args) scan(tokens []string, filter bool) ([]string, bool) {
	a.skipRest = false

	slog.Debug("argfmt: scan", "tokens", len(tokens), "filter", filter)

	var out []string
	i := 0
	if 0 < len(tokens) {
		if filter {
			out = append(out, tokens[0])
		}
		i = 1
	}

	for i < len(tokens) {
		token := tokens[i]

		if len(token) == 0 || token[0] != '-' || a.skipRest {
			if filter {
				out = append(out, token)
			}
			i++
			continue
		}

		if token == "--" {
			a.skipRest = true
			i++
			continue
		}

		if token == "--help" {
			a.WriteUsage(a.diag, tokens[0])
			a.help = true
			i++
			continue
		}

		var match *arg.Arg
		for _, v := range a.args {
			if v.MatchOption(token) {
				match = v
				break
			}
		}
		if match == nil {
			out = a.scanCluster(token, filter, out)
			i++
			continue
		}

		n := match.NumFollow()
		if len(tokens) <= i+n {
			fmt.Fprintf(a.diag, "Error: Missing Value for %s\n", token)
			break
		}

		text := ""
		if match.Attached {
			text = token[len(match.Name):]
		} else if 0 < n {
			text = tokens[i+1]
		}

		if err := match.Assign(text); err != nil {
			slog.Debug("argfmt: invalid value", "option", token, "value", text)
			fmt.Fprintf(a.diag, "Error: Invalid Value %s for %s\n", text, token)
		} else {
			match.IsSet = true
		}

		if filter && match.Flags.Has(arg.Skip) {
			out = append(out, tokens[i:i+1+n]...)
		}
		i += 1 + n
	}

	ok := a.CheckRequired()
	if !filter {
		return nil, ok
	}
	return out, ok
}

// scanCluster treats a token that matched no argument as single-letter
// boolean flags after the leading dash. The whole token is passed through
// when no two-character Boolean argument is registered or any character
// fails to match one; nothing is set in that case.
func (a *Args) scanCluster(token string, filter bool, out []string) []string {
	single := false
	for _, v := range a.args {
		if v.Kind == arg.Boolean && len(v.Name) == 2 {
			single = true
			break
		}
	}
	if !single {
		fmt.Fprintf(a.diag, "Warning: Unrecognised argument %s\n", token)
		if filter {
			out = append(out, token)
		}
		return out
	}

	found := false
	for j := 1; j < len(token); j++ {
		found = false
		for _, v := range a.args {
			if v.Kind == arg.Boolean && len(v.Name) == 2 && v.Name[1] == token[j] {
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(a.diag, "Warning: Unrecognised argument -%c\n", token[j])
			break
		}
	}
	if !found {
		if filter {
			out = append(out, token)
		}
		return out
	}

	for j := 1; j < len(token); j++ {
		for _, v := range a.args {
			if v.Kind != arg.Boolean || len(v.Name) != 2 || v.Name[1] != token[j] {
				continue
			}
			v.Value = arg.BooleanValue(true)
			v.IsSet = true
			if filter && v.Flags.Has(arg.Skip) {
				out = append(out, "-"+string(token[j]))
			}
		}
	}
	return out
}
