package argfmt

import (
	"fmt"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	argfmtErrors "github.com/mgreer/argfmt/pkg/errors"
	"github.com/mgreer/argfmt/pkg/types/arg"
	"io"
	"strconv"
	"strings"
)

// compile parses a format string into its arguments. Any malformed entry
// aborts compilation; no partial table results. Duplicate names are legal
// and warned about on diag, the first declaration winning at parse time.
func compile(format string, diag io.Writer) ([]*arg.Arg, error) {
	var args []*arg.Arg

	i := 0
	for {
		for i < len(format) && isSpace(format[i]) {
			i++
		}
		if len(format) <= i {
			break
		}
		if format[i] != '-' {
			return nil, invalidCharacter(format, i)
		}

		j := i
		for i < len(format) && format[i] == '-' {
			i++
		}
		if len(format) <= i || !isAlnum(format[i]) {
			return nil, invalidCharacter(format, i)
		}
		i++
		for i < len(format) && (isAlnum(format[i]) || format[i] == '_') {
			i++
		}
		name := format[j:i]

		kind := arg.Boolean
		attached := false
		count := 1
		var flags arg.Flag
		var choices []string

		if i < len(format) && format[i] == ':' {
			i++
			if len(format) <= i {
				return nil, invalidCharacter(format, i)
			}
			switch format[i] {
			case 'f':
				kind = arg.Boolean
			case 'i':
				kind = arg.Integer
			case 'I':
				kind, attached = arg.Integer, true
			case 'r':
				kind = arg.Real
			case 'R':
				kind, attached = arg.Real, true
			case 's':
				kind = arg.String
			case 'S':
				kind, attached = arg.String, true
			case 'c':
				kind = arg.Choice
			case 'C':
				kind, attached = arg.Choice, true
			default:
				return nil, invalidCharacter(format, i)
			}
			i++

			if kind == arg.Choice {
				if len(format) <= i || format[i] != '[' {
					return nil, motmedelErrors.NewWithTrace(
						fmt.Errorf("%w: %s has no choice list", argfmtErrors.ErrMissingChoices, name),
					)
				}
				i++
				j = i
				for i < len(format) && format[i] != ']' {
					i++
				}
				if len(format) <= i {
					return nil, motmedelErrors.NewWithTrace(
						fmt.Errorf("%w: unterminated choice list for %s", argfmtErrors.ErrMissingChoices, name),
					)
				}
				choices = splitChoices(format[j:i])
				i++
			}

			if i < len(format) && isDigit(format[i]) {
				j = i
				for i < len(format) && isDigit(format[i]) {
					i++
				}
				n, err := strconv.Atoi(format[j:i])
				if err != nil || n <= 0 {
					return nil, motmedelErrors.NewWithTrace(
						fmt.Errorf("%w: %s for %s", argfmtErrors.ErrInvalidCount, format[j:i], name),
					)
				}
				count = n
			}

			for i < len(format) {
				f, ok := flagFor(format[i])
				if !ok {
					break
				}
				flags |= f
				i++
			}
		}

		defText := ""
		if i < len(format) && format[i] == '=' {
			i++
			var s []byte
			for i < len(format) && !isSpace(format[i]) {
				if format[i] == '\\' && i+1 < len(format) {
					i++
				}
				s = append(s, format[i])
				i++
			}
			defText = string(s)
		}

		desc := ""
		k := i
		for k < len(format) && isSpace(format[k]) {
			k++
		}
		if k < len(format) && format[k] == '(' {
			i = k + 1
			var s []byte
			for i < len(format) && format[i] != ')' {
				if format[i] == '\\' && i+1 < len(format) {
					i++
				}
				s = append(s, format[i])
				i++
			}
			if i < len(format) {
				i++
			}
			desc = string(s)
		}

		if i < len(format) && !isSpace(format[i]) {
			return nil, invalidCharacter(format, i)
		}

		if kind == arg.String && flags.Has(arg.Multiple) {
			kind = arg.StringList
		} else if count != 1 {
			return nil, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %s requests %d values", argfmtErrors.ErrMultipleValues, name, count),
			)
		}

		def := arg.Zero(kind)
		if defText != "" {
			var err error
			if def, err = arg.ParseDefault(kind, defText); err != nil {
				return nil, motmedelErrors.New(fmt.Errorf("parse default: %w", err), name, defText)
			}
		}

		for _, prev := range args {
			if prev.Name == name {
				fmt.Fprintf(diag, "Warning: duplicate option %s\n", name)
				break
			}
		}

		args = append(args, &arg.Arg{
			Name:        name,
			Kind:        kind,
			Flags:       flags,
			Attached:    attached,
			Choices:     choices,
			Default:     def,
			Description: desc,
			Value:       def,
		})
	}

	return args, nil
}

func invalidCharacter(format string, i int) error {
	if len(format) <= i {
		return motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: unexpected end of format", argfmtErrors.ErrInvalidCharacter),
		)
	}
	return motmedelErrors.NewWithTrace(
		fmt.Errorf("%w: %q at position %d", argfmtErrors.ErrInvalidCharacter, format[i], i),
	)
}

func flagFor(c byte) (arg.Flag, bool) {
	switch c {
	case 'n':
		return arg.NoCase, true
	case 'r':
		return arg.Required, true
	case 's':
		return arg.Skip, true
	case 'm':
		return arg.Multiple, true
	}
	return 0, false
}

// splitChoices splits labels on spaces and commas, dropping empty fields.
func splitChoices(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
