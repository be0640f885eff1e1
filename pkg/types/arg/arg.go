package arg

import (
	"fmt"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	argfmtErrors "github.com/mgreer/argfmt/pkg/errors"
	"strconv"
	"strings"
)

// Kind enumerates the value types an argument can hold.
type Kind int

const (
	Boolean Kind = iota
	Integer
	Real
	String
	StringList
	Choice
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	case String:
		return "String"
	case StringList:
		return "StringList"
	case Choice:
		return "Choice"
	}
	return "????"
}

// Flag is a bitmask of argument behavior flags.
type Flag uint

const (
	// NoCase makes name matching case-insensitive.
	NoCase Flag = 1 << iota
	// Required makes the overall parse fail when the argument is never set.
	Required
	// Skip keeps the argument's consumed tokens in the filtered output.
	Skip
	// Multiple turns a String argument into an accumulating StringList.
	Multiple
)

// Has returns true if every flag in o is present.
func (f Flag) Has(o Flag) bool {
	return f&o == o
}

// String returns the flag names joined by |, or "None".
func (f Flag) String() string {
	var names []string
	if f.Has(NoCase) {
		names = append(names, "NoCase")
	}
	if f.Has(Required) {
		names = append(names, "Required")
	}
	if f.Has(Skip) {
		names = append(names, "Skip")
	}
	if f.Has(Multiple) {
		names = append(names, "Multiple")
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// Arg is one compiled argument: its definition plus its current parse state.
// The name keeps its leading dashes. Choices is only used by the Choice kind.
type Arg struct {
	Name        string
	Kind        Kind
	Flags       Flag
	Attached    bool
	Choices     []string
	Default     Value
	Description string

	Value Value
	IsSet bool
}

// MatchName returns true if name equals the argument's name under its case rule.
func (a *Arg) MatchName(name string) bool {
	if a.Flags.Has(NoCase) {
		return strings.EqualFold(name, a.Name)
	}
	return name == a.Name
}

// MatchOption returns true if the token selects this argument: the whole token
// must equal the name for unattached arguments, or carry the name as a strict
// prefix with a non-empty value remainder for attached ones.
func (a *Arg) MatchOption(token string) bool {
	if !a.Attached {
		return a.MatchName(token)
	}
	if len(token) <= len(a.Name) {
		return false
	}
	return a.MatchName(token[:len(a.Name)])
}

// NumFollow returns how many following tokens the argument consumes per match.
func (a *Arg) NumFollow() int {
	if a.Attached {
		return 0
	}
	return kindOps[a.Kind].follow
}

// Assign parses text per the argument's kind and stores the resulting value.
// Boolean arguments ignore the text: their presence is the value. StringList
// arguments append instead of overwriting. The set flag is left to the caller.
func (a *Arg) Assign(text string) error {
	if err := kindOps[a.Kind].assign(a, text); err != nil {
		return motmedelErrors.New(fmt.Errorf("assign %s: %w", a.Kind, err), a.Name, text)
	}
	return nil
}

// Reset clears the set flag. The current value is retained.
func (a *Arg) Reset() {
	a.IsSet = false
}

// kindOps keys the kind-specific behavior: the follow-on token count for
// unattached arguments and the text-to-value assignment.
var kindOps = map[Kind]struct {
	follow int
	assign func(*Arg, string) error
}{
	Boolean: {0, func(a *Arg, _ string) error {
		a.Value = BooleanValue(true)
		return nil
	}},
	Integer: {1, func(a *Arg, text string) error {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", argfmtErrors.ErrInvalidValue, text)
		}
		a.Value = IntegerValue(i)
		return nil
	}},
	Real: {1, func(a *Arg, text string) error {
		r, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a real", argfmtErrors.ErrInvalidValue, text)
		}
		a.Value = RealValue(r)
		return nil
	}},
	String: {1, func(a *Arg, text string) error {
		a.Value = StringValue(text)
		return nil
	}},
	StringList: {1, func(a *Arg, text string) error {
		list, _ := a.Value.StrList()
		a.Value = StringListValue(append(list, text))
		return nil
	}},
	Choice: {1, func(a *Arg, text string) error {
		for i, choice := range a.Choices {
			if choice == text {
				a.Value = ChoiceValue(int64(i))
				return nil
			}
		}
		return fmt.Errorf("%w: %q is not a choice", argfmtErrors.ErrInvalidValue, text)
	}},
}
