package argfmt

import (
	"fmt"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	argfmtErrors "github.com/mgreer/argfmt/pkg/errors"
	"github.com/mgreer/argfmt/pkg/types/arg"
)

// The typed getters resolve an argument by name or table position and return
// its current value. Asking for the wrong kind, an unknown name, or a
// position out of range is a usage error: one diagnostic line is written and
// the kind's sentinel returned (false, 0, 0.0, "", nil, -1 for choice).

func (a *Args) badKind(who any, kind arg.Kind) {
	fmt.Fprintf(a.diag, "Option %v is not %s\n", who, kind)
}

func (a *Args) badIndex(i int) {
	fmt.Fprintf(a.diag, "No option at index %d\n", i)
}

// BooleanArg returns the named Boolean argument's value.
func (a *Args) BooleanArg(name string) bool {
	if v := a.Lookup(name); v != nil {
		if b, err := v.Value.Bool(); err == nil {
			return b
		}
	}
	a.badKind(name, arg.Boolean)
	return false
}

// BooleanArgAt returns the Boolean argument value at table position i.
func (a *Args) BooleanArgAt(i int) bool {
	v := a.ArgAt(i)
	if v == nil {
		a.badIndex(i)
		return false
	}
	if b, err := v.Value.Bool(); err == nil {
		return b
	}
	a.badKind(v.Name, arg.Boolean)
	return false
}

// IntegerArg returns the named Integer argument's value.
func (a *Args) IntegerArg(name string) int64 {
	if v := a.Lookup(name); v != nil {
		if i, err := v.Value.Int(); err == nil {
			return i
		}
	}
	a.badKind(name, arg.Integer)
	return 0
}

// IntegerArgAt returns the Integer argument value at table position i.
func (a *Args) IntegerArgAt(i int) int64 {
	v := a.ArgAt(i)
	if v == nil {
		a.badIndex(i)
		return 0
	}
	if n, err := v.Value.Int(); err == nil {
		return n
	}
	a.badKind(v.Name, arg.Integer)
	return 0
}

// RealArg returns the named Real argument's value.
func (a *Args) RealArg(name string) float64 {
	if v := a.Lookup(name); v != nil {
		if r, err := v.Value.Real(); err == nil {
			return r
		}
	}
	a.badKind(name, arg.Real)
	return 0
}

// RealArgAt returns the Real argument value at table position i.
func (a *Args) RealArgAt(i int) float64 {
	v := a.ArgAt(i)
	if v == nil {
		a.badIndex(i)
		return 0
	}
	if r, err := v.Value.Real(); err == nil {
		return r
	}
	a.badKind(v.Name, arg.Real)
	return 0
}

// StringArg returns the named String argument's value.
func (a *Args) StringArg(name string) string {
	if v := a.Lookup(name); v != nil {
		if s, err := v.Value.Str(); err == nil {
			return s
		}
	}
	a.badKind(name, arg.String)
	return ""
}

// StringArgAt returns the String argument value at table position i.
func (a *Args) StringArgAt(i int) string {
	v := a.ArgAt(i)
	if v == nil {
		a.badIndex(i)
		return ""
	}
	if s, err := v.Value.Str(); err == nil {
		return s
	}
	a.badKind(v.Name, arg.String)
	return ""
}

// StringListArg returns the named StringList argument's accumulated values.
func (a *Args) StringListArg(name string) []string {
	if v := a.Lookup(name); v != nil {
		if list, err := v.Value.StrList(); err == nil {
			return list
		}
	}
	a.badKind(name, arg.StringList)
	return nil
}

// StringListArgAt returns the StringList argument values at table position i.
func (a *Args) StringListArgAt(i int) []string {
	v := a.ArgAt(i)
	if v == nil {
		a.badIndex(i)
		return nil
	}
	if list, err := v.Value.StrList(); err == nil {
		return list
	}
	a.badKind(v.Name, arg.StringList)
	return nil
}

// ChoiceArg returns the named Choice argument's label index.
func (a *Args) ChoiceArg(name string) int64 {
	if v := a.Lookup(name); v != nil {
		if c, err := v.Value.ChoiceIndex(); err == nil {
			return c
		}
	}
	a.badKind(name, arg.Choice)
	return -1
}

// ChoiceArgAt returns the Choice argument label index at table position i.
func (a *Args) ChoiceArgAt(i int) int64 {
	v := a.ArgAt(i)
	if v == nil {
		a.badIndex(i)
		return -1
	}
	if c, err := v.Value.ChoiceIndex(); err == nil {
		return c
	}
	a.badKind(v.Name, arg.Choice)
	return -1
}

// The Is*Arg predicates report whether an argument of the kind exists under
// the name or position, and the Is*ArgSet predicates whether it exists and
// was set. None of them write diagnostics.

func (a *Args) isArg(name string, kind arg.Kind) bool {
	v := a.Lookup(name)
	return v != nil && v.Kind == kind
}

func (a *Args) isArgAt(i int, kind arg.Kind) bool {
	v := a.ArgAt(i)
	return v != nil && v.Kind == kind
}

func (a *Args) isArgSet(name string, kind arg.Kind) bool {
	v := a.Lookup(name)
	return v != nil && v.Kind == kind && v.IsSet
}

func (a *Args) IsBooleanArg(name string) bool { return a.isArg(name, arg.Boolean) }

func (a *Args) IsIntegerArg(name string) bool { return a.isArg(name, arg.Integer) }

func (a *Args) IsRealArg(name string) bool { return a.isArg(name, arg.Real) }

func (a *Args) IsStringArg(name string) bool { return a.isArg(name, arg.String) }

func (a *Args) IsStringListArg(name string) bool { return a.isArg(name, arg.StringList) }

func (a *Args) IsChoiceArg(name string) bool { return a.isArg(name, arg.Choice) }

func (a *Args) IsBooleanArgAt(i int) bool { return a.isArgAt(i, arg.Boolean) }

func (a *Args) IsIntegerArgAt(i int) bool { return a.isArgAt(i, arg.Integer) }

func (a *Args) IsRealArgAt(i int) bool { return a.isArgAt(i, arg.Real) }

func (a *Args) IsStringArgAt(i int) bool { return a.isArgAt(i, arg.String) }

func (a *Args) IsStringListArgAt(i int) bool { return a.isArgAt(i, arg.StringList) }

func (a *Args) IsChoiceArgAt(i int) bool { return a.isArgAt(i, arg.Choice) }

func (a *Args) IsBooleanArgSet(name string) bool { return a.isArgSet(name, arg.Boolean) }

func (a *Args) IsIntegerArgSet(name string) bool { return a.isArgSet(name, arg.Integer) }

func (a *Args) IsRealArgSet(name string) bool { return a.isArgSet(name, arg.Real) }

func (a *Args) IsStringArgSet(name string) bool { return a.isArgSet(name, arg.String) }

func (a *Args) IsStringListArgSet(name string) bool { return a.isArgSet(name, arg.StringList) }

func (a *Args) IsChoiceArgSet(name string) bool { return a.isArgSet(name, arg.Choice) }

// Bind writes each argument's current value through the matching pointer in
// outs, in table order: *bool, *int64, *float64, *string, *[]string, with
// Choice binding through *int64. Skip-flagged arguments take no slot. Binding
// fails on a nil slot, a kind mismatch, or a wrong slot count.
func (a *Args) Bind(outs ...any) error {
	n := 0
	for _, v := range a.args {
		if !v.Flags.Has(arg.Skip) {
			n++
		}
	}
	if len(outs) != n {
		return motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %d output slots for %d arguments", argfmtErrors.ErrInvalidBinding, len(outs), n),
		)
	}

	k := 0
	for _, v := range a.args {
		if v.Flags.Has(arg.Skip) {
			continue
		}
		if err := bindValue(v, outs[k]); err != nil {
			return motmedelErrors.New(fmt.Errorf("bind slot %d: %w", k, err), v.Name)
		}
		k++
	}
	return nil
}

func bindValue(v *arg.Arg, out any) error {
	switch v.Kind {
	case arg.Boolean:
		p, ok := out.(*bool)
		if !ok {
			return badSlot(v, out)
		}
		if p == nil {
			return nilSlot(v)
		}
		*p, _ = v.Value.Bool()
	case arg.Integer:
		p, ok := out.(*int64)
		if !ok {
			return badSlot(v, out)
		}
		if p == nil {
			return nilSlot(v)
		}
		*p, _ = v.Value.Int()
	case arg.Real:
		p, ok := out.(*float64)
		if !ok {
			return badSlot(v, out)
		}
		if p == nil {
			return nilSlot(v)
		}
		*p, _ = v.Value.Real()
	case arg.String:
		p, ok := out.(*string)
		if !ok {
			return badSlot(v, out)
		}
		if p == nil {
			return nilSlot(v)
		}
		*p, _ = v.Value.Str()
	case arg.StringList:
		p, ok := out.(*[]string)
		if !ok {
			return badSlot(v, out)
		}
		if p == nil {
			return nilSlot(v)
		}
		*p, _ = v.Value.StrList()
	case arg.Choice:
		p, ok := out.(*int64)
		if !ok {
			return badSlot(v, out)
		}
		if p == nil {
			return nilSlot(v)
		}
		*p, _ = v.Value.ChoiceIndex()
	}
	return nil
}

func badSlot(v *arg.Arg, out any) error {
	return motmedelErrors.NewWithTrace(
		fmt.Errorf("%w: %s needs %s, got %T", argfmtErrors.ErrInvalidBinding, v.Name, v.Kind, out),
	)
}

func nilSlot(v *arg.Arg) error {
	return motmedelErrors.NewWithTrace(
		fmt.Errorf("%w: nil output slot for %s", argfmtErrors.ErrInvalidBinding, v.Name),
	)
}
