package arg

import (
	"fmt"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	argfmtErrors "github.com/mgreer/argfmt/pkg/errors"
	"strconv"
	"strings"
)

// Value is a kind-tagged argument value. The zero Value is a false Boolean.
type Value struct {
	kind Kind
	b    bool
	i    int64
	r    float64
	s    string
	list []string
}

func BooleanValue(b bool) Value { return Value{kind: Boolean, b: b} }

func IntegerValue(i int64) Value { return Value{kind: Integer, i: i} }

func RealValue(r float64) Value { return Value{kind: Real, r: r} }

func StringValue(s string) Value { return Value{kind: String, s: s} }

func StringListValue(list []string) Value { return Value{kind: StringList, list: list} }

// ChoiceValue holds the zero-based index of the chosen label.
func ChoiceValue(i int64) Value { return Value{kind: Choice, i: i} }

// Zero returns the kind's zero value.
func Zero(kind Kind) Value {
	switch kind {
	case Integer:
		return IntegerValue(0)
	case Real:
		return RealValue(0)
	case String:
		return StringValue("")
	case StringList:
		return StringListValue(nil)
	case Choice:
		return ChoiceValue(0)
	}
	return BooleanValue(false)
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) kindError(want Kind) error {
	return motmedelErrors.NewWithTrace(
		fmt.Errorf("%w: %s is not %s", argfmtErrors.ErrUnexpectedKind, v.kind, want),
	)
}

// Bool returns the boolean value, or an error for any other kind.
func (v Value) Bool() (bool, error) {
	if v.kind != Boolean {
		return false, v.kindError(Boolean)
	}
	return v.b, nil
}

// Int returns the integer value, or an error for any other kind.
func (v Value) Int() (int64, error) {
	if v.kind != Integer {
		return 0, v.kindError(Integer)
	}
	return v.i, nil
}

// Real returns the real value, or an error for any other kind.
func (v Value) Real() (float64, error) {
	if v.kind != Real {
		return 0, v.kindError(Real)
	}
	return v.r, nil
}

// Str returns the string value, or an error for any other kind.
func (v Value) Str() (string, error) {
	if v.kind != String {
		return "", v.kindError(String)
	}
	return v.s, nil
}

// StrList returns the accumulated string values, or an error for any other kind.
func (v Value) StrList() ([]string, error) {
	if v.kind != StringList {
		return nil, v.kindError(StringList)
	}
	return v.list, nil
}

// ChoiceIndex returns the chosen label's index, or an error for any other kind.
func (v Value) ChoiceIndex() (int64, error) {
	if v.kind != Choice {
		return 0, v.kindError(Choice)
	}
	return v.i, nil
}

// String formats the value for diagnostics and dumps.
func (v Value) String() string {
	switch v.kind {
	case Boolean:
		return strconv.FormatBool(v.b)
	case Integer, Choice:
		return strconv.FormatInt(v.i, 10)
	case Real:
		return strconv.FormatFloat(v.r, 'g', -1, 64)
	case String:
		return v.s
	case StringList:
		return strings.Join(v.list, ", ")
	}
	return ""
}

// ParseDefault parses default text for the given kind. A Choice default is an
// integer index into the choice list, not a label. StringList defaults start
// out empty regardless of text.
func ParseDefault(kind Kind, text string) (Value, error) {
	switch kind {
	case Boolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: invalid Boolean %q", argfmtErrors.ErrInvalidDefault, text),
			)
		}
		return BooleanValue(b), nil
	case Integer:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: invalid Integer %q", argfmtErrors.ErrInvalidDefault, text),
			)
		}
		return IntegerValue(i), nil
	case Real:
		r, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: invalid Real %q", argfmtErrors.ErrInvalidDefault, text),
			)
		}
		return RealValue(r), nil
	case String:
		return StringValue(text), nil
	case StringList:
		return StringListValue(nil), nil
	case Choice:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: invalid Choice index %q", argfmtErrors.ErrInvalidDefault, text),
			)
		}
		return ChoiceValue(i), nil
	}
	return Value{}, motmedelErrors.NewWithTrace(
		fmt.Errorf("%w: %v", argfmtErrors.ErrUnexpectedKind, kind),
	)
}
