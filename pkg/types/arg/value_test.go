package arg

import (
	"errors"
	argfmtErrors "github.com/mgreer/argfmt/pkg/errors"
	"github.com/tdewolff/test"
	"testing"
)

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	b, err := BooleanValue(true).Bool()
	test.That(t, err == nil, "bool accessor")
	test.T(t, b, true)

	i, err := IntegerValue(-3).Int()
	test.That(t, err == nil, "int accessor")
	test.T(t, i, int64(-3))

	r, err := RealValue(0.5).Real()
	test.That(t, err == nil, "real accessor")
	test.T(t, r, 0.5)

	s, err := StringValue("x").Str()
	test.That(t, err == nil, "string accessor")
	test.T(t, s, "x")

	list, err := StringListValue([]string{"a"}).StrList()
	test.That(t, err == nil, "list accessor")
	test.T(t, list, []string{"a"})

	c, err := ChoiceValue(2).ChoiceIndex()
	test.That(t, err == nil, "choice accessor")
	test.T(t, c, int64(2))
}

func TestValueKindMismatch(t *testing.T) {
	t.Parallel()

	_, err := IntegerValue(1).Bool()
	test.That(t, errors.Is(err, argfmtErrors.ErrUnexpectedKind), "bool of integer")

	_, err = BooleanValue(true).Int()
	test.That(t, errors.Is(err, argfmtErrors.ErrUnexpectedKind), "int of boolean")

	_, err = StringValue("x").Real()
	test.That(t, errors.Is(err, argfmtErrors.ErrUnexpectedKind), "real of string")

	_, err = RealValue(1).Str()
	test.That(t, errors.Is(err, argfmtErrors.ErrUnexpectedKind), "string of real")

	_, err = StringValue("x").StrList()
	test.That(t, errors.Is(err, argfmtErrors.ErrUnexpectedKind), "list of string")

	_, err = IntegerValue(1).ChoiceIndex()
	test.That(t, errors.Is(err, argfmtErrors.ErrUnexpectedKind), "choice of integer")
}

func TestValueString(t *testing.T) {
	t.Parallel()

	test.String(t, BooleanValue(true).String(), "true")
	test.String(t, IntegerValue(-7).String(), "-7")
	test.String(t, RealValue(1.25).String(), "1.25")
	test.String(t, StringValue("raw").String(), "raw")
	test.String(t, StringListValue([]string{"a", "b"}).String(), "a, b")
	test.String(t, ChoiceValue(2).String(), "2")
}

func TestZero(t *testing.T) {
	t.Parallel()

	test.T(t, Zero(Boolean), BooleanValue(false))
	test.T(t, Zero(Integer), IntegerValue(0))
	test.T(t, Zero(Real), RealValue(0))
	test.T(t, Zero(String), StringValue(""))
	test.T(t, Zero(StringList), StringListValue(nil))
	test.T(t, Zero(Choice), ChoiceValue(0))
}

func TestParseDefault(t *testing.T) {
	t.Parallel()

	v, err := ParseDefault(Boolean, "true")
	test.That(t, err == nil, "boolean default")
	test.T(t, v, BooleanValue(true))

	v, err = ParseDefault(Integer, "-12")
	test.That(t, err == nil, "integer default")
	test.T(t, v, IntegerValue(-12))

	v, err = ParseDefault(Real, "0.5")
	test.That(t, err == nil, "real default")
	test.T(t, v, RealValue(0.5))

	v, err = ParseDefault(String, "text with spaces")
	test.That(t, err == nil, "string default")
	test.T(t, v, StringValue("text with spaces"))

	v, err = ParseDefault(StringList, "ignored")
	test.That(t, err == nil, "list default")
	test.T(t, v, StringListValue(nil))

	v, err = ParseDefault(Choice, "2")
	test.That(t, err == nil, "choice default")
	test.T(t, v, ChoiceValue(2))
}

func TestParseDefaultInvalid(t *testing.T) {
	t.Parallel()

	_, err := ParseDefault(Boolean, "maybe")
	test.That(t, errors.Is(err, argfmtErrors.ErrInvalidDefault), "boolean rejects text")

	_, err = ParseDefault(Integer, "1.5")
	test.That(t, errors.Is(err, argfmtErrors.ErrInvalidDefault), "integer rejects reals")

	_, err = ParseDefault(Real, "x")
	test.That(t, errors.Is(err, argfmtErrors.ErrInvalidDefault), "real rejects text")

	_, err = ParseDefault(Choice, "label")
	test.That(t, errors.Is(err, argfmtErrors.ErrInvalidDefault), "choice wants an index")
}
