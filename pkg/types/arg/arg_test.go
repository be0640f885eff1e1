package arg

import (
	"errors"
	argfmtErrors "github.com/mgreer/argfmt/pkg/errors"
	"github.com/tdewolff/test"
	"testing"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	test.String(t, Boolean.String(), "Boolean")
	test.String(t, Integer.String(), "Integer")
	test.String(t, Real.String(), "Real")
	test.String(t, String.String(), "String")
	test.String(t, StringList.String(), "StringList")
	test.String(t, Choice.String(), "Choice")
	test.String(t, Kind(99).String(), "????")
}

func TestFlagHas(t *testing.T) {
	t.Parallel()

	f := NoCase | Skip
	test.That(t, f.Has(NoCase), "NoCase")
	test.That(t, f.Has(Skip), "Skip")
	test.That(t, !f.Has(Required), "Required absent")
	test.That(t, !f.Has(NoCase|Required), "partial combination absent")
	test.That(t, f.Has(NoCase|Skip), "full combination present")
}

func TestFlagString(t *testing.T) {
	t.Parallel()

	test.String(t, Flag(0).String(), "None")
	test.String(t, NoCase.String(), "NoCase")
	test.String(t, (Required | Skip).String(), "Required|Skip")
	test.String(t, (NoCase | Required | Skip | Multiple).String(), "NoCase|Required|Skip|Multiple")
}

func TestMatchName(t *testing.T) {
	t.Parallel()

	exact := &Arg{Name: "-xyz", Kind: Integer}
	test.That(t, exact.MatchName("-xyz"), "exact name")
	test.That(t, !exact.MatchName("-XYZ"), "case differs")
	test.That(t, !exact.MatchName("-xy"), "prefix only")

	folded := &Arg{Name: "-xyz", Kind: Integer, Flags: NoCase}
	test.That(t, folded.MatchName("-XYZ"), "case folded")
	test.That(t, folded.MatchName("-xyz"), "exact name under NoCase")
	test.That(t, !folded.MatchName("-xy"), "prefix only under NoCase")
}

func TestMatchOption(t *testing.T) {
	t.Parallel()

	plain := &Arg{Name: "-i", Kind: Integer}
	test.That(t, plain.MatchOption("-i"), "whole token")
	test.That(t, !plain.MatchOption("-i42"), "unattached never takes a remainder")

	attached := &Arg{Name: "-I", Kind: Integer, Attached: true}
	test.That(t, attached.MatchOption("-I42"), "name plus value")
	test.That(t, !attached.MatchOption("-I"), "attached needs a remainder")
	test.That(t, !attached.MatchOption("-J42"), "name differs")

	foldedAttached := &Arg{Name: "-D", Kind: String, Attached: true, Flags: NoCase}
	test.That(t, foldedAttached.MatchOption("-dfoo"), "case folded prefix")
}

func TestNumFollow(t *testing.T) {
	t.Parallel()

	test.T(t, (&Arg{Name: "-v", Kind: Boolean}).NumFollow(), 0)
	test.T(t, (&Arg{Name: "-i", Kind: Integer}).NumFollow(), 1)
	test.T(t, (&Arg{Name: "-r", Kind: Real}).NumFollow(), 1)
	test.T(t, (&Arg{Name: "-s", Kind: String}).NumFollow(), 1)
	test.T(t, (&Arg{Name: "-f", Kind: StringList}).NumFollow(), 1)
	test.T(t, (&Arg{Name: "-c", Kind: Choice}).NumFollow(), 1)
	test.T(t, (&Arg{Name: "-I", Kind: Integer, Attached: true}).NumFollow(), 0)
}

func TestAssign(t *testing.T) {
	t.Parallel()

	b := &Arg{Name: "-v", Kind: Boolean, Value: Zero(Boolean)}
	test.That(t, b.Assign("ignored") == nil, "boolean assign")
	test.T(t, b.Value, BooleanValue(true))

	i := &Arg{Name: "-i", Kind: Integer, Value: Zero(Integer)}
	test.That(t, i.Assign("-42") == nil, "integer assign")
	test.T(t, i.Value, IntegerValue(-42))

	r := &Arg{Name: "-r", Kind: Real, Value: Zero(Real)}
	test.That(t, r.Assign("2.5") == nil, "real assign")
	test.T(t, r.Value, RealValue(2.5))

	s := &Arg{Name: "-s", Kind: String, Value: Zero(String)}
	test.That(t, s.Assign("text") == nil, "string assign")
	test.T(t, s.Value, StringValue("text"))

	f := &Arg{Name: "-f", Kind: StringList, Value: Zero(StringList)}
	test.That(t, f.Assign("a") == nil, "first list assign")
	test.That(t, f.Assign("b") == nil, "second list assign")
	test.T(t, f.Value, StringListValue([]string{"a", "b"}))

	c := &Arg{Name: "-c", Kind: Choice, Choices: []string{"x", "y", "z"}, Value: Zero(Choice)}
	test.That(t, c.Assign("y") == nil, "choice assign")
	test.T(t, c.Value, ChoiceValue(1))
}

func TestAssignInvalid(t *testing.T) {
	t.Parallel()

	i := &Arg{Name: "-i", Kind: Integer, Value: Zero(Integer)}
	test.That(t, errors.Is(i.Assign("abc"), argfmtErrors.ErrInvalidValue), "integer rejects text")
	test.T(t, i.Value, IntegerValue(0))

	r := &Arg{Name: "-r", Kind: Real, Value: Zero(Real)}
	test.That(t, errors.Is(r.Assign("x"), argfmtErrors.ErrInvalidValue), "real rejects text")

	c := &Arg{Name: "-c", Kind: Choice, Choices: []string{"x", "y"}, Value: Zero(Choice)}
	test.That(t, errors.Is(c.Assign("z"), argfmtErrors.ErrInvalidValue), "choice rejects unknown label")
	test.That(t, errors.Is(c.Assign("Y"), argfmtErrors.ErrInvalidValue), "choice labels are case sensitive")
}

func TestReset(t *testing.T) {
	t.Parallel()

	i := &Arg{Name: "-i", Kind: Integer, Value: IntegerValue(3), IsSet: true}
	i.Reset()

	test.That(t, !i.IsSet, "set flag cleared")
	test.T(t, i.Value, IntegerValue(3))
}
