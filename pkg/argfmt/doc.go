// Package argfmt compiles a compact format string into a table of typed
// command-line arguments and matches argument token sequences against it.
//
// A format string holds whitespace-separated entries, one per option:
//
//	-NAME[:T[[labels]][COUNT][flags]][=default] [(description)]
//
// The name starts with one or more dashes, then an alphanumeric character,
// then alphanumeric characters or underscores. Everything after the name is
// optional. T is a type letter:
//
//	f    boolean (the default when no type is given)
//	i I  integer
//	r R  real
//	s S  string
//	c C  choice, followed by labels in brackets: c[one,two three]
//
// An uppercase letter declares the value attached to the option token itself
// (-I3), a lowercase letter takes the value from the following token (-i 3).
// A choice value is matched against its labels and stored as the zero-based
// label index.
//
// COUNT is a decimal value count; only 1 is supported. The flag letters are
// n (case-insensitive name), r (required), s (keep consumed tokens in the
// filtered output), and m (multiple occurrences, turning a string option into
// a string list). The default text runs to the next whitespace and the
// description to the closing parenthesis; in both, a backslash escapes the
// following character. A choice default is the label index, not a label.
//
//	args := argfmt.MustNew("-v:f (verbose) -n:ir=1 (count) -I:I (attached) -m:c[slow,fast]=1")
//	rest, ok := args.ParseFilter(os.Args)
//
// Parsing matches tokens left to right against the table: exact names,
// attached prefixes, and clusters of single-letter boolean flags (-xyz).
// The token -- ends option scanning and --help writes the usage text. Parse
// diagnostics go to an io.Writer, os.Stderr unless replaced with SetOutput.
package argfmt
